package postgres

import "time"

type cartTableModel struct {
	SessionID string    `db:"session_id"`
	UpdatedAt time.Time `db:"updated_at"`
}

type cartItemTableModel struct {
	ID         string    `db:"id"`
	SessionID  string    `db:"session_id"`
	ProductRef string    `db:"product_ref"`
	Name       string    `db:"name"`
	UnitPrice  int64     `db:"unit_price"`
	Quantity   int       `db:"quantity"`
	Variation  []byte    `db:"variation"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
