package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/allsvenskan/insikter/internal/domain/cart"
)

type CartRepository struct {
	db *sqlx.DB
}

func NewCartRepository(db *sqlx.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Get(ctx context.Context, sessionID string) (cart.Cart, bool, error) {
	var head cartTableModel
	err := r.db.GetContext(ctx, &head,
		`SELECT session_id, updated_at FROM carts WHERE session_id = $1`, sessionID)
	if err != nil {
		if isNotFound(err) {
			return cart.Cart{}, false, nil
		}
		return cart.Cart{}, false, fmt.Errorf("get cart: %w", err)
	}

	var rows []cartItemTableModel
	err = r.db.SelectContext(ctx, &rows,
		`SELECT id, session_id, product_ref, name, unit_price, quantity, variation, created_at, updated_at
		 FROM cart_items WHERE session_id = $1 ORDER BY created_at, id`, sessionID)
	if err != nil {
		return cart.Cart{}, false, fmt.Errorf("select cart items: %w", err)
	}

	out := cart.Cart{
		SessionID: head.SessionID,
		UpdatedAt: head.UpdatedAt,
		Items:     make([]cart.Item, 0, len(rows)),
	}
	for _, row := range rows {
		item, err := rowToItem(row)
		if err != nil {
			return cart.Cart{}, false, err
		}
		out.Items = append(out.Items, item)
	}

	return out, true, nil
}

// UpsertItem bumps the quantity when an identical product+variation
// line already exists in the session, otherwise inserts a new line.
func (r *CartRepository) UpsertItem(ctx context.Context, sessionID string, item cart.Item) error {
	variation, err := marshalVariation(item.Variation)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cart tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO carts (session_id, updated_at) VALUES ($1, now())
		 ON CONFLICT (session_id) DO UPDATE SET updated_at = now()`, sessionID); err != nil {
		return fmt.Errorf("upsert cart head: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE cart_items SET quantity = quantity + $1, updated_at = now()
		 WHERE session_id = $2 AND product_ref = $3 AND variation = $4`,
		item.Quantity, sessionID, item.ProductRef, variation)
	if err != nil {
		return fmt.Errorf("merge cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("merge cart item rows: %w", err)
	}

	if affected == 0 {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cart_items (id, session_id, product_ref, name, unit_price, quantity, variation, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`,
			item.ID, sessionID, item.ProductRef, item.Name, item.UnitPrice, item.Quantity, variation); err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cart tx: %w", err)
	}
	return nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cart_items SET quantity = $1, updated_at = now()
		 WHERE session_id = $2 AND id = $3`, quantity, sessionID, itemID)
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update cart quantity rows: %w", err)
	}
	if affected == 0 {
		return cart.ErrItemNotFound
	}
	return r.touch(ctx, sessionID)
}

func (r *CartRepository) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE session_id = $1 AND id = $2`, sessionID, itemID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete cart item rows: %w", err)
	}
	if affected == 0 {
		return cart.ErrItemNotFound
	}
	return r.touch(ctx, sessionID)
}

func (r *CartRepository) Clear(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("clear cart items: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM carts WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("clear cart head: %w", err)
	}
	return nil
}

func (r *CartRepository) touch(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE carts SET updated_at = now() WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("touch cart: %w", err)
	}
	return nil
}

func rowToItem(row cartItemTableModel) (cart.Item, error) {
	item := cart.Item{
		ID:         row.ID,
		ProductRef: row.ProductRef,
		Name:       row.Name,
		UnitPrice:  row.UnitPrice,
		Quantity:   row.Quantity,
	}
	if len(row.Variation) > 0 {
		if err := sonic.Unmarshal(row.Variation, &item.Variation); err != nil {
			return cart.Item{}, fmt.Errorf("decode item variation: %w", err)
		}
	}
	return item, nil
}

func marshalVariation(variation map[string]string) ([]byte, error) {
	if variation == nil {
		variation = map[string]string{}
	}
	out, err := sonic.Marshal(variation)
	if err != nil {
		return nil, fmt.Errorf("encode item variation: %w", err)
	}
	return out, nil
}
