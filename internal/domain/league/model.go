package league

// League identifies one competition season as served by the data
// provider. The pair (ID, Season) scopes every other query.
type League struct {
	ID      int
	Name    string
	Country string
	LogoURL string
	Season  int
	Current bool
}

// Standing is one league-table row. Position is 1-based and derived
// from list order at fetch time; rows are never persisted.
type Standing struct {
	Position       int
	TeamID         int
	TeamName       string
	TeamLogoURL    string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
	Description    string
}
