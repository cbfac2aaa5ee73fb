package player

// Statistics is one per-season statistics record, tagged with the team
// and league it was recorded under. Squad listings produce placeholder
// records (zeroed counters, position only); leaderboard endpoints
// produce richer ones that replace placeholders during enrichment.
type Statistics struct {
	TeamID      int
	TeamName    string
	LeagueID    int
	Season      int
	Position    string
	Appearances int
	Minutes     int
	Goals       int
	Assists     int
	YellowCards int
	RedCards    int
	Rating      string
}

// Player identity is stable across calls; statistics are contextual.
type Player struct {
	ID          int
	Name        string
	FirstName   string
	LastName    string
	Age         int
	Nationality string
	Height      string
	Weight      string
	PhotoURL    string
	Injured     bool
	Statistics  Statistics
}

// Transfer is one move in a player's transfer history.
type Transfer struct {
	Date     string
	Type     string
	TeamIn   string
	TeamOut  string
	PlayerID int
}
