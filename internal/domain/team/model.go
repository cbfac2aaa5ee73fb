package team

// Team is the join key across standings, fixtures, squads and lineups.
type Team struct {
	ID        int
	Name      string
	Code      string
	Country   string
	Founded   int
	LogoURL   string
	VenueID   int
	VenueName string
}

// SquadMember is one roster entry from the squads endpoint.
type SquadMember struct {
	PlayerID int
	Name     string
	Age      int
	Number   int
	Position string
	PhotoURL string
}

// Statistics is the season summary for one team in one league.
type Statistics struct {
	TeamID         int
	TeamName       string
	LeagueID       int
	Season         int
	Form           string
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	CleanSheets    int
	FailedToScore  int
	BiggestWinHome string
	BiggestWinAway string
}
