package fixture

import "time"

// Side is the home or away participant of a fixture.
type Side struct {
	TeamID  int
	Name    string
	LogoURL string
	Winner  *bool
}

// Fixture is an immutable snapshot of one match at fetch time. Live
// fixtures are refetched rather than updated in place.
type Fixture struct {
	ID         int
	Kickoff    time.Time
	Timezone   string
	Status     string
	StatusLong string
	Elapsed    *int
	Round      string
	VenueID    int
	VenueName  string
	Home       Side
	Away       Side
	HomeGoals  *int
	AwayGoals  *int
}

// LineupPlayer is one slot of a starting eleven or bench listing.
type LineupPlayer struct {
	PlayerID int
	Name     string
	Number   int
	Position string
	Grid     string
}

// Lineup is one team's reported setup for a fixture.
type Lineup struct {
	TeamID      int
	TeamName    string
	Formation   string
	CoachID     int
	CoachName   string
	StartXI     []LineupPlayer
	Substitutes []LineupPlayer
}

// FormationCount pairs a tactical shape with how many of the sampled
// fixtures the team lined up in it.
type FormationCount struct {
	Formation string
	Matches   int
}
