package coach

// CareerEntry is one stop in a coach's career. End is nil while the
// engagement is ongoing.
type CareerEntry struct {
	TeamID   int
	TeamName string
	Start    string
	End      *string
}

// Coach as reported by the coaches endpoint, career in upstream order.
type Coach struct {
	ID          int
	Name        string
	Age         int
	Nationality string
	PhotoURL    string
	Career      []CareerEntry
}

// CurrentFor reports whether the coach has an open engagement (career
// entry without an end date) at the given team.
func (c Coach) CurrentFor(teamID int) bool {
	for _, e := range c.Career {
		if e.TeamID == teamID && e.End == nil {
			return true
		}
	}
	return false
}
