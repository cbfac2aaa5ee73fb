package venue

// Venue as reported by the venues endpoint.
type Venue struct {
	ID       int
	Name     string
	Address  string
	City     string
	Country  string
	Capacity int
	Surface  string
	ImageURL string
}
