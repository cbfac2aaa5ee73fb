package usecase

import (
	"context"

	"github.com/allsvenskan/insikter/internal/domain/coach"
	"github.com/allsvenskan/insikter/internal/domain/fixture"
	"github.com/allsvenskan/insikter/internal/domain/league"
	"github.com/allsvenskan/insikter/internal/domain/player"
	"github.com/allsvenskan/insikter/internal/domain/team"
	"github.com/allsvenskan/insikter/internal/domain/venue"
)

// FixtureFilter narrows a fixtures query. Zero values are omitted from
// the upstream request.
type FixtureFilter struct {
	TeamID int
	Status string
	Last   int
	Next   int
	Live   bool
}

// SportDataProvider is the upstream port consumed by the aggregation
// services. The production implementation is the external API client;
// tests substitute hand-rolled fakes.
type SportDataProvider interface {
	LeagueID() int
	Season() int
	LeagueInfo(ctx context.Context) (league.League, error)
	Standings(ctx context.Context) ([]league.Standing, error)
	Fixtures(ctx context.Context, filter FixtureFilter) ([]fixture.Fixture, error)
	LiveFixtures(ctx context.Context) ([]fixture.Fixture, error)
	FixtureLineups(ctx context.Context, fixtureID int) ([]fixture.Lineup, error)
	HeadToHead(ctx context.Context, teamA, teamB, last int) ([]fixture.Fixture, error)
	Teams(ctx context.Context) ([]team.Team, error)
	TeamStatistics(ctx context.Context, teamID int) (team.Statistics, error)
	TeamSquad(ctx context.Context, teamID int) ([]team.SquadMember, error)
	TopScorers(ctx context.Context) ([]player.Player, error)
	TopAssists(ctx context.Context) ([]player.Player, error)
	PlayerStatistics(ctx context.Context, playerID int) ([]player.Player, error)
	SearchPlayers(ctx context.Context, query string) ([]player.Player, error)
	PlayerTransfers(ctx context.Context, playerID int) ([]player.Transfer, error)
	Coaches(ctx context.Context, teamID int) ([]coach.Coach, error)
	CoachByID(ctx context.Context, coachID int) (coach.Coach, error)
	VenueByID(ctx context.Context, venueID int) (venue.Venue, error)
	SearchVenues(ctx context.Context, name, city, country string) ([]venue.Venue, error)
}

// SubCallFailure records one non-fatal upstream failure inside a
// composite workflow, kept for logging so best-effort steps never
// swallow errors silently.
type SubCallFailure struct {
	Op  string
	Ref int
	Err error
}
