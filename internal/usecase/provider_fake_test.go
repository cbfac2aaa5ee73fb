package usecase

import (
	"context"
	"errors"

	"github.com/allsvenskan/insikter/internal/domain/coach"
	"github.com/allsvenskan/insikter/internal/domain/fixture"
	"github.com/allsvenskan/insikter/internal/domain/league"
	"github.com/allsvenskan/insikter/internal/domain/player"
	"github.com/allsvenskan/insikter/internal/domain/team"
	"github.com/allsvenskan/insikter/internal/domain/venue"
)

var errUpstreamDown = errors.New("upstream down")

// fakeProvider implements SportDataProvider with per-method hooks; any
// hook left nil returns the zero value.
type fakeProvider struct {
	leagueInfoFn       func(ctx context.Context) (league.League, error)
	standingsFn        func(ctx context.Context) ([]league.Standing, error)
	fixturesFn         func(ctx context.Context, filter FixtureFilter) ([]fixture.Fixture, error)
	liveFixturesFn     func(ctx context.Context) ([]fixture.Fixture, error)
	fixtureLineupsFn   func(ctx context.Context, fixtureID int) ([]fixture.Lineup, error)
	headToHeadFn       func(ctx context.Context, teamA, teamB, last int) ([]fixture.Fixture, error)
	teamsFn            func(ctx context.Context) ([]team.Team, error)
	teamStatisticsFn   func(ctx context.Context, teamID int) (team.Statistics, error)
	teamSquadFn        func(ctx context.Context, teamID int) ([]team.SquadMember, error)
	topScorersFn       func(ctx context.Context) ([]player.Player, error)
	topAssistsFn       func(ctx context.Context) ([]player.Player, error)
	playerStatisticsFn func(ctx context.Context, playerID int) ([]player.Player, error)
	searchPlayersFn    func(ctx context.Context, query string) ([]player.Player, error)
	playerTransfersFn  func(ctx context.Context, playerID int) ([]player.Transfer, error)
	coachesFn          func(ctx context.Context, teamID int) ([]coach.Coach, error)
	coachByIDFn        func(ctx context.Context, coachID int) (coach.Coach, error)
	venueByIDFn        func(ctx context.Context, venueID int) (venue.Venue, error)
	searchVenuesFn     func(ctx context.Context, name, city, country string) ([]venue.Venue, error)
}

func (f *fakeProvider) LeagueID() int { return 113 }
func (f *fakeProvider) Season() int   { return 2025 }

func (f *fakeProvider) LeagueInfo(ctx context.Context) (league.League, error) {
	if f.leagueInfoFn == nil {
		return league.League{}, nil
	}
	return f.leagueInfoFn(ctx)
}

func (f *fakeProvider) Standings(ctx context.Context) ([]league.Standing, error) {
	if f.standingsFn == nil {
		return nil, nil
	}
	return f.standingsFn(ctx)
}

func (f *fakeProvider) Fixtures(ctx context.Context, filter FixtureFilter) ([]fixture.Fixture, error) {
	if f.fixturesFn == nil {
		return nil, nil
	}
	return f.fixturesFn(ctx, filter)
}

func (f *fakeProvider) LiveFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	if f.liveFixturesFn == nil {
		return nil, nil
	}
	return f.liveFixturesFn(ctx)
}

func (f *fakeProvider) FixtureLineups(ctx context.Context, fixtureID int) ([]fixture.Lineup, error) {
	if f.fixtureLineupsFn == nil {
		return nil, nil
	}
	return f.fixtureLineupsFn(ctx, fixtureID)
}

func (f *fakeProvider) HeadToHead(ctx context.Context, teamA, teamB, last int) ([]fixture.Fixture, error) {
	if f.headToHeadFn == nil {
		return nil, nil
	}
	return f.headToHeadFn(ctx, teamA, teamB, last)
}

func (f *fakeProvider) Teams(ctx context.Context) ([]team.Team, error) {
	if f.teamsFn == nil {
		return nil, nil
	}
	return f.teamsFn(ctx)
}

func (f *fakeProvider) TeamStatistics(ctx context.Context, teamID int) (team.Statistics, error) {
	if f.teamStatisticsFn == nil {
		return team.Statistics{}, nil
	}
	return f.teamStatisticsFn(ctx, teamID)
}

func (f *fakeProvider) TeamSquad(ctx context.Context, teamID int) ([]team.SquadMember, error) {
	if f.teamSquadFn == nil {
		return nil, nil
	}
	return f.teamSquadFn(ctx, teamID)
}

func (f *fakeProvider) TopScorers(ctx context.Context) ([]player.Player, error) {
	if f.topScorersFn == nil {
		return nil, nil
	}
	return f.topScorersFn(ctx)
}

func (f *fakeProvider) TopAssists(ctx context.Context) ([]player.Player, error) {
	if f.topAssistsFn == nil {
		return nil, nil
	}
	return f.topAssistsFn(ctx)
}

func (f *fakeProvider) PlayerStatistics(ctx context.Context, playerID int) ([]player.Player, error) {
	if f.playerStatisticsFn == nil {
		return nil, nil
	}
	return f.playerStatisticsFn(ctx, playerID)
}

func (f *fakeProvider) SearchPlayers(ctx context.Context, query string) ([]player.Player, error) {
	if f.searchPlayersFn == nil {
		return nil, nil
	}
	return f.searchPlayersFn(ctx, query)
}

func (f *fakeProvider) PlayerTransfers(ctx context.Context, playerID int) ([]player.Transfer, error) {
	if f.playerTransfersFn == nil {
		return nil, nil
	}
	return f.playerTransfersFn(ctx, playerID)
}

func (f *fakeProvider) Coaches(ctx context.Context, teamID int) ([]coach.Coach, error) {
	if f.coachesFn == nil {
		return nil, nil
	}
	return f.coachesFn(ctx, teamID)
}

func (f *fakeProvider) CoachByID(ctx context.Context, coachID int) (coach.Coach, error) {
	if f.coachByIDFn == nil {
		return coach.Coach{}, nil
	}
	return f.coachByIDFn(ctx, coachID)
}

func (f *fakeProvider) VenueByID(ctx context.Context, venueID int) (venue.Venue, error) {
	if f.venueByIDFn == nil {
		return venue.Venue{}, nil
	}
	return f.venueByIDFn(ctx, venueID)
}

func (f *fakeProvider) SearchVenues(ctx context.Context, name, city, country string) ([]venue.Venue, error) {
	if f.searchVenuesFn == nil {
		return nil, nil
	}
	return f.searchVenuesFn(ctx, name, city, country)
}
