package usecase

import (
	"context"

	"github.com/allsvenskan/insikter/internal/domain/coach"
	"github.com/allsvenskan/insikter/internal/domain/fixture"
	"github.com/allsvenskan/insikter/internal/domain/league"
	"github.com/allsvenskan/insikter/internal/domain/player"
	"github.com/allsvenskan/insikter/internal/domain/team"
	"github.com/allsvenskan/insikter/internal/domain/venue"
	"github.com/allsvenskan/insikter/internal/platform/logging"
)

// Gateway is the degrade-to-empty surface consumed by presentation
// code. Every method catches failures, logs them, and returns a typed
// empty value, so callers never need a surrounding error handler. It
// is constructed once at startup with its services injected.
type Gateway struct {
	leagues  *LeagueService
	fixtures *FixtureService
	teams    *TeamService
	players  *PlayerService
	logger   *logging.Logger
}

func NewGateway(
	leagues *LeagueService,
	fixtures *FixtureService,
	teams *TeamService,
	players *PlayerService,
	logger *logging.Logger,
) *Gateway {
	if logger == nil {
		logger = logging.Default()
	}
	return &Gateway{
		leagues:  leagues,
		fixtures: fixtures,
		teams:    teams,
		players:  players,
		logger:   logger,
	}
}

func (g *Gateway) LeagueInfo(ctx context.Context) league.League {
	info, err := g.leagues.LeagueInfo(ctx)
	if err != nil {
		g.degrade(ctx, "league_info", err)
		return league.League{}
	}
	return info
}

func (g *Gateway) Standings(ctx context.Context) []league.Standing {
	rows, err := g.leagues.Standings(ctx)
	if err != nil {
		g.degrade(ctx, "standings", err)
		return []league.Standing{}
	}
	return rows
}

func (g *Gateway) Fixtures(ctx context.Context, filter FixtureFilter) []fixture.Fixture {
	items, err := g.fixtures.Fixtures(ctx, filter)
	if err != nil {
		g.degrade(ctx, "fixtures", err)
		return []fixture.Fixture{}
	}
	return items
}

func (g *Gateway) LiveFixtures(ctx context.Context) []fixture.Fixture {
	items, err := g.fixtures.LiveFixtures(ctx)
	if err != nil {
		g.degrade(ctx, "live_fixtures", err)
		return []fixture.Fixture{}
	}
	return items
}

func (g *Gateway) FixtureLineups(ctx context.Context, fixtureID int) []fixture.Lineup {
	items, err := g.fixtures.FixtureLineups(ctx, fixtureID)
	if err != nil {
		g.degrade(ctx, "fixture_lineups", err)
		return []fixture.Lineup{}
	}
	return items
}

func (g *Gateway) HeadToHead(ctx context.Context, teamA, teamB, last int) []fixture.Fixture {
	items, err := g.fixtures.HeadToHead(ctx, teamA, teamB, last)
	if err != nil {
		g.degrade(ctx, "head_to_head", err)
		return []fixture.Fixture{}
	}
	return items
}

func (g *Gateway) Teams(ctx context.Context) []team.Team {
	items, err := g.teams.Teams(ctx)
	if err != nil {
		g.degrade(ctx, "teams", err)
		return []team.Team{}
	}
	return items
}

func (g *Gateway) TeamStatistics(ctx context.Context, teamID int) team.Statistics {
	stats, err := g.teams.TeamStatistics(ctx, teamID)
	if err != nil {
		g.degrade(ctx, "team_statistics", err)
		return team.Statistics{}
	}
	return stats
}

func (g *Gateway) TeamSquad(ctx context.Context, teamID int) []team.SquadMember {
	members, err := g.teams.TeamSquad(ctx, teamID)
	if err != nil {
		g.degrade(ctx, "team_squad", err)
		return []team.SquadMember{}
	}
	return members
}

func (g *Gateway) TeamFormations(ctx context.Context, teamID int) []fixture.FormationCount {
	counts, failures, err := g.teams.TeamFormations(ctx, teamID)
	g.logFailures(ctx, "team_formations", failures)
	if err != nil {
		g.degrade(ctx, "team_formations", err)
		return []fixture.FormationCount{}
	}
	return counts
}

func (g *Gateway) HeadCoach(ctx context.Context, teamID int) (coach.Coach, bool) {
	c, found, err := g.teams.HeadCoach(ctx, teamID)
	if err != nil {
		g.degrade(ctx, "head_coach", err)
		return coach.Coach{}, false
	}
	return c, found
}

func (g *Gateway) Coaches(ctx context.Context, teamID int) []coach.Coach {
	coaches, err := g.teams.Coaches(ctx, teamID)
	if err != nil {
		g.degrade(ctx, "coaches", err)
		return []coach.Coach{}
	}
	return coaches
}

func (g *Gateway) CoachByID(ctx context.Context, coachID int) (coach.Coach, bool) {
	c, err := g.teams.CoachByID(ctx, coachID)
	if err != nil {
		g.degrade(ctx, "coach_by_id", err)
		return coach.Coach{}, false
	}
	return c, true
}

func (g *Gateway) VenueByID(ctx context.Context, venueID int) (venue.Venue, bool) {
	v, err := g.teams.VenueByID(ctx, venueID)
	if err != nil {
		g.degrade(ctx, "venue_by_id", err)
		return venue.Venue{}, false
	}
	return v, true
}

func (g *Gateway) SearchVenues(ctx context.Context, name, city, country string) []venue.Venue {
	venues, err := g.teams.SearchVenues(ctx, name, city, country)
	if err != nil {
		g.degrade(ctx, "search_venues", err)
		return []venue.Venue{}
	}
	return venues
}

func (g *Gateway) AllLeaguePlayers(ctx context.Context) []player.Player {
	players, failures, err := g.players.AllLeaguePlayers(ctx)
	g.logFailures(ctx, "all_league_players", failures)
	if err != nil {
		g.degrade(ctx, "all_league_players", err)
		return []player.Player{}
	}
	return players
}

func (g *Gateway) PlayerBySlug(ctx context.Context, wanted string) (player.Player, bool) {
	p, found, failures, err := g.players.PlayerBySlug(ctx, wanted)
	g.logFailures(ctx, "player_by_slug", failures)
	if err != nil {
		g.degrade(ctx, "player_by_slug", err)
		return player.Player{}, false
	}
	return p, found
}

func (g *Gateway) TopScorers(ctx context.Context, limit int) []player.Player {
	players, err := g.players.TopScorers(ctx, limit)
	if err != nil {
		g.degrade(ctx, "top_scorers", err)
		return []player.Player{}
	}
	return players
}

func (g *Gateway) TopAssists(ctx context.Context, limit int) []player.Player {
	players, err := g.players.TopAssists(ctx, limit)
	if err != nil {
		g.degrade(ctx, "top_assists", err)
		return []player.Player{}
	}
	return players
}

func (g *Gateway) PlayerStatistics(ctx context.Context, playerID int) []player.Player {
	players, err := g.players.PlayerStatistics(ctx, playerID)
	if err != nil {
		g.degrade(ctx, "player_statistics", err)
		return []player.Player{}
	}
	return players
}

func (g *Gateway) SearchPlayers(ctx context.Context, query string) []player.Player {
	players, err := g.players.SearchPlayers(ctx, query)
	if err != nil {
		g.degrade(ctx, "search_players", err)
		return []player.Player{}
	}
	return players
}

func (g *Gateway) PlayerTransfers(ctx context.Context, playerID int) []player.Transfer {
	transfers, err := g.players.PlayerTransfers(ctx, playerID)
	if err != nil {
		g.degrade(ctx, "player_transfers", err)
		return []player.Transfer{}
	}
	return transfers
}

func (g *Gateway) degrade(ctx context.Context, op string, err error) {
	g.logger.WarnContext(ctx, "football data unavailable, returning empty result", "op", op, "error", err)
}

func (g *Gateway) logFailures(ctx context.Context, op string, failures []SubCallFailure) {
	for _, failure := range failures {
		g.logger.WarnContext(ctx, "partial failure in composite workflow",
			"op", op,
			"sub_op", failure.Op,
			"ref", failure.Ref,
			"error", failure.Err,
		)
	}
}
