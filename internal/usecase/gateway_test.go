package usecase

import (
	"context"
	"testing"

	"github.com/allsvenskan/insikter/internal/domain/fixture"
	"github.com/allsvenskan/insikter/internal/domain/league"
	"github.com/allsvenskan/insikter/internal/domain/team"
	"github.com/allsvenskan/insikter/internal/platform/logging"
)

func newGatewayWith(provider SportDataProvider) *Gateway {
	return NewGateway(
		NewLeagueService(provider),
		NewFixtureService(provider),
		NewTeamService(provider),
		NewPlayerService(provider),
		logging.NewNop(),
	)
}

func TestGateway_DegradesToEmptyOnFailure(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		standingsFn: func(context.Context) ([]league.Standing, error) {
			return nil, errUpstreamDown
		},
		teamsFn: func(context.Context) ([]team.Team, error) {
			return nil, errUpstreamDown
		},
		liveFixturesFn: func(context.Context) ([]fixture.Fixture, error) {
			return nil, errUpstreamDown
		},
	}
	gw := newGatewayWith(provider)
	ctx := context.Background()

	if rows := gw.Standings(ctx); rows == nil || len(rows) != 0 {
		t.Fatalf("standings must degrade to an empty non-nil slice, got %#v", rows)
	}
	if players := gw.AllLeaguePlayers(ctx); players == nil || len(players) != 0 {
		t.Fatalf("players must degrade to an empty non-nil slice, got %#v", players)
	}
	if live := gw.LiveFixtures(ctx); live == nil || len(live) != 0 {
		t.Fatalf("live fixtures must degrade to an empty non-nil slice, got %#v", live)
	}
	if _, found := gw.HeadCoach(ctx, 0); found {
		t.Fatal("invalid input must degrade to no coach")
	}
}

func TestGateway_PassesThroughSuccess(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		standingsFn: func(context.Context) ([]league.Standing, error) {
			return []league.Standing{{Position: 1, TeamID: 377, TeamName: "Malmo FF", Points: 45}}, nil
		},
	}
	gw := newGatewayWith(provider)

	rows := gw.Standings(context.Background())
	if len(rows) != 1 || rows[0].TeamName != "Malmo FF" {
		t.Fatalf("unexpected standings: %+v", rows)
	}
}
