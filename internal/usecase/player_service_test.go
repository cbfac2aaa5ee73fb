package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/allsvenskan/insikter/internal/domain/player"
	"github.com/allsvenskan/insikter/internal/domain/team"
)

func leagueTeams(ids ...int) []team.Team {
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, team.Team{ID: id, Name: fmt.Sprintf("Team %d", id)})
	}
	return out
}

func TestAllLeaguePlayers_SkipsFailedSquad(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		teamsFn: func(context.Context) ([]team.Team, error) {
			return leagueTeams(1, 2, 3), nil
		},
		teamSquadFn: func(_ context.Context, teamID int) ([]team.SquadMember, error) {
			if teamID == 2 {
				return nil, errUpstreamDown
			}
			return []team.SquadMember{
				{PlayerID: teamID * 100, Name: fmt.Sprintf("Player %d", teamID), Position: "Midfielder"},
			}, nil
		},
	}

	svc := NewPlayerService(provider)
	players, failures, err := svc.AllLeaguePlayers(context.Background())
	if err != nil {
		t.Fatalf("aggregation should survive one squad failure: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected players from teams 1 and 3, got %d", len(players))
	}
	for _, p := range players {
		if p.ID == 200 {
			t.Fatal("failed team's player leaked into the result")
		}
	}

	if len(failures) != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", len(failures))
	}
	if failures[0].Op != "team_squad" || failures[0].Ref != 2 {
		t.Fatalf("unexpected failure record: %+v", failures[0])
	}
}

func TestAllLeaguePlayers_SubmitFailureJoinsInFlightWork(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	provider := &fakeProvider{
		teamsFn: func(context.Context) ([]team.Team, error) {
			return leagueTeams(101, 102, 103), nil
		},
		teamSquadFn: func(context.Context, int) ([]team.SquadMember, error) {
			<-release
			return nil, nil
		},
	}

	svc := NewPlayerService(provider)
	// A single-worker nonblocking pool makes the second submission
	// overflow while the first squad fetch is still parked.
	svc.newPool = func() (*ants.Pool, error) {
		return ants.NewPool(1, ants.WithNonblocking(true))
	}

	done := make(chan error, 1)
	go func() {
		_, _, err := svc.AllLeaguePlayers(context.Background())
		done <- err
	}()

	select {
	case err := <-done:
		t.Fatalf("returned while a submitted worker was still running: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	err := <-done
	if err == nil {
		t.Fatal("expected a submit failure")
	}
	if !strings.Contains(err.Error(), "submit squad fetch") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAllLeaguePlayers_TeamEnumerationFailureIsFatal(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		teamsFn: func(context.Context) ([]team.Team, error) {
			return nil, errUpstreamDown
		},
	}

	svc := NewPlayerService(provider)
	if _, _, err := svc.AllLeaguePlayers(context.Background()); err == nil {
		t.Fatal("team enumeration failure must abort the workflow")
	}
}

func TestAllLeaguePlayers_PlaceholderStatistics(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		teamsFn: func(context.Context) ([]team.Team, error) {
			return []team.Team{{ID: 377, Name: "Malmo FF"}}, nil
		},
		teamSquadFn: func(context.Context, int) ([]team.SquadMember, error) {
			return []team.SquadMember{{PlayerID: 9, Name: "Nine", Position: "Attacker"}}, nil
		},
	}

	svc := NewPlayerService(provider)
	players, _, err := svc.AllLeaguePlayers(context.Background())
	if err != nil {
		t.Fatalf("aggregation: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(players))
	}

	stats := players[0].Statistics
	if stats.Goals != 0 || stats.Assists != 0 || stats.YellowCards != 0 || stats.RedCards != 0 {
		t.Fatalf("placeholder stats should be zeroed: %+v", stats)
	}
	if stats.Position != "Attacker" {
		t.Fatalf("placeholder position should come from the squad entry, got %q", stats.Position)
	}
	if stats.TeamID != 377 || stats.TeamName != "Malmo FF" {
		t.Fatalf("placeholder stats not tagged with team: %+v", stats)
	}
	if stats.LeagueID != 113 || stats.Season != 2025 {
		t.Fatalf("placeholder stats not tagged with league scope: %+v", stats)
	}
}

func TestEnrichment_PrefersScorerData(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		teamsFn: func(context.Context) ([]team.Team, error) {
			return []team.Team{{ID: 1, Name: "A"}}, nil
		},
		teamSquadFn: func(context.Context, int) ([]team.SquadMember, error) {
			return []team.SquadMember{{PlayerID: 7, Name: "Seven", Position: "Attacker"}}, nil
		},
		topScorersFn: func(context.Context) ([]player.Player, error) {
			return []player.Player{{ID: 7, Name: "Seven", Statistics: player.Statistics{Goals: 12, Assists: 3}}}, nil
		},
		topAssistsFn: func(context.Context) ([]player.Player, error) {
			return []player.Player{{ID: 7, Name: "Seven", Statistics: player.Statistics{Goals: 2, Assists: 9}}}, nil
		},
	}

	svc := NewPlayerService(provider)
	players, failures, err := svc.AllLeaguePlayers(context.Background())
	if err != nil {
		t.Fatalf("aggregation: %v", err)
	}
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %+v", failures)
	}
	if got := players[0].Statistics; got.Goals != 12 || got.Assists != 3 {
		t.Fatalf("scorer entry must win when a player is on both leaderboards, got %+v", got)
	}
}

func TestEnrichment_AssistDataUsedWhenScorerAbsent(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		teamsFn: func(context.Context) ([]team.Team, error) {
			return []team.Team{{ID: 1, Name: "A"}}, nil
		},
		teamSquadFn: func(context.Context, int) ([]team.SquadMember, error) {
			return []team.SquadMember{{PlayerID: 8, Name: "Eight", Position: "Midfielder"}}, nil
		},
		topScorersFn: func(context.Context) ([]player.Player, error) {
			return []player.Player{{ID: 99, Statistics: player.Statistics{Goals: 20}}}, nil
		},
		topAssistsFn: func(context.Context) ([]player.Player, error) {
			return []player.Player{{ID: 8, Statistics: player.Statistics{Goals: 1, Assists: 11}}}, nil
		},
	}

	svc := NewPlayerService(provider)
	players, _, err := svc.AllLeaguePlayers(context.Background())
	if err != nil {
		t.Fatalf("aggregation: %v", err)
	}
	if got := players[0].Statistics; got.Assists != 11 {
		t.Fatalf("assist entry should enrich an id absent from the scorer table, got %+v", got)
	}
}

func TestEnrichment_FailureKeepsPlaceholders(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		teamsFn: func(context.Context) ([]team.Team, error) {
			return []team.Team{{ID: 1, Name: "A"}}, nil
		},
		teamSquadFn: func(context.Context, int) ([]team.SquadMember, error) {
			return []team.SquadMember{{PlayerID: 5, Name: "Five", Position: "Defender"}}, nil
		},
		topScorersFn: func(context.Context) ([]player.Player, error) {
			return nil, errUpstreamDown
		},
		topAssistsFn: func(context.Context) ([]player.Player, error) {
			return nil, errUpstreamDown
		},
	}

	svc := NewPlayerService(provider)
	players, failures, err := svc.AllLeaguePlayers(context.Background())
	if err != nil {
		t.Fatalf("enrichment failure must not fail the workflow: %v", err)
	}
	if len(players) != 1 || players[0].Statistics.Position != "Defender" {
		t.Fatalf("placeholder list should survive enrichment failure: %+v", players)
	}
	if len(failures) != 2 {
		t.Fatalf("both leaderboard failures should be recorded, got %+v", failures)
	}
}

func TestLeaderboardFallback_UnionWithDefaultIfAbsentAssists(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		teamsFn: func(context.Context) ([]team.Team, error) {
			return nil, nil // squads tier unavailable: nothing to enumerate
		},
		topScorersFn: func(context.Context) ([]player.Player, error) {
			return []player.Player{
				{ID: 1, Name: "Scorer With Assists", Statistics: player.Statistics{Goals: 10, Assists: 4}},
				{ID: 2, Name: "Scorer Without Assists", Statistics: player.Statistics{Goals: 7}},
			}, nil
		},
		topAssistsFn: func(context.Context) ([]player.Player, error) {
			return []player.Player{
				{ID: 1, Statistics: player.Statistics{Assists: 9}},
				{ID: 2, Statistics: player.Statistics{Assists: 6}},
				{ID: 3, Name: "Assist Only", Statistics: player.Statistics{Assists: 8}},
			}, nil
		},
	}

	svc := NewPlayerService(provider)
	players, _, err := svc.AllLeaguePlayers(context.Background())
	if err != nil {
		t.Fatalf("fallback should not error: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected union of 3 players, got %d", len(players))
	}

	byID := make(map[int]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	if got := byID[1].Statistics.Assists; got != 4 {
		t.Fatalf("existing assists count must not be overwritten, got %d", got)
	}
	if got := byID[2].Statistics.Assists; got != 6 {
		t.Fatalf("absent assists count should be merged in, got %d", got)
	}
	if got := byID[3].Statistics.Assists; got != 8 {
		t.Fatalf("assist-only player should be appended, got %d", got)
	}
}

func TestPlayerBySlug(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		teamsFn: func(context.Context) ([]team.Team, error) {
			return []team.Team{{ID: 1, Name: "A"}}, nil
		},
		teamSquadFn: func(context.Context, int) ([]team.SquadMember, error) {
			return []team.SquadMember{
				{PlayerID: 1, Name: "Jon Doe"},
				{PlayerID: 2, Name: "Jón Döe"},
				{PlayerID: 3, Name: "Other Name"},
			}, nil
		},
	}

	svc := NewPlayerService(provider)

	p, found, _, err := svc.PlayerBySlug(context.Background(), "jon-doe")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !found {
		t.Fatal("expected a match for colliding slug")
	}
	// Both names slugify identically; first match in input order wins.
	if p.ID != 1 {
		t.Fatalf("expected first-match resolution, got player %d", p.ID)
	}

	_, found, _, err = svc.PlayerBySlug(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if found {
		t.Fatal("absent slug must report not found, not an error")
	}
}

func TestTopScorers_LimitTruncates(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{
		topScorersFn: func(context.Context) ([]player.Player, error) {
			return []player.Player{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
	}

	svc := NewPlayerService(provider)
	players, err := svc.TopScorers(context.Background(), 2)
	if err != nil {
		t.Fatalf("top scorers: %v", err)
	}
	if len(players) != 2 || players[0].ID != 1 {
		t.Fatalf("limit truncation failed: %+v", players)
	}

	all, err := svc.TopScorers(context.Background(), 0)
	if err != nil {
		t.Fatalf("top scorers unlimited: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("zero limit should return everything, got %d", len(all))
	}
}

func TestSearchPlayers_RejectsShortQuery(t *testing.T) {
	t.Parallel()

	svc := NewPlayerService(&fakeProvider{})
	if _, err := svc.SearchPlayers(context.Background(), "ab"); err == nil {
		t.Fatal("expected invalid input error for short query")
	}
}
