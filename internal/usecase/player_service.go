package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/allsvenskan/insikter/internal/domain/player"
	"github.com/allsvenskan/insikter/internal/platform/slug"
)

// squadWorkerCount caps concurrent squad fetches; upstream rate limits
// make a wide fan-out counterproductive.
const squadWorkerCount = 4

// PlayerService assembles the league-wide player pool from the squads
// endpoint, enriched best-effort from the scorer and assist
// leaderboards.
type PlayerService struct {
	provider SportDataProvider
	newPool  func() (*ants.Pool, error)
}

func NewPlayerService(provider SportDataProvider) *PlayerService {
	return &PlayerService{
		provider: provider,
		newPool: func() (*ants.Pool, error) {
			return ants.NewPool(squadWorkerCount)
		},
	}
}

// AllLeaguePlayers enumerates every team, fetches squads with a small
// worker pool, and overlays leaderboard statistics. A failed squad
// fetch drops that team only; a failed enrichment keeps the
// placeholder records; an empty primary result falls back to a union
// of the two leaderboards. Only team enumeration failure is fatal.
func (s *PlayerService) AllLeaguePlayers(ctx context.Context) ([]player.Player, []SubCallFailure, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.AllLeaguePlayers")
	defer span.End()

	teams, err := s.provider.Teams(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("enumerate teams: %w", err)
	}

	perTeam := make([][]player.Player, len(teams))
	var mu sync.Mutex
	var failures []SubCallFailure

	pool, err := s.newPool()
	if err != nil {
		return nil, nil, fmt.Errorf("create squad worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, t := range teams {
		i, t := i, t
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			members, squadErr := s.provider.TeamSquad(ctx, t.ID)
			if squadErr != nil {
				mu.Lock()
				failures = append(failures, SubCallFailure{Op: "team_squad", Ref: t.ID, Err: squadErr})
				mu.Unlock()
				return
			}

			rows := make([]player.Player, 0, len(members))
			for _, m := range members {
				rows = append(rows, placeholderPlayer(m.PlayerID, m.Name, m.Age, m.PhotoURL, m.Position, t.ID, t.Name, s.provider.LeagueID(), s.provider.Season()))
			}
			perTeam[i] = rows
		}); err != nil {
			workers.Done()
			// Join the workers already submitted before touching the
			// shared slices they append to.
			workers.Wait()
			return nil, failures, fmt.Errorf("submit squad fetch team_id=%d: %w", t.ID, err)
		}
	}
	workers.Wait()

	players := make([]player.Player, 0, len(teams)*28)
	for _, rows := range perTeam {
		players = append(players, rows...)
	}

	if len(players) == 0 {
		fallback, fallbackFailures := s.leaderboardFallback(ctx)
		failures = append(failures, fallbackFailures...)
		return fallback, failures, nil
	}

	enriched, enrichFailures := s.enrich(ctx, players)
	failures = append(failures, enrichFailures...)
	return enriched, failures, nil
}

// enrich overlays leaderboard statistics onto placeholder records.
// Scorer data wins when a player appears in both tables; the assist
// table is consulted only for ids absent from the scorer table.
func (s *PlayerService) enrich(ctx context.Context, players []player.Player) ([]player.Player, []SubCallFailure) {
	scorers, assists, failures := s.fetchLeaderboards(ctx)
	if len(scorers) == 0 && len(assists) == 0 {
		return players, failures
	}

	byScorer := indexByID(scorers)
	byAssist := indexByID(assists)

	for i := range players {
		if rich, ok := byScorer[players[i].ID]; ok {
			players[i].Statistics = rich.Statistics
		} else if rich, ok := byAssist[players[i].ID]; ok {
			players[i].Statistics = rich.Statistics
		}
	}

	return players, failures
}

// leaderboardFallback unions the two leaderboards when the squads
// endpoint yields nothing: scorer entries form the base, assist-only
// players are appended, and an assist count is merged onto a scorer
// entry only when the entry does not already carry one.
func (s *PlayerService) leaderboardFallback(ctx context.Context) ([]player.Player, []SubCallFailure) {
	scorers, assists, failures := s.fetchLeaderboards(ctx)

	out := make([]player.Player, 0, len(scorers)+len(assists))
	seen := make(map[int]int, len(scorers))
	for _, p := range scorers {
		seen[p.ID] = len(out)
		out = append(out, p)
	}
	for _, p := range assists {
		if at, ok := seen[p.ID]; ok {
			if out[at].Statistics.Assists == 0 {
				out[at].Statistics.Assists = p.Statistics.Assists
			}
			continue
		}
		out = append(out, p)
	}

	return out, failures
}

func (s *PlayerService) fetchLeaderboards(ctx context.Context) ([]player.Player, []player.Player, []SubCallFailure) {
	var (
		scorers, assists       []player.Player
		scorersErr, assistsErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		scorers, scorersErr = s.provider.TopScorers(ctx)
	})
	wg.Go(func() {
		assists, assistsErr = s.provider.TopAssists(ctx)
	})
	wg.Wait()

	var failures []SubCallFailure
	if scorersErr != nil {
		failures = append(failures, SubCallFailure{Op: "top_scorers", Err: scorersErr})
	}
	if assistsErr != nil {
		failures = append(failures, SubCallFailure{Op: "top_assists", Err: assistsErr})
	}

	return scorers, assists, failures
}

// PlayerBySlug scans the full aggregation for the first player whose
// slugified name matches. Colliding names resolve to the first match.
func (s *PlayerService) PlayerBySlug(ctx context.Context, wanted string) (player.Player, bool, []SubCallFailure, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.PlayerBySlug")
	defer span.End()

	wanted = strings.TrimSpace(wanted)
	if wanted == "" {
		return player.Player{}, false, nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	players, failures, err := s.AllLeaguePlayers(ctx)
	if err != nil {
		return player.Player{}, false, failures, err
	}

	for _, p := range players {
		if slug.Make(p.Name) == wanted {
			return p, true, failures, nil
		}
	}
	return player.Player{}, false, failures, nil
}

func (s *PlayerService) TopScorers(ctx context.Context, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.TopScorers")
	defer span.End()

	players, err := s.provider.TopScorers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch top scorers: %w", err)
	}
	return truncate(players, limit), nil
}

func (s *PlayerService) TopAssists(ctx context.Context, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.TopAssists")
	defer span.End()

	players, err := s.provider.TopAssists(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch top assists: %w", err)
	}
	return truncate(players, limit), nil
}

func (s *PlayerService) PlayerStatistics(ctx context.Context, playerID int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.PlayerStatistics")
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	players, err := s.provider.PlayerStatistics(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetch player statistics player_id=%d: %w", playerID, err)
	}
	return players, nil
}

func (s *PlayerService) SearchPlayers(ctx context.Context, query string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.SearchPlayers")
	defer span.End()

	query = strings.TrimSpace(query)
	if len(query) < 3 {
		return nil, fmt.Errorf("%w: search query must be at least 3 characters", ErrInvalidInput)
	}

	players, err := s.provider.SearchPlayers(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search players query=%q: %w", query, err)
	}
	return players, nil
}

func (s *PlayerService) PlayerTransfers(ctx context.Context, playerID int) ([]player.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "PlayerService.PlayerTransfers")
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	transfers, err := s.provider.PlayerTransfers(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetch transfers player_id=%d: %w", playerID, err)
	}
	return transfers, nil
}

func placeholderPlayer(id int, name string, age int, photo, position string, teamID int, teamName string, leagueID, season int) player.Player {
	return player.Player{
		ID:       id,
		Name:     name,
		Age:      age,
		PhotoURL: photo,
		Statistics: player.Statistics{
			TeamID:   teamID,
			TeamName: teamName,
			LeagueID: leagueID,
			Season:   season,
			Position: position,
		},
	}
}

func indexByID(players []player.Player) map[int]player.Player {
	out := make(map[int]player.Player, len(players))
	for _, p := range players {
		if _, exists := out[p.ID]; !exists {
			out[p.ID] = p
		}
	}
	return out
}

func truncate(players []player.Player, limit int) []player.Player {
	if limit > 0 && len(players) > limit {
		return players[:limit]
	}
	return players
}
