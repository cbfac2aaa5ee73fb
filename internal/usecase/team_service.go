package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/allsvenskan/insikter/internal/domain/coach"
	"github.com/allsvenskan/insikter/internal/domain/fixture"
	"github.com/allsvenskan/insikter/internal/domain/team"
	"github.com/allsvenskan/insikter/internal/domain/venue"
)

// TeamService exposes team rosters, season statistics, formation
// history and coach resolution.
type TeamService struct {
	provider SportDataProvider
}

func NewTeamService(provider SportDataProvider) *TeamService {
	return &TeamService{provider: provider}
}

func (s *TeamService) Teams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.Teams")
	defer span.End()

	items, err := s.provider.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) TeamStatistics(ctx context.Context, teamID int) (team.Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.TeamStatistics")
	defer span.End()

	if teamID <= 0 {
		return team.Statistics{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	stats, err := s.provider.TeamStatistics(ctx, teamID)
	if err != nil {
		return team.Statistics{}, fmt.Errorf("fetch team statistics team_id=%d: %w", teamID, err)
	}
	return stats, nil
}

func (s *TeamService) TeamSquad(ctx context.Context, teamID int) ([]team.SquadMember, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.TeamSquad")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	members, err := s.provider.TeamSquad(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetch squad team_id=%d: %w", teamID, err)
	}
	return members, nil
}

// TeamFormations derives formation frequency from the team's fixture
// history: one lineups call per fixture, a failed fixture is recorded
// and skipped. Output is sorted by descending match count; ties keep
// first-seen order.
func (s *TeamService) TeamFormations(ctx context.Context, teamID int) ([]fixture.FormationCount, []SubCallFailure, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.TeamFormations")
	defer span.End()

	if teamID <= 0 {
		return nil, nil, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	fixtures, err := s.provider.Fixtures(ctx, FixtureFilter{TeamID: teamID})
	if err != nil {
		return nil, nil, fmt.Errorf("fetch fixtures team_id=%d: %w", teamID, err)
	}

	counts := make(map[string]int, 8)
	firstSeen := make(map[string]int, 8)
	var failures []SubCallFailure

	for _, f := range fixtures {
		lineups, err := s.provider.FixtureLineups(ctx, f.ID)
		if err != nil {
			failures = append(failures, SubCallFailure{Op: "fixture_lineups", Ref: f.ID, Err: err})
			continue
		}
		for _, lineup := range lineups {
			if lineup.TeamID != teamID || lineup.Formation == "" {
				continue
			}
			if _, seen := counts[lineup.Formation]; !seen {
				firstSeen[lineup.Formation] = len(firstSeen)
			}
			counts[lineup.Formation]++
		}
	}

	out := make([]fixture.FormationCount, 0, len(counts))
	for formation, matches := range counts {
		out = append(out, fixture.FormationCount{Formation: formation, Matches: matches})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Matches != out[j].Matches {
			return out[i].Matches > out[j].Matches
		}
		return firstSeen[out[i].Formation] < firstSeen[out[j].Formation]
	})

	return out, failures, nil
}

// HeadCoach picks the coach with an open engagement at the team; if
// none qualifies the first listed coach is returned, and an empty list
// means no coach, not an error.
func (s *TeamService) HeadCoach(ctx context.Context, teamID int) (coach.Coach, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.HeadCoach")
	defer span.End()

	if teamID <= 0 {
		return coach.Coach{}, false, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	coaches, err := s.provider.Coaches(ctx, teamID)
	if err != nil {
		return coach.Coach{}, false, fmt.Errorf("fetch coaches team_id=%d: %w", teamID, err)
	}
	if len(coaches) == 0 {
		return coach.Coach{}, false, nil
	}

	for _, c := range coaches {
		if c.CurrentFor(teamID) {
			return c, true, nil
		}
	}
	return coaches[0], true, nil
}

func (s *TeamService) Coaches(ctx context.Context, teamID int) ([]coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.Coaches")
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	coaches, err := s.provider.Coaches(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetch coaches team_id=%d: %w", teamID, err)
	}
	return coaches, nil
}

func (s *TeamService) CoachByID(ctx context.Context, coachID int) (coach.Coach, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.CoachByID")
	defer span.End()

	if coachID <= 0 {
		return coach.Coach{}, fmt.Errorf("%w: coach id must be greater than zero", ErrInvalidInput)
	}

	c, err := s.provider.CoachByID(ctx, coachID)
	if err != nil {
		return coach.Coach{}, fmt.Errorf("fetch coach coach_id=%d: %w", coachID, err)
	}
	return c, nil
}

func (s *TeamService) VenueByID(ctx context.Context, venueID int) (venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.VenueByID")
	defer span.End()

	if venueID <= 0 {
		return venue.Venue{}, fmt.Errorf("%w: venue id must be greater than zero", ErrInvalidInput)
	}

	v, err := s.provider.VenueByID(ctx, venueID)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("fetch venue venue_id=%d: %w", venueID, err)
	}
	return v, nil
}

func (s *TeamService) SearchVenues(ctx context.Context, name, city, country string) ([]venue.Venue, error) {
	ctx, span := startUsecaseSpan(ctx, "TeamService.SearchVenues")
	defer span.End()

	if name == "" && city == "" && country == "" {
		return nil, fmt.Errorf("%w: at least one of name, city, country is required", ErrInvalidInput)
	}

	venues, err := s.provider.SearchVenues(ctx, name, city, country)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	return venues, nil
}
