package usecase

import (
	"context"
	"fmt"

	"github.com/allsvenskan/insikter/internal/domain/fixture"
)

// FixtureService exposes fixture listings, lineups and head-to-head
// history.
type FixtureService struct {
	provider SportDataProvider
}

func NewFixtureService(provider SportDataProvider) *FixtureService {
	return &FixtureService{provider: provider}
}

func (s *FixtureService) Fixtures(ctx context.Context, filter FixtureFilter) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.Fixtures")
	defer span.End()

	if filter.Last < 0 || filter.Next < 0 {
		return nil, fmt.Errorf("%w: last and next must not be negative", ErrInvalidInput)
	}

	items, err := s.provider.Fixtures(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}
	return items, nil
}

func (s *FixtureService) LiveFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.LiveFixtures")
	defer span.End()

	items, err := s.provider.LiveFixtures(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch live fixtures: %w", err)
	}
	return items, nil
}

func (s *FixtureService) FixtureLineups(ctx context.Context, fixtureID int) ([]fixture.Lineup, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.FixtureLineups")
	defer span.End()

	if fixtureID <= 0 {
		return nil, fmt.Errorf("%w: fixture id must be greater than zero", ErrInvalidInput)
	}

	items, err := s.provider.FixtureLineups(ctx, fixtureID)
	if err != nil {
		return nil, fmt.Errorf("fetch lineups fixture_id=%d: %w", fixtureID, err)
	}
	return items, nil
}

func (s *FixtureService) HeadToHead(ctx context.Context, teamA, teamB, last int) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "FixtureService.HeadToHead")
	defer span.End()

	if teamA <= 0 || teamB <= 0 {
		return nil, fmt.Errorf("%w: both team ids must be greater than zero", ErrInvalidInput)
	}
	if last < 0 {
		return nil, fmt.Errorf("%w: last must not be negative", ErrInvalidInput)
	}

	items, err := s.provider.HeadToHead(ctx, teamA, teamB, last)
	if err != nil {
		return nil, fmt.Errorf("fetch head to head %d-%d: %w", teamA, teamB, err)
	}
	return items, nil
}
