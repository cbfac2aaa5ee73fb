package usecase

import (
	"context"
	"fmt"

	"github.com/allsvenskan/insikter/internal/domain/league"
)

// LeagueService exposes league metadata and the live table.
type LeagueService struct {
	provider SportDataProvider
}

func NewLeagueService(provider SportDataProvider) *LeagueService {
	return &LeagueService{provider: provider}
}

func (s *LeagueService) LeagueInfo(ctx context.Context) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.LeagueInfo")
	defer span.End()

	info, err := s.provider.LeagueInfo(ctx)
	if err != nil {
		return league.League{}, fmt.Errorf("fetch league info: %w", err)
	}
	return info, nil
}

func (s *LeagueService) Standings(ctx context.Context) ([]league.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "LeagueService.Standings")
	defer span.End()

	rows, err := s.provider.Standings(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	return rows, nil
}
