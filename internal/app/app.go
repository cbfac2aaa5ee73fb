package app

import (
	"fmt"
	"net/http"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"

	"github.com/allsvenskan/insikter/external/apifootball"
	"github.com/allsvenskan/insikter/internal/config"
	"github.com/allsvenskan/insikter/internal/domain/cart"
	"github.com/allsvenskan/insikter/internal/infrastructure/repository/memory"
	"github.com/allsvenskan/insikter/internal/infrastructure/repository/postgres"
	"github.com/allsvenskan/insikter/internal/interfaces/httpapi"
	"github.com/allsvenskan/insikter/internal/platform/cache"
	idgen "github.com/allsvenskan/insikter/internal/platform/id"
	"github.com/allsvenskan/insikter/internal/platform/logging"
	"github.com/allsvenskan/insikter/internal/platform/resilience"
	"github.com/allsvenskan/insikter/internal/usecase"
)

// NewHTTPServer wires the whole service. The returned cleanup releases
// resources the server holds open (currently the cart database pool).
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	provider := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:    cfg.APIFootballBaseURL,
		Key:        cfg.APIFootballKey,
		Host:       cfg.APIFootballHost,
		LeagueID:   cfg.LeagueID,
		Season:     cfg.Season,
		Timeout:    cfg.APIFootballTimeout,
		MaxRetries: cfg.APIFootballMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APIFootballCircuitEnabled,
			FailureThreshold: cfg.APIFootballCircuitFailureCount,
			OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
			ProbeLimit:       cfg.APIFootballCircuitProbeLimit,
		},
		Cache:      cache.NewStore(),
		LiveTTL:    cfg.CacheTTLLive,
		DefaultTTL: cfg.CacheTTLDefault,
	})

	gateway := usecase.NewGateway(
		usecase.NewLeagueService(provider),
		usecase.NewFixtureService(provider),
		usecase.NewTeamService(provider),
		usecase.NewPlayerService(provider),
		logger,
	)

	cartRepo, cleanup, err := newCartRepository(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cartSvc := usecase.NewCartService(cartRepo, idgen.NewRandomGenerator())

	handler := httpapi.NewHandler(gateway, cartSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func newCartRepository(cfg config.Config, logger *logging.Logger) (cart.Repository, func() error, error) {
	if cfg.DBURL == "" {
		logger.Info("cart storage in memory", "reason", "DB_URL empty")
		return memory.NewCartRepository(), func() error { return nil }, nil
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName("insikter"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect cart database: %w", err)
	}

	logger.Info("cart storage in postgres")
	return postgres.NewCartRepository(db), db.Close, nil
}
