package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.LeagueID != 113 {
		t.Fatalf("unexpected default LeagueID: %d", cfg.LeagueID)
	}
	if cfg.Season != 2025 {
		t.Fatalf("unexpected default Season: %d", cfg.Season)
	}
	if cfg.CacheTTLLive != 5*time.Minute {
		t.Fatalf("unexpected default CacheTTLLive: %s", cfg.CacheTTLLive)
	}
	if cfg.CacheTTLDefault != 30*time.Minute {
		t.Fatalf("unexpected default CacheTTLDefault: %s", cfg.CacheTTLDefault)
	}
	if cfg.APIFootballBaseURL != "https://v3.football.api-sports.io" {
		t.Fatalf("unexpected default base URL: %q", cfg.APIFootballBaseURL)
	}
	if cfg.APIFootballTimeout != 30*time.Second {
		t.Fatalf("unexpected default timeout: %s", cfg.APIFootballTimeout)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty DB_URL by default, got %q", cfg.DBURL)
	}
}

func TestLoad_TTLOrdering(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_TTL_LIVE", "1h")
	t.Setenv("CACHE_TTL_DEFAULT", "30m")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when live TTL exceeds default TTL")
	}
}

func TestLoad_CircuitValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APIFOOTBALL_CIRCUIT_FAILURE_COUNT", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero circuit failure count")
	}
}

func TestLoad_PyroscopeRequiresAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without server address")
	}
}
