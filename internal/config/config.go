package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/allsvenskan/insikter/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	DBURL string

	APIFootballKey                 string
	APIFootballHost                string
	APIFootballBaseURL             string
	APIFootballTimeout             time.Duration
	APIFootballMaxRetries          int
	APIFootballCircuitEnabled      bool
	APIFootballCircuitFailureCount int
	APIFootballCircuitOpenTimeout  time.Duration
	APIFootballCircuitProbeLimit   int

	LeagueID int
	Season   int

	CacheTTLLive    time.Duration
	CacheTTLDefault time.Duration

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	PprofEnabled bool
	PprofAddr    string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	apiFootballTimeout, err := time.ParseDuration(getEnv("APIFOOTBALL_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APIFOOTBALL_TIMEOUT: %w", err)
	}
	if apiFootballTimeout <= 0 {
		return Config{}, fmt.Errorf("APIFOOTBALL_TIMEOUT must be > 0")
	}
	apiFootballMaxRetries, err := getEnvAsInt("APIFOOTBALL_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse APIFOOTBALL_MAX_RETRIES: %w", err)
	}
	if apiFootballMaxRetries < 0 {
		return Config{}, fmt.Errorf("APIFOOTBALL_MAX_RETRIES must be >= 0")
	}
	apiFootballCircuitEnabled, err := strconv.ParseBool(getEnv("APIFOOTBALL_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APIFOOTBALL_CIRCUIT_ENABLED: %w", err)
	}
	apiFootballCircuitFailureCount, err := getEnvAsInt("APIFOOTBALL_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse APIFOOTBALL_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if apiFootballCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("APIFOOTBALL_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	apiFootballCircuitOpenTimeout, err := time.ParseDuration(getEnv("APIFOOTBALL_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APIFOOTBALL_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if apiFootballCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("APIFOOTBALL_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	apiFootballCircuitProbeLimit, err := getEnvAsInt("APIFOOTBALL_CIRCUIT_PROBE_LIMIT", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse APIFOOTBALL_CIRCUIT_PROBE_LIMIT: %w", err)
	}
	if apiFootballCircuitProbeLimit < 1 {
		return Config{}, fmt.Errorf("APIFOOTBALL_CIRCUIT_PROBE_LIMIT must be >= 1")
	}

	leagueID, err := getEnvAsInt("LEAGUE_ID", 113)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEAGUE_ID: %w", err)
	}
	if leagueID < 1 {
		return Config{}, fmt.Errorf("LEAGUE_ID must be >= 1")
	}
	season, err := getEnvAsInt("SEASON", 2025)
	if err != nil {
		return Config{}, fmt.Errorf("parse SEASON: %w", err)
	}
	if season < 1900 {
		return Config{}, fmt.Errorf("SEASON must be a four digit year")
	}

	cacheTTLLive, err := time.ParseDuration(getEnv("CACHE_TTL_LIVE", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL_LIVE: %w", err)
	}
	if cacheTTLLive <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL_LIVE must be > 0")
	}
	cacheTTLDefault, err := time.ParseDuration(getEnv("CACHE_TTL_DEFAULT", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL_DEFAULT: %w", err)
	}
	if cacheTTLDefault <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL_DEFAULT must be > 0")
	}
	if cacheTTLLive > cacheTTLDefault {
		return Config{}, fmt.Errorf("CACHE_TTL_LIVE must not exceed CACHE_TTL_DEFAULT")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "insikter-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		// Empty DB_URL keeps cart storage in memory.
		DBURL: strings.TrimSpace(getEnv("DB_URL", "")),

		APIFootballKey:                 strings.TrimSpace(getEnv("APIFOOTBALL_KEY", "")),
		APIFootballHost:                strings.TrimSpace(getEnv("APIFOOTBALL_HOST", "v3.football.api-sports.io")),
		APIFootballBaseURL:             strings.TrimSpace(getEnv("APIFOOTBALL_BASE_URL", "https://v3.football.api-sports.io")),
		APIFootballTimeout:             apiFootballTimeout,
		APIFootballMaxRetries:          apiFootballMaxRetries,
		APIFootballCircuitEnabled:      apiFootballCircuitEnabled,
		APIFootballCircuitFailureCount: apiFootballCircuitFailureCount,
		APIFootballCircuitOpenTimeout:  apiFootballCircuitOpenTimeout,
		APIFootballCircuitProbeLimit:   apiFootballCircuitProbeLimit,

		LeagueID: leagueID,
		Season:   season,

		CacheTTLLive:    cacheTTLLive,
		CacheTTLDefault: cacheTTLDefault,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q (want dev, stage or prod)", v)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return parsed, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		candidate := strings.TrimSpace(part)
		if candidate == "" {
			continue
		}
		out = append(out, candidate)
	}

	return out
}
