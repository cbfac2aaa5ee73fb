package apifootball

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/allsvenskan/insikter/internal/domain/coach"
	"github.com/allsvenskan/insikter/internal/domain/fixture"
	"github.com/allsvenskan/insikter/internal/domain/league"
	"github.com/allsvenskan/insikter/internal/domain/player"
	"github.com/allsvenskan/insikter/internal/domain/team"
	"github.com/allsvenskan/insikter/internal/domain/venue"
	"github.com/allsvenskan/insikter/internal/platform/logging"
	"github.com/allsvenskan/insikter/internal/platform/resilience"
	"github.com/allsvenskan/insikter/internal/usecase"
)

const (
	defaultBaseURL    = "https://v3.football.api-sports.io"
	defaultHost       = "v3.football.api-sports.io"
	defaultTimeout    = 30 * time.Second
	defaultLiveTTL    = 5 * time.Minute
	defaultDefaultTTL = 30 * time.Minute
	maxBodyBytes      = 6 << 20
)

var errTransient = crerr.New("api-football transient failure")

// Cache is the response-cache port. It owns both the lookup and the
// collapse of concurrent misses; the in-process store satisfies it.
type Cache interface {
	GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (any, error)) (any, error)
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Key            string
	Host           string
	LeagueID       int
	Season         int
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Cache          Cache
	LiveTTL        time.Duration
	DefaultTTL     time.Duration
}

// Client talks to the upstream football API. It executes at most one
// network call per distinct (endpoint, parameter set) within the cache
// window and raises *Error for every failure mode.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	key            string
	host           string
	leagueID       int
	season         int
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	cache          Cache
	liveTTL        time.Duration
	defaultTTL     time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = defaultHost
	}

	liveTTL := cfg.LiveTTL
	if liveTTL <= 0 {
		liveTTL = defaultLiveTTL
	}
	defaultTTL := cfg.DefaultTTL
	if defaultTTL <= 0 {
		defaultTTL = defaultDefaultTTL
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		key:            strings.TrimSpace(cfg.Key),
		host:           host,
		leagueID:       cfg.LeagueID,
		season:         cfg.Season,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.ProbeLimit),
		circuitEnabled: breakerCfg.Enabled,
		cache:          cfg.Cache,
		liveTTL:        liveTTL,
		defaultTTL:     defaultTTL,
	}
}

func (c *Client) LeagueID() int { return c.leagueID }
func (c *Client) Season() int   { return c.season }

func (c *Client) LeagueInfo(ctx context.Context) (league.League, error) {
	endpoint, params := leagueInfoRequest(c.leagueID, c.season)
	raw, err := c.doGet(ctx, "league_info", endpoint, params)
	if err != nil {
		return league.League{}, err
	}
	items, err := decodeItems[wireLeagueItem]("league_info", raw)
	if err != nil {
		return league.League{}, err
	}
	out, _ := parseLeague(items, c.season)
	return out, nil
}

func (c *Client) Standings(ctx context.Context) ([]league.Standing, error) {
	endpoint, params := standingsRequest(c.leagueID, c.season)
	raw, err := c.doGet(ctx, "standings", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wireStandingsItem]("standings", raw)
	if err != nil {
		return nil, err
	}
	return parseStandings(items), nil
}

func (c *Client) Fixtures(ctx context.Context, filter usecase.FixtureFilter) ([]fixture.Fixture, error) {
	endpoint, params := fixturesRequest(c.leagueID, c.season, filter)
	raw, err := c.doGet(ctx, "fixtures", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wireFixtureItem]("fixtures", raw)
	if err != nil {
		return nil, err
	}
	return parseFixtures(items), nil
}

func (c *Client) LiveFixtures(ctx context.Context) ([]fixture.Fixture, error) {
	return c.Fixtures(ctx, usecase.FixtureFilter{Live: true})
}

func (c *Client) FixtureLineups(ctx context.Context, fixtureID int) ([]fixture.Lineup, error) {
	endpoint, params := lineupsRequest(fixtureID)
	raw, err := c.doGet(ctx, "fixture_lineups", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wireLineupItem]("fixture_lineups", raw)
	if err != nil {
		return nil, err
	}
	return parseLineups(items), nil
}

func (c *Client) HeadToHead(ctx context.Context, teamA, teamB, last int) ([]fixture.Fixture, error) {
	endpoint, params := headToHeadRequest(teamA, teamB, last)
	raw, err := c.doGet(ctx, "head_to_head", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wireFixtureItem]("head_to_head", raw)
	if err != nil {
		return nil, err
	}
	return parseFixtures(items), nil
}

func (c *Client) Teams(ctx context.Context) ([]team.Team, error) {
	endpoint, params := teamsRequest(c.leagueID, c.season)
	raw, err := c.doGet(ctx, "teams", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wireTeamItem]("teams", raw)
	if err != nil {
		return nil, err
	}
	return parseTeams(items), nil
}

// TeamStatistics is the one endpoint whose response is a single object
// rather than an array.
func (c *Client) TeamStatistics(ctx context.Context, teamID int) (team.Statistics, error) {
	endpoint, params := teamStatisticsRequest(c.leagueID, c.season, teamID)
	raw, err := c.doGet(ctx, "team_statistics", endpoint, params)
	if err != nil {
		return team.Statistics{}, err
	}
	var item wireTeamStatistics
	if err := sonic.Unmarshal(raw, &item); err != nil {
		return team.Statistics{}, newError(ErrorKindDecode, "team_statistics", err)
	}
	return parseTeamStatistics(item), nil
}

func (c *Client) TeamSquad(ctx context.Context, teamID int) ([]team.SquadMember, error) {
	endpoint, params := squadRequest(teamID)
	raw, err := c.doGet(ctx, "team_squad", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wireSquadItem]("team_squad", raw)
	if err != nil {
		return nil, err
	}
	return parseSquad(items), nil
}

func (c *Client) TopScorers(ctx context.Context) ([]player.Player, error) {
	endpoint, params := topScorersRequest(c.leagueID, c.season)
	raw, err := c.doGet(ctx, "top_scorers", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wirePlayerItem]("top_scorers", raw)
	if err != nil {
		return nil, err
	}
	return parsePlayers(items), nil
}

func (c *Client) TopAssists(ctx context.Context) ([]player.Player, error) {
	endpoint, params := topAssistsRequest(c.leagueID, c.season)
	raw, err := c.doGet(ctx, "top_assists", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wirePlayerItem]("top_assists", raw)
	if err != nil {
		return nil, err
	}
	return parsePlayers(items), nil
}

func (c *Client) PlayerStatistics(ctx context.Context, playerID int) ([]player.Player, error) {
	endpoint, params := playerStatisticsRequest(playerID, c.season)
	raw, err := c.doGet(ctx, "player_statistics", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wirePlayerItem]("player_statistics", raw)
	if err != nil {
		return nil, err
	}
	return parsePlayers(items), nil
}

func (c *Client) SearchPlayers(ctx context.Context, query string) ([]player.Player, error) {
	endpoint, params := searchPlayersRequest(c.leagueID, c.season, query)
	raw, err := c.doGet(ctx, "search_players", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wirePlayerItem]("search_players", raw)
	if err != nil {
		return nil, err
	}
	return parsePlayers(items), nil
}

func (c *Client) PlayerTransfers(ctx context.Context, playerID int) ([]player.Transfer, error) {
	endpoint, params := transfersRequest(playerID)
	raw, err := c.doGet(ctx, "player_transfers", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wireTransferItem]("player_transfers", raw)
	if err != nil {
		return nil, err
	}
	return parseTransfers(items), nil
}

func (c *Client) Coaches(ctx context.Context, teamID int) ([]coach.Coach, error) {
	endpoint, params := coachesRequest(teamID)
	raw, err := c.doGet(ctx, "coaches", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wireCoachItem]("coaches", raw)
	if err != nil {
		return nil, err
	}
	return parseCoaches(items), nil
}

func (c *Client) CoachByID(ctx context.Context, coachID int) (coach.Coach, error) {
	endpoint, params := coachByIDRequest(coachID)
	raw, err := c.doGet(ctx, "coach_by_id", endpoint, params)
	if err != nil {
		return coach.Coach{}, err
	}
	items, err := decodeItems[wireCoachItem]("coach_by_id", raw)
	if err != nil {
		return coach.Coach{}, err
	}
	coaches := parseCoaches(items)
	if len(coaches) == 0 {
		return coach.Coach{}, newError(ErrorKindUpstream, "coach_by_id", fmt.Errorf("coach %d not in response", coachID))
	}
	return coaches[0], nil
}

func (c *Client) VenueByID(ctx context.Context, venueID int) (venue.Venue, error) {
	endpoint, params := venueByIDRequest(venueID)
	raw, err := c.doGet(ctx, "venue_by_id", endpoint, params)
	if err != nil {
		return venue.Venue{}, err
	}
	items, err := decodeItems[wireVenueItem]("venue_by_id", raw)
	if err != nil {
		return venue.Venue{}, err
	}
	venues := parseVenues(items)
	if len(venues) == 0 {
		return venue.Venue{}, newError(ErrorKindUpstream, "venue_by_id", fmt.Errorf("venue %d not in response", venueID))
	}
	return venues[0], nil
}

func (c *Client) SearchVenues(ctx context.Context, name, city, country string) ([]venue.Venue, error) {
	endpoint, params := searchVenuesRequest(name, city, country)
	raw, err := c.doGet(ctx, "search_venues", endpoint, params)
	if err != nil {
		return nil, err
	}
	items, err := decodeItems[wireVenueItem]("search_venues", raw)
	if err != nil {
		return nil, err
	}
	return parseVenues(items), nil
}

// doGet runs the cache gate: fail fast without a key, then let the
// cache serve hits and collapse concurrent misses around a single
// breaker-guarded fetch. Failed fetches are never cached.
func (c *Client) doGet(ctx context.Context, op, endpoint string, params map[string]string) (json.RawMessage, error) {
	if c.key == "" {
		return nil, newError(ErrorKindConfig, op, fmt.Errorf("api key is not configured"))
	}

	load := func(ctx context.Context) (any, error) {
		return c.fetchEnvelope(ctx, op, endpoint, params)
	}

	var (
		out any
		err error
	)
	if c.cache != nil {
		out, err = c.cache.GetOrLoad(ctx, cacheKey(endpoint, params), c.ttlFor(params), load)
	} else {
		out, err = load(ctx)
	}
	if err != nil {
		return nil, err
	}

	env, ok := out.(envelope)
	if !ok {
		return nil, newError(ErrorKindDecode, op, fmt.Errorf("unexpected cached payload type %T", out))
	}
	return env.Response, nil
}

func (c *Client) fetchEnvelope(ctx context.Context, op, endpoint string, params map[string]string) (envelope, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "circuit breaker rejected upstream request", "state", c.breaker.State(), "endpoint", endpoint)
			return envelope{}, newError(ErrorKindTransport, op, err)
		}
	}

	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	fullURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, reqErr := c.executeRequest(ctx, op, fullURL)
	if c.circuitEnabled {
		if reqErr != nil && crerr.Is(reqErr, errTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if reqErr != nil {
		return envelope{}, reqErr
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return envelope{}, newError(ErrorKindDecode, op, err)
	}

	// A 2xx with an empty response field is an application-level
	// failure, typically a bad parameter or an exhausted plan tier.
	if emptyJSON(env.Response) {
		return envelope{}, newError(ErrorKindUpstream, op, fmt.Errorf("empty response field: %s", envelopeErrorText(env.Errors)))
	}

	return env, nil
}

func (c *Client) executeRequest(ctx context.Context, op, fullURL string) ([]byte, error) {
	c.logger.DebugContext(ctx, "upstream request", "preview", c.requestPreview(fullURL))

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, newError(ErrorKindTransport, op, err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("X-RapidAPI-Key", c.key)
		req.Header.Set("X-RapidAPI-Host", c.host)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = newError(ErrorKindTransport, op, fmt.Errorf("%w: send request: %s", errTransient, sanitizeSensitiveText(err.Error(), c.key)))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = newError(ErrorKindTransport, op, fmt.Errorf("%w: read response body: %v", errTransient, readErr))
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = newError(ErrorKindUpstream, op, fmt.Errorf("%w: provider status=%d body=%s", errTransient, resp.StatusCode, abbreviateBody(raw)))
			} else {
				return nil, newError(ErrorKindUpstream, op, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw)))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, newError(ErrorKindTransport, op, ctx.Err())
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = newError(ErrorKindTransport, op, fmt.Errorf("provider request failed"))
	}
	c.logger.WarnContext(ctx, "upstream request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) ttlFor(params map[string]string) time.Duration {
	if _, ok := params["live"]; ok {
		return c.liveTTL
	}
	return c.defaultTTL
}

// requestPreview renders a copy-pasteable curl line with the key
// header redacted, for debug logs only.
func (c *Client) requestPreview(fullURL string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString("curl -sS -X GET ")
	buf.WriteString(shellQuote(fullURL))
	buf.WriteString(" -H ")
	buf.WriteString(shellQuote("X-RapidAPI-Key: REDACTED"))
	buf.WriteString(" -H ")
	buf.WriteString(shellQuote("X-RapidAPI-Host: " + c.host))

	return buf.String()
}

// cacheKey hashes the endpoint and the parameter entries sorted by
// key, so the same logical query hashes identically regardless of
// argument insertion order.
func cacheKey(endpoint string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	h := fnv.New64a()
	_, _ = h.Write([]byte(endpoint))
	for _, key := range keys {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(key))
		_, _ = h.Write([]byte{'='})
		_, _ = h.Write([]byte(params[key]))
	}

	return "af:" + endpoint + ":" + strconv.FormatUint(h.Sum64(), 16)
}

func decodeItems[T any](op string, raw json.RawMessage) ([]T, error) {
	var items []T
	if err := sonic.Unmarshal(raw, &items); err != nil {
		return nil, newError(ErrorKindDecode, op, err)
	}
	return items, nil
}

func emptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "[]", "{}":
		return true
	}
	return false
}

// envelopeErrorText flattens the provider's errors field, which is an
// empty array on success and a message map on failure.
func envelopeErrorText(raw json.RawMessage) string {
	if emptyJSON(raw) {
		return "no provider error detail"
	}

	var asMap map[string]string
	if err := sonic.Unmarshal(raw, &asMap); err == nil && len(asMap) > 0 {
		keys := make([]string, 0, len(asMap))
		for key := range asMap {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(asMap))
		for _, key := range keys {
			parts = append(parts, key+": "+asMap[key])
		}
		return strings.Join(parts, "; ")
	}

	return abbreviateBody(raw)
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" || key == "" {
		return value
	}
	return strings.ReplaceAll(value, key, "REDACTED")
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
