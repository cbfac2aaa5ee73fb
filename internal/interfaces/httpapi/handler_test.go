package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/allsvenskan/insikter/internal/domain/league"
	"github.com/allsvenskan/insikter/internal/infrastructure/repository/memory"
	"github.com/allsvenskan/insikter/internal/platform/id"
	"github.com/allsvenskan/insikter/internal/platform/logging"
	"github.com/allsvenskan/insikter/internal/usecase"
)

// stubProvider embeds the interface so only the methods a test routes
// through need real implementations.
type stubProvider struct {
	usecase.SportDataProvider
	standings []league.Standing
}

func (s stubProvider) LeagueID() int { return 113 }
func (s stubProvider) Season() int   { return 2025 }

func (s stubProvider) Standings(context.Context) ([]league.Standing, error) {
	return s.standings, nil
}

func newTestRouter(provider usecase.SportDataProvider) http.Handler {
	gateway := usecase.NewGateway(
		usecase.NewLeagueService(provider),
		usecase.NewFixtureService(provider),
		usecase.NewTeamService(provider),
		usecase.NewPlayerService(provider),
		logging.NewNop(),
	)
	carts := usecase.NewCartService(memory.NewCartRepository(), id.NewRandomGenerator())
	handler := NewHandler(gateway, carts, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), []string{"*"})
}

func decodeEnvelope(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return envelope
}

func TestRouter_Standings(t *testing.T) {
	router := newTestRouter(stubProvider{
		standings: []league.Standing{
			{Position: 1, TeamID: 377, TeamName: "Malmo FF", Points: 45},
			{Position: 2, TeamID: 363, TeamName: "Hammarby", Points: 41},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/standings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeEnvelope(t, rec.Body.Bytes())
	rows, ok := envelope["data"].([]any)
	if !ok || len(rows) != 2 {
		t.Fatalf("expected 2 standings rows, got %v", envelope["data"])
	}
	first, _ := rows[0].(map[string]any)
	if got, _ := first["team_name"].(string); got != "Malmo FF" {
		t.Fatalf("unexpected first row: %v", first)
	}
}

func TestRouter_InvalidPathParam(t *testing.T) {
	router := newTestRouter(stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/not-a-number/squad", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a bad path param, got %d", rec.Code)
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_CartFlow(t *testing.T) {
	router := newTestRouter(stubProvider{})

	req := httptest.NewRequest(http.MethodPost, "/v1/cart/sessions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	data, _ := envelope["data"].(map[string]any)
	sessionID, _ := data["session_id"].(string)
	if sessionID == "" {
		t.Fatalf("expected a session id, got %v", envelope["data"])
	}

	payload := `{"product_ref":"scarf-blue","name":"Supporter Scarf","unit_price":19900,"quantity":2,"variation":{"color":"blue"}}`
	req = httptest.NewRequest(http.MethodPost, "/v1/cart/items", strings.NewReader(payload))
	req.Header.Set(cartSessionHeader, sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("add item: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	envelope = decodeEnvelope(t, rec.Body.Bytes())
	data, _ = envelope["data"].(map[string]any)
	if got, _ := data["total"].(float64); got != 39800 {
		t.Fatalf("expected total 39800, got %v", data["total"])
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	req.Header.Set(cartSessionHeader, sessionID)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get cart: expected 200, got %d", rec.Code)
	}
	envelope = decodeEnvelope(t, rec.Body.Bytes())
	data, _ = envelope["data"].(map[string]any)
	items, _ := data["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 cart line, got %v", data["items"])
	}
}

func TestRouter_CartRequiresSessionHeader(t *testing.T) {
	router := newTestRouter(stubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without session header, got %d", rec.Code)
	}
}

func TestRouter_CartItemValidation(t *testing.T) {
	router := newTestRouter(stubProvider{})

	req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", strings.NewReader(`{"product_ref":"","quantity":0}`))
	req.Header.Set(cartSessionHeader, "session-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", rec.Code)
	}
}
