package httpapi

import (
	"net/http"
	"strings"

	"github.com/allsvenskan/insikter/internal/usecase"
)

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	teamID, err := queryInt(r, "team", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	last, err := queryInt(r, "last", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	next, err := queryInt(r, "next", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := usecase.FixtureFilter{
		TeamID: teamID,
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Last:   last,
		Next:   next,
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTOs(h.football.Fixtures(ctx, filter)))
}

func (h *Handler) ListLiveFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveFixtures")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTOs(h.football.LiveFixtures(ctx)))
}

func (h *Handler) ListFixtureLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtureLineups")
	defer span.End()

	fixtureID, err := pathID(r, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	lineups := h.football.FixtureLineups(ctx, fixtureID)
	items := make([]lineupDTO, 0, len(lineups))
	for _, lineup := range lineups {
		items = append(items, lineupToDTO(lineup))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHeadToHead")
	defer span.End()

	teamA, err := queryInt(r, "team_a", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamB, err := queryInt(r, "team_b", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	last, err := queryInt(r, "last", 10)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixturesToDTOs(h.football.HeadToHead(ctx, teamA, teamB, last)))
}
