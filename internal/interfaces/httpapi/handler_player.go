package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/allsvenskan/insikter/internal/usecase"
)

func (h *Handler) ListLeaguePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaguePlayers")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, playersToPublicDTOs(h.football.AllLeaguePlayers(ctx)))
}

func (h *Handler) GetPlayerBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerBySlug")
	defer span.End()

	wanted := strings.TrimSpace(r.PathValue("slug"))
	if wanted == "" {
		writeError(ctx, w, fmt.Errorf("%w: slug is required", usecase.ErrInvalidInput))
		return
	}

	p, found := h.football.PlayerBySlug(ctx, wanted)
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: player %q", usecase.ErrNotFound, wanted))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToPublicDTO(p))
}

func (h *Handler) GetPlayerStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStatistics")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToPublicDTOs(h.football.PlayerStatistics(ctx, playerID)))
}

func (h *Handler) ListPlayerTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerTransfers")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	transfers := h.football.PlayerTransfers(ctx, playerID)
	items := make([]transferDTO, 0, len(transfers))
	for _, tr := range transfers {
		items = append(items, transferDTO{
			Date:    tr.Date,
			Type:    tr.Type,
			TeamIn:  tr.TeamIn,
			TeamOut: tr.TeamOut,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToPublicDTOs(h.football.TopScorers(ctx, limit)))
}

func (h *Handler) ListTopAssists(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopAssists")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToPublicDTOs(h.football.TopAssists(ctx, limit)))
}

func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchPlayers")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < 3 {
		writeError(ctx, w, fmt.Errorf("%w: query must be at least 3 characters", usecase.ErrInvalidInput))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToPublicDTOs(h.football.SearchPlayers(ctx, query)))
}
