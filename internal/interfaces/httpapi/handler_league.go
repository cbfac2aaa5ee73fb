package httpapi

import "net/http"

func (h *Handler) GetLeagueInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueInfo")
	defer span.End()

	info := h.football.LeagueInfo(ctx)
	writeSuccess(ctx, w, http.StatusOK, leagueToPublicDTO(info))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	rows := h.football.Standings(ctx)
	items := make([]standingDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, standingToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
