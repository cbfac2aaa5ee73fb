package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/allsvenskan/insikter/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams := h.football.Teams(ctx)
	items := make([]teamPublicDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToPublicDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStatistics")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamStatisticsToDTO(h.football.TeamStatistics(ctx, teamID)))
}

func (h *Handler) ListTeamSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamSquad")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	members := h.football.TeamSquad(ctx, teamID)
	items := make([]squadMemberDTO, 0, len(members))
	for _, m := range members {
		items = append(items, squadMemberDTO{
			PlayerID: m.PlayerID,
			Name:     m.Name,
			Age:      m.Age,
			Number:   m.Number,
			Position: m.Position,
			PhotoURL: m.PhotoURL,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamFormations")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	counts := h.football.TeamFormations(ctx, teamID)
	items := make([]formationCountDTO, 0, len(counts))
	for _, c := range counts {
		items = append(items, formationCountDTO{Formation: c.Formation, Matches: c.Matches})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetHeadCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadCoach")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	c, found := h.football.HeadCoach(ctx, teamID)
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: no head coach recorded for team %d", usecase.ErrNotFound, teamID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, coachToPublicDTO(c))
}

func (h *Handler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCoaches")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	coaches := h.football.Coaches(ctx, teamID)
	items := make([]coachPublicDTO, 0, len(coaches))
	for _, c := range coaches {
		items = append(items, coachToPublicDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCoach(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCoach")
	defer span.End()

	coachID, err := pathID(r, "coachID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	c, found := h.football.CoachByID(ctx, coachID)
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: coach %d", usecase.ErrNotFound, coachID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, coachToPublicDTO(c))
}

func (h *Handler) GetVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetVenue")
	defer span.End()

	venueID, err := pathID(r, "venueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	v, found := h.football.VenueByID(ctx, venueID)
	if !found {
		writeError(ctx, w, fmt.Errorf("%w: venue %d", usecase.ErrNotFound, venueID))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, venueToPublicDTO(v))
}

func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchVenues")
	defer span.End()

	query := r.URL.Query()
	name := strings.TrimSpace(query.Get("name"))
	city := strings.TrimSpace(query.Get("city"))
	country := strings.TrimSpace(query.Get("country"))
	if name == "" && city == "" && country == "" {
		writeError(ctx, w, fmt.Errorf("%w: at least one of name, city or country is required", usecase.ErrInvalidInput))
		return
	}

	venues := h.football.SearchVenues(ctx, name, city, country)
	items := make([]venuePublicDTO, 0, len(venues))
	for _, v := range venues {
		items = append(items, venueToPublicDTO(v))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
