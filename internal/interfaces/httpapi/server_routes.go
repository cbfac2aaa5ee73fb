package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerFootballRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/league", handler.GetLeagueInfo)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)

	mux.HandleFunc("GET /v1/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/fixtures/live", handler.ListLiveFixtures)
	mux.HandleFunc("GET /v1/fixtures/head-to-head", handler.ListHeadToHead)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/lineups", handler.ListFixtureLineups)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/statistics", handler.GetTeamStatistics)
	mux.HandleFunc("GET /v1/teams/{teamID}/squad", handler.ListTeamSquad)
	mux.HandleFunc("GET /v1/teams/{teamID}/formations", handler.ListTeamFormations)
	mux.HandleFunc("GET /v1/teams/{teamID}/coach", handler.GetHeadCoach)
	mux.HandleFunc("GET /v1/teams/{teamID}/coaches", handler.ListCoaches)
	mux.HandleFunc("GET /v1/coaches/{coachID}", handler.GetCoach)

	mux.HandleFunc("GET /v1/players", handler.ListLeaguePlayers)
	mux.HandleFunc("GET /v1/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/slug/{slug}", handler.GetPlayerBySlug)
	mux.HandleFunc("GET /v1/players/{playerID}/statistics", handler.GetPlayerStatistics)
	mux.HandleFunc("GET /v1/players/{playerID}/transfers", handler.ListPlayerTransfers)
	mux.HandleFunc("GET /v1/topscorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/topassists", handler.ListTopAssists)

	mux.HandleFunc("GET /v1/venues", handler.SearchVenues)
	mux.HandleFunc("GET /v1/venues/{venueID}", handler.GetVenue)
}

func registerCartRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/cart/sessions", handler.CreateCartSession)
	mux.HandleFunc("GET /v1/cart", handler.GetCart)
	mux.HandleFunc("POST /v1/cart/items", handler.AddCartItem)
	mux.HandleFunc("PATCH /v1/cart/items/{itemID}", handler.UpdateCartItemQuantity)
	mux.HandleFunc("DELETE /v1/cart/items/{itemID}", handler.RemoveCartItem)
	mux.HandleFunc("DELETE /v1/cart", handler.ClearCart)
}
