package apifootball

import (
	"strconv"

	"github.com/allsvenskan/insikter/internal/usecase"
)

// Each logical operation maps to a fixed endpoint path plus a flat
// string parameter set. Optional arguments are included only when the
// caller provided them; validation is left to the upstream API.

func standingsRequest(leagueID, season int) (string, map[string]string) {
	return "standings", map[string]string{
		"league": strconv.Itoa(leagueID),
		"season": strconv.Itoa(season),
	}
}

func leagueInfoRequest(leagueID, season int) (string, map[string]string) {
	return "leagues", map[string]string{
		"id":     strconv.Itoa(leagueID),
		"season": strconv.Itoa(season),
	}
}

func fixturesRequest(leagueID, season int, filter usecase.FixtureFilter) (string, map[string]string) {
	// The provider rejects season combined with live; a live query is
	// scoped by league alone.
	if filter.Live {
		return "fixtures", map[string]string{
			"league": strconv.Itoa(leagueID),
			"live":   "all",
		}
	}

	params := map[string]string{
		"league": strconv.Itoa(leagueID),
		"season": strconv.Itoa(season),
	}
	if filter.TeamID > 0 {
		params["team"] = strconv.Itoa(filter.TeamID)
	}
	if filter.Status != "" {
		params["status"] = filter.Status
	}
	if filter.Last > 0 {
		params["last"] = strconv.Itoa(filter.Last)
	}
	if filter.Next > 0 {
		params["next"] = strconv.Itoa(filter.Next)
	}
	return "fixtures", params
}

func lineupsRequest(fixtureID int) (string, map[string]string) {
	return "fixtures/lineups", map[string]string{
		"fixture": strconv.Itoa(fixtureID),
	}
}

func headToHeadRequest(teamA, teamB, last int) (string, map[string]string) {
	params := map[string]string{
		"h2h": strconv.Itoa(teamA) + "-" + strconv.Itoa(teamB),
	}
	if last > 0 {
		params["last"] = strconv.Itoa(last)
	}
	return "fixtures/headtohead", params
}

func teamsRequest(leagueID, season int) (string, map[string]string) {
	return "teams", map[string]string{
		"league": strconv.Itoa(leagueID),
		"season": strconv.Itoa(season),
	}
}

func teamStatisticsRequest(leagueID, season, teamID int) (string, map[string]string) {
	return "teams/statistics", map[string]string{
		"league": strconv.Itoa(leagueID),
		"season": strconv.Itoa(season),
		"team":   strconv.Itoa(teamID),
	}
}

func squadRequest(teamID int) (string, map[string]string) {
	return "players/squads", map[string]string{
		"team": strconv.Itoa(teamID),
	}
}

func topScorersRequest(leagueID, season int) (string, map[string]string) {
	return "players/topscorers", map[string]string{
		"league": strconv.Itoa(leagueID),
		"season": strconv.Itoa(season),
	}
}

func topAssistsRequest(leagueID, season int) (string, map[string]string) {
	return "players/topassists", map[string]string{
		"league": strconv.Itoa(leagueID),
		"season": strconv.Itoa(season),
	}
}

func playerStatisticsRequest(playerID, season int) (string, map[string]string) {
	return "players", map[string]string{
		"id":     strconv.Itoa(playerID),
		"season": strconv.Itoa(season),
	}
}

func searchPlayersRequest(leagueID, season int, query string) (string, map[string]string) {
	return "players", map[string]string{
		"league": strconv.Itoa(leagueID),
		"season": strconv.Itoa(season),
		"search": query,
	}
}

func transfersRequest(playerID int) (string, map[string]string) {
	return "transfers", map[string]string{
		"player": strconv.Itoa(playerID),
	}
}

func coachesRequest(teamID int) (string, map[string]string) {
	return "coachs", map[string]string{
		"team": strconv.Itoa(teamID),
	}
}

func coachByIDRequest(coachID int) (string, map[string]string) {
	return "coachs", map[string]string{
		"id": strconv.Itoa(coachID),
	}
}

func venueByIDRequest(venueID int) (string, map[string]string) {
	return "venues", map[string]string{
		"id": strconv.Itoa(venueID),
	}
}

func searchVenuesRequest(name, city, country string) (string, map[string]string) {
	params := make(map[string]string, 3)
	// The name term rides the search param for partial matching; the
	// name param would demand an exact stadium name.
	if name != "" {
		params["search"] = name
	}
	if city != "" {
		params["city"] = city
	}
	if country != "" {
		params["country"] = country
	}
	return "venues", params
}
