package apifootball

import "encoding/json"

// Wire shapes of the upstream v3 API. Every payload arrives inside the
// same envelope; response is an array for all endpoints except
// teams/statistics, which returns a single object, so it stays raw
// until the per-endpoint decode.
type envelope struct {
	Get      string          `json:"get"`
	Errors   json.RawMessage `json:"errors"`
	Results  int             `json:"results"`
	Response json.RawMessage `json:"response"`
}

type wireTeamRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type wireLeagueItem struct {
	League struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Logo string `json:"logo"`
	} `json:"league"`
	Country struct {
		Name string `json:"name"`
	} `json:"country"`
	Seasons []struct {
		Year    int  `json:"year"`
		Current bool `json:"current"`
	} `json:"seasons"`
}

type wireStandingRow struct {
	Rank        int         `json:"rank"`
	Team        wireTeamRef `json:"team"`
	Points      int         `json:"points"`
	GoalsDiff   int         `json:"goalsDiff"`
	Form        string      `json:"form"`
	Description string      `json:"description"`
	All         struct {
		Played int `json:"played"`
		Win    int `json:"win"`
		Draw   int `json:"draw"`
		Lose   int `json:"lose"`
		Goals  struct {
			For     int `json:"for"`
			Against int `json:"against"`
		} `json:"goals"`
	} `json:"all"`
}

type wireStandingsItem struct {
	League struct {
		ID        int                 `json:"id"`
		Name      string              `json:"name"`
		Season    int                 `json:"season"`
		Standings [][]wireStandingRow `json:"standings"`
	} `json:"league"`
}

type wireFixtureItem struct {
	Fixture struct {
		ID       int    `json:"id"`
		Timezone string `json:"timezone"`
		Date     string `json:"date"`
		Venue    struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"venue"`
		Status struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID     int    `json:"id"`
		Season int    `json:"season"`
		Round  string `json:"round"`
	} `json:"league"`
	Teams struct {
		Home wireTeamRef `json:"home"`
		Away wireTeamRef `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type wireLineupSlot struct {
	Player struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Number int    `json:"number"`
		Pos    string `json:"pos"`
		Grid   string `json:"grid"`
	} `json:"player"`
}

type wireLineupItem struct {
	Team wireTeamRef `json:"team"`
	Coach struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"coach"`
	Formation   string           `json:"formation"`
	StartXI     []wireLineupSlot `json:"startXI"`
	Substitutes []wireLineupSlot `json:"substitutes"`
}

type wireTeamItem struct {
	Team struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Code    string `json:"code"`
		Country string `json:"country"`
		Founded int    `json:"founded"`
		Logo    string `json:"logo"`
	} `json:"team"`
	Venue struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Address  string `json:"address"`
		City     string `json:"city"`
		Capacity int    `json:"capacity"`
		Surface  string `json:"surface"`
		Image    string `json:"image"`
	} `json:"venue"`
}

type wireTeamStatistics struct {
	Team wireTeamRef `json:"team"`
	League struct {
		ID     int `json:"id"`
		Season int `json:"season"`
	} `json:"league"`
	Form     string `json:"form"`
	Fixtures struct {
		Played struct {
			Total int `json:"total"`
		} `json:"played"`
		Wins struct {
			Total int `json:"total"`
		} `json:"wins"`
		Draws struct {
			Total int `json:"total"`
		} `json:"draws"`
		Loses struct {
			Total int `json:"total"`
		} `json:"loses"`
	} `json:"fixtures"`
	Goals struct {
		For struct {
			Total struct {
				Total int `json:"total"`
			} `json:"total"`
		} `json:"for"`
		Against struct {
			Total struct {
				Total int `json:"total"`
			} `json:"total"`
		} `json:"against"`
	} `json:"goals"`
	Biggest struct {
		Wins struct {
			Home string `json:"home"`
			Away string `json:"away"`
		} `json:"wins"`
	} `json:"biggest"`
	CleanSheet struct {
		Total int `json:"total"`
	} `json:"clean_sheet"`
	FailedToScore struct {
		Total int `json:"total"`
	} `json:"failed_to_score"`
}

type wireSquadItem struct {
	Team    wireTeamRef `json:"team"`
	Players []struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Age      int    `json:"age"`
		Number   int    `json:"number"`
		Position string `json:"position"`
		Photo    string `json:"photo"`
	} `json:"players"`
}

type wirePlayerItem struct {
	Player struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Firstname   string `json:"firstname"`
		Lastname    string `json:"lastname"`
		Age         int    `json:"age"`
		Nationality string `json:"nationality"`
		Height      string `json:"height"`
		Weight      string `json:"weight"`
		Injured     bool   `json:"injured"`
		Photo       string `json:"photo"`
	} `json:"player"`
	Statistics []struct {
		Team   wireTeamRef `json:"team"`
		League struct {
			ID     int `json:"id"`
			Season int `json:"season"`
		} `json:"league"`
		Games struct {
			Appearences int     `json:"appearences"`
			Minutes     int     `json:"minutes"`
			Position    string  `json:"position"`
			Rating      *string `json:"rating"`
		} `json:"games"`
		Goals struct {
			Total   *int `json:"total"`
			Assists *int `json:"assists"`
		} `json:"goals"`
		Cards struct {
			Yellow int `json:"yellow"`
			Red    int `json:"red"`
		} `json:"cards"`
	} `json:"statistics"`
}

type wireTransferItem struct {
	Player struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"player"`
	Transfers []struct {
		Date  string `json:"date"`
		Type  string `json:"type"`
		Teams struct {
			In  wireTeamRef `json:"in"`
			Out wireTeamRef `json:"out"`
		} `json:"teams"`
	} `json:"transfers"`
}

type wireCoachItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Nationality string `json:"nationality"`
	Photo       string `json:"photo"`
	Career      []struct {
		Team  wireTeamRef `json:"team"`
		Start string      `json:"start"`
		End   *string     `json:"end"`
	} `json:"career"`
}

type wireVenueItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Capacity int    `json:"capacity"`
	Surface  string `json:"surface"`
	Image    string `json:"image"`
}
