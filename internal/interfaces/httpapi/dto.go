package httpapi

import (
	"time"

	"github.com/allsvenskan/insikter/internal/domain/cart"
	"github.com/allsvenskan/insikter/internal/domain/coach"
	"github.com/allsvenskan/insikter/internal/domain/fixture"
	"github.com/allsvenskan/insikter/internal/domain/league"
	"github.com/allsvenskan/insikter/internal/domain/player"
	"github.com/allsvenskan/insikter/internal/domain/team"
	"github.com/allsvenskan/insikter/internal/domain/venue"
)

type leaguePublicDTO struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	LogoURL string `json:"logo_url,omitempty"`
	Season  int    `json:"season"`
	Current bool   `json:"current"`
}

type standingDTO struct {
	Position       int    `json:"position"`
	TeamID         int    `json:"team_id"`
	TeamName       string `json:"team_name"`
	TeamLogoURL    string `json:"team_logo_url,omitempty"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
	Form           string `json:"form,omitempty"`
	Description    string `json:"description,omitempty"`
}

type fixtureSideDTO struct {
	TeamID  int    `json:"team_id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	Winner  *bool  `json:"winner,omitempty"`
}

type fixtureDTO struct {
	ID         int            `json:"id"`
	KickoffAt  string         `json:"kickoff_at"`
	Timezone   string         `json:"timezone,omitempty"`
	Status     string         `json:"status"`
	StatusLong string         `json:"status_long,omitempty"`
	Elapsed    *int           `json:"elapsed,omitempty"`
	Round      string         `json:"round,omitempty"`
	VenueID    int            `json:"venue_id,omitempty"`
	VenueName  string         `json:"venue_name,omitempty"`
	Home       fixtureSideDTO `json:"home"`
	Away       fixtureSideDTO `json:"away"`
	HomeGoals  *int           `json:"home_goals,omitempty"`
	AwayGoals  *int           `json:"away_goals,omitempty"`
}

type lineupPlayerDTO struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position,omitempty"`
	Grid     string `json:"grid,omitempty"`
}

type lineupDTO struct {
	TeamID      int               `json:"team_id"`
	TeamName    string            `json:"team_name"`
	Formation   string            `json:"formation"`
	CoachID     int               `json:"coach_id,omitempty"`
	CoachName   string            `json:"coach_name,omitempty"`
	StartXI     []lineupPlayerDTO `json:"start_xi"`
	Substitutes []lineupPlayerDTO `json:"substitutes"`
}

type formationCountDTO struct {
	Formation string `json:"formation"`
	Matches   int    `json:"matches"`
}

type teamPublicDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
	Country   string `json:"country,omitempty"`
	Founded   int    `json:"founded,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
	VenueID   int    `json:"venue_id,omitempty"`
	VenueName string `json:"venue_name,omitempty"`
}

type teamStatisticsDTO struct {
	TeamID         int    `json:"team_id"`
	TeamName       string `json:"team_name"`
	LeagueID       int    `json:"league_id"`
	Season         int    `json:"season"`
	Form           string `json:"form,omitempty"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	CleanSheets    int    `json:"clean_sheets"`
	FailedToScore  int    `json:"failed_to_score"`
	BiggestWinHome string `json:"biggest_win_home,omitempty"`
	BiggestWinAway string `json:"biggest_win_away,omitempty"`
}

type squadMemberDTO struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Age      int    `json:"age,omitempty"`
	Number   int    `json:"number,omitempty"`
	Position string `json:"position,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type playerStatisticsDTO struct {
	TeamID      int    `json:"team_id"`
	TeamName    string `json:"team_name,omitempty"`
	LeagueID    int    `json:"league_id"`
	Season      int    `json:"season"`
	Position    string `json:"position,omitempty"`
	Appearances int    `json:"appearances"`
	Minutes     int    `json:"minutes"`
	Goals       int    `json:"goals"`
	Assists     int    `json:"assists"`
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
	Rating      string `json:"rating,omitempty"`
}

type playerPublicDTO struct {
	ID          int                 `json:"id"`
	Name        string              `json:"name"`
	FirstName   string              `json:"first_name,omitempty"`
	LastName    string              `json:"last_name,omitempty"`
	Age         int                 `json:"age,omitempty"`
	Nationality string              `json:"nationality,omitempty"`
	Height      string              `json:"height,omitempty"`
	Weight      string              `json:"weight,omitempty"`
	PhotoURL    string              `json:"photo_url,omitempty"`
	Injured     bool                `json:"injured,omitempty"`
	Statistics  playerStatisticsDTO `json:"statistics"`
}

type transferDTO struct {
	Date    string `json:"date"`
	Type    string `json:"type,omitempty"`
	TeamIn  string `json:"team_in"`
	TeamOut string `json:"team_out"`
}

type coachCareerDTO struct {
	TeamID   int     `json:"team_id"`
	TeamName string  `json:"team_name"`
	Start    string  `json:"start"`
	End      *string `json:"end,omitempty"`
}

type coachPublicDTO struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Age         int              `json:"age,omitempty"`
	Nationality string           `json:"nationality,omitempty"`
	PhotoURL    string           `json:"photo_url,omitempty"`
	Career      []coachCareerDTO `json:"career"`
}

type venuePublicDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
	Surface  string `json:"surface,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type cartItemDTO struct {
	ID         string            `json:"id"`
	ProductRef string            `json:"product_ref"`
	Name       string            `json:"name"`
	UnitPrice  int64             `json:"unit_price"`
	Quantity   int               `json:"quantity"`
	Subtotal   int64             `json:"subtotal"`
	Variation  map[string]string `json:"variation,omitempty"`
}

type cartDTO struct {
	SessionID string        `json:"session_id"`
	Items     []cartItemDTO `json:"items"`
	Total     int64         `json:"total"`
	Count     int           `json:"count"`
	UpdatedAt string        `json:"updated_at"`
}

func leagueToPublicDTO(v league.League) leaguePublicDTO {
	return leaguePublicDTO{
		ID:      v.ID,
		Name:    v.Name,
		Country: v.Country,
		LogoURL: v.LogoURL,
		Season:  v.Season,
		Current: v.Current,
	}
}

func standingToDTO(v league.Standing) standingDTO {
	return standingDTO{
		Position:       v.Position,
		TeamID:         v.TeamID,
		TeamName:       v.TeamName,
		TeamLogoURL:    v.TeamLogoURL,
		Played:         v.Played,
		Won:            v.Won,
		Drawn:          v.Drawn,
		Lost:           v.Lost,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference,
		Points:         v.Points,
		Form:           v.Form,
		Description:    v.Description,
	}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:         v.ID,
		KickoffAt:  v.Kickoff.Format(time.RFC3339),
		Timezone:   v.Timezone,
		Status:     v.Status,
		StatusLong: v.StatusLong,
		Elapsed:    v.Elapsed,
		Round:      v.Round,
		VenueID:    v.VenueID,
		VenueName:  v.VenueName,
		Home:       fixtureSideDTO{TeamID: v.Home.TeamID, Name: v.Home.Name, LogoURL: v.Home.LogoURL, Winner: v.Home.Winner},
		Away:       fixtureSideDTO{TeamID: v.Away.TeamID, Name: v.Away.Name, LogoURL: v.Away.LogoURL, Winner: v.Away.Winner},
		HomeGoals:  v.HomeGoals,
		AwayGoals:  v.AwayGoals,
	}
}

func fixturesToDTOs(items []fixture.Fixture) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fixtureToDTO(item))
	}
	return out
}

func lineupPlayersToDTOs(players []fixture.LineupPlayer) []lineupPlayerDTO {
	out := make([]lineupPlayerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, lineupPlayerDTO{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Number:   p.Number,
			Position: p.Position,
			Grid:     p.Grid,
		})
	}
	return out
}

func lineupToDTO(v fixture.Lineup) lineupDTO {
	return lineupDTO{
		TeamID:      v.TeamID,
		TeamName:    v.TeamName,
		Formation:   v.Formation,
		CoachID:     v.CoachID,
		CoachName:   v.CoachName,
		StartXI:     lineupPlayersToDTOs(v.StartXI),
		Substitutes: lineupPlayersToDTOs(v.Substitutes),
	}
}

func teamToPublicDTO(v team.Team) teamPublicDTO {
	return teamPublicDTO{
		ID:        v.ID,
		Name:      v.Name,
		Code:      v.Code,
		Country:   v.Country,
		Founded:   v.Founded,
		LogoURL:   v.LogoURL,
		VenueID:   v.VenueID,
		VenueName: v.VenueName,
	}
}

func teamStatisticsToDTO(v team.Statistics) teamStatisticsDTO {
	return teamStatisticsDTO{
		TeamID:         v.TeamID,
		TeamName:       v.TeamName,
		LeagueID:       v.LeagueID,
		Season:         v.Season,
		Form:           v.Form,
		Played:         v.Played,
		Wins:           v.Wins,
		Draws:          v.Draws,
		Losses:         v.Losses,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		CleanSheets:    v.CleanSheets,
		FailedToScore:  v.FailedToScore,
		BiggestWinHome: v.BiggestWinHome,
		BiggestWinAway: v.BiggestWinAway,
	}
}

func playerToPublicDTO(v player.Player) playerPublicDTO {
	return playerPublicDTO{
		ID:          v.ID,
		Name:        v.Name,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		Age:         v.Age,
		Nationality: v.Nationality,
		Height:      v.Height,
		Weight:      v.Weight,
		PhotoURL:    v.PhotoURL,
		Injured:     v.Injured,
		Statistics: playerStatisticsDTO{
			TeamID:      v.Statistics.TeamID,
			TeamName:    v.Statistics.TeamName,
			LeagueID:    v.Statistics.LeagueID,
			Season:      v.Statistics.Season,
			Position:    v.Statistics.Position,
			Appearances: v.Statistics.Appearances,
			Minutes:     v.Statistics.Minutes,
			Goals:       v.Statistics.Goals,
			Assists:     v.Statistics.Assists,
			YellowCards: v.Statistics.YellowCards,
			RedCards:    v.Statistics.RedCards,
			Rating:      v.Statistics.Rating,
		},
	}
}

func playersToPublicDTOs(players []player.Player) []playerPublicDTO {
	out := make([]playerPublicDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerToPublicDTO(p))
	}
	return out
}

func coachToPublicDTO(v coach.Coach) coachPublicDTO {
	career := make([]coachCareerDTO, 0, len(v.Career))
	for _, entry := range v.Career {
		career = append(career, coachCareerDTO{
			TeamID:   entry.TeamID,
			TeamName: entry.TeamName,
			Start:    entry.Start,
			End:      entry.End,
		})
	}
	return coachPublicDTO{
		ID:          v.ID,
		Name:        v.Name,
		Age:         v.Age,
		Nationality: v.Nationality,
		PhotoURL:    v.PhotoURL,
		Career:      career,
	}
}

func venueToPublicDTO(v venue.Venue) venuePublicDTO {
	return venuePublicDTO{
		ID:       v.ID,
		Name:     v.Name,
		Address:  v.Address,
		City:     v.City,
		Country:  v.Country,
		Capacity: v.Capacity,
		Surface:  v.Surface,
		ImageURL: v.ImageURL,
	}
}

func cartToDTO(v cart.Cart) cartDTO {
	items := make([]cartItemDTO, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, cartItemDTO{
			ID:         item.ID,
			ProductRef: item.ProductRef,
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			Subtotal:   item.Subtotal(),
			Variation:  item.Variation,
		})
	}
	return cartDTO{
		SessionID: v.SessionID,
		Items:     items,
		Total:     v.Total(),
		Count:     v.Count(),
		UpdatedAt: v.UpdatedAt.Format(time.RFC3339),
	}
}
