package apifootball

import (
	"strings"
	"time"

	"github.com/allsvenskan/insikter/internal/domain/coach"
	"github.com/allsvenskan/insikter/internal/domain/fixture"
	"github.com/allsvenskan/insikter/internal/domain/league"
	"github.com/allsvenskan/insikter/internal/domain/player"
	"github.com/allsvenskan/insikter/internal/domain/team"
	"github.com/allsvenskan/insikter/internal/domain/venue"
)

// Conversion from wire shapes to domain entities. Untyped upstream
// data never leaves this package.

func parseLeague(items []wireLeagueItem, season int) (league.League, bool) {
	if len(items) == 0 {
		return league.League{}, false
	}

	item := items[0]
	out := league.League{
		ID:      item.League.ID,
		Name:    strings.TrimSpace(item.League.Name),
		Country: strings.TrimSpace(item.Country.Name),
		LogoURL: item.League.Logo,
		Season:  season,
	}
	for _, s := range item.Seasons {
		if s.Year == season {
			out.Current = s.Current
			break
		}
	}

	return out, true
}

func parseStandings(items []wireStandingsItem) []league.Standing {
	out := make([]league.Standing, 0, 16)
	for _, item := range items {
		for _, group := range item.League.Standings {
			for _, row := range group {
				out = append(out, league.Standing{
					Position:       row.Rank,
					TeamID:         row.Team.ID,
					TeamName:       strings.TrimSpace(row.Team.Name),
					TeamLogoURL:    row.Team.Logo,
					Played:         row.All.Played,
					Won:            row.All.Win,
					Drawn:          row.All.Draw,
					Lost:           row.All.Lose,
					GoalsFor:       row.All.Goals.For,
					GoalsAgainst:   row.All.Goals.Against,
					GoalDifference: row.GoalsDiff,
					Points:         row.Points,
					Form:           row.Form,
					Description:    row.Description,
				})
			}
		}
	}

	// Positions are authoritative as list order; renumber so callers
	// can trust a contiguous 1-based sequence even across groups.
	for i := range out {
		out[i].Position = i + 1
	}

	return out
}

func parseFixtures(items []wireFixtureItem) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		kickoff, _ := time.Parse(time.RFC3339, item.Fixture.Date)
		out = append(out, fixture.Fixture{
			ID:         item.Fixture.ID,
			Kickoff:    kickoff,
			Timezone:   item.Fixture.Timezone,
			Status:     item.Fixture.Status.Short,
			StatusLong: item.Fixture.Status.Long,
			Elapsed:    item.Fixture.Status.Elapsed,
			Round:      item.League.Round,
			VenueID:    item.Fixture.Venue.ID,
			VenueName:  strings.TrimSpace(item.Fixture.Venue.Name),
			Home:       parseSide(item.Teams.Home),
			Away:       parseSide(item.Teams.Away),
			HomeGoals:  item.Goals.Home,
			AwayGoals:  item.Goals.Away,
		})
	}
	return out
}

func parseSide(ref wireTeamRef) fixture.Side {
	return fixture.Side{
		TeamID:  ref.ID,
		Name:    strings.TrimSpace(ref.Name),
		LogoURL: ref.Logo,
		Winner:  ref.Winner,
	}
}

func parseLineups(items []wireLineupItem) []fixture.Lineup {
	out := make([]fixture.Lineup, 0, len(items))
	for _, item := range items {
		out = append(out, fixture.Lineup{
			TeamID:      item.Team.ID,
			TeamName:    strings.TrimSpace(item.Team.Name),
			Formation:   item.Formation,
			CoachID:     item.Coach.ID,
			CoachName:   strings.TrimSpace(item.Coach.Name),
			StartXI:     parseLineupSlots(item.StartXI),
			Substitutes: parseLineupSlots(item.Substitutes),
		})
	}
	return out
}

func parseLineupSlots(slots []wireLineupSlot) []fixture.LineupPlayer {
	out := make([]fixture.LineupPlayer, 0, len(slots))
	for _, slot := range slots {
		out = append(out, fixture.LineupPlayer{
			PlayerID: slot.Player.ID,
			Name:     strings.TrimSpace(slot.Player.Name),
			Number:   slot.Player.Number,
			Position: slot.Player.Pos,
			Grid:     slot.Player.Grid,
		})
	}
	return out
}

func parseTeams(items []wireTeamItem) []team.Team {
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		out = append(out, team.Team{
			ID:        item.Team.ID,
			Name:      strings.TrimSpace(item.Team.Name),
			Code:      item.Team.Code,
			Country:   item.Team.Country,
			Founded:   item.Team.Founded,
			LogoURL:   item.Team.Logo,
			VenueID:   item.Venue.ID,
			VenueName: strings.TrimSpace(item.Venue.Name),
		})
	}
	return out
}

func parseTeamStatistics(item wireTeamStatistics) team.Statistics {
	return team.Statistics{
		TeamID:         item.Team.ID,
		TeamName:       strings.TrimSpace(item.Team.Name),
		LeagueID:       item.League.ID,
		Season:         item.League.Season,
		Form:           item.Form,
		Played:         item.Fixtures.Played.Total,
		Wins:           item.Fixtures.Wins.Total,
		Draws:          item.Fixtures.Draws.Total,
		Losses:         item.Fixtures.Loses.Total,
		GoalsFor:       item.Goals.For.Total.Total,
		GoalsAgainst:   item.Goals.Against.Total.Total,
		CleanSheets:    item.CleanSheet.Total,
		FailedToScore:  item.FailedToScore.Total,
		BiggestWinHome: item.Biggest.Wins.Home,
		BiggestWinAway: item.Biggest.Wins.Away,
	}
}

func parseSquad(items []wireSquadItem) []team.SquadMember {
	out := make([]team.SquadMember, 0, 32)
	for _, item := range items {
		for _, p := range item.Players {
			out = append(out, team.SquadMember{
				PlayerID: p.ID,
				Name:     strings.TrimSpace(p.Name),
				Age:      p.Age,
				Number:   p.Number,
				Position: p.Position,
				PhotoURL: p.Photo,
			})
		}
	}
	return out
}

// parsePlayers keeps the first statistics record of each item, which
// upstream scopes to the queried league and season.
func parsePlayers(items []wirePlayerItem) []player.Player {
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		p := player.Player{
			ID:          item.Player.ID,
			Name:        strings.TrimSpace(item.Player.Name),
			FirstName:   item.Player.Firstname,
			LastName:    item.Player.Lastname,
			Age:         item.Player.Age,
			Nationality: item.Player.Nationality,
			Height:      item.Player.Height,
			Weight:      item.Player.Weight,
			PhotoURL:    item.Player.Photo,
			Injured:     item.Player.Injured,
		}

		if len(item.Statistics) > 0 {
			s := item.Statistics[0]
			stats := player.Statistics{
				TeamID:      s.Team.ID,
				TeamName:    strings.TrimSpace(s.Team.Name),
				LeagueID:    s.League.ID,
				Season:      s.League.Season,
				Position:    s.Games.Position,
				Appearances: s.Games.Appearences,
				Minutes:     s.Games.Minutes,
				YellowCards: s.Cards.Yellow,
				RedCards:    s.Cards.Red,
			}
			if s.Goals.Total != nil {
				stats.Goals = *s.Goals.Total
			}
			if s.Goals.Assists != nil {
				stats.Assists = *s.Goals.Assists
			}
			if s.Games.Rating != nil {
				stats.Rating = *s.Games.Rating
			}
			p.Statistics = stats
		}

		out = append(out, p)
	}
	return out
}

func parseTransfers(items []wireTransferItem) []player.Transfer {
	out := make([]player.Transfer, 0, len(items))
	for _, item := range items {
		for _, t := range item.Transfers {
			out = append(out, player.Transfer{
				Date:     t.Date,
				Type:     t.Type,
				TeamIn:   strings.TrimSpace(t.Teams.In.Name),
				TeamOut:  strings.TrimSpace(t.Teams.Out.Name),
				PlayerID: item.Player.ID,
			})
		}
	}
	return out
}

func parseCoaches(items []wireCoachItem) []coach.Coach {
	out := make([]coach.Coach, 0, len(items))
	for _, item := range items {
		c := coach.Coach{
			ID:          item.ID,
			Name:        strings.TrimSpace(item.Name),
			Age:         item.Age,
			Nationality: item.Nationality,
			PhotoURL:    item.Photo,
			Career:      make([]coach.CareerEntry, 0, len(item.Career)),
		}
		for _, entry := range item.Career {
			c.Career = append(c.Career, coach.CareerEntry{
				TeamID:   entry.Team.ID,
				TeamName: strings.TrimSpace(entry.Team.Name),
				Start:    entry.Start,
				End:      entry.End,
			})
		}
		out = append(out, c)
	}
	return out
}

func parseVenues(items []wireVenueItem) []venue.Venue {
	out := make([]venue.Venue, 0, len(items))
	for _, item := range items {
		out = append(out, venue.Venue{
			ID:       item.ID,
			Name:     strings.TrimSpace(item.Name),
			Address:  item.Address,
			City:     item.City,
			Country:  item.Country,
			Capacity: item.Capacity,
			Surface:  item.Surface,
			ImageURL: item.Image,
		})
	}
	return out
}
