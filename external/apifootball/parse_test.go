package apifootball

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

func TestParseStandings_RenumbersAcrossGroups(t *testing.T) {
	t.Parallel()

	items := []wireStandingsItem{}
	payload := `[{
		"league": {
			"id": 113,
			"standings": [
				[{"rank": 1, "team": {"id": 1, "name": "A"}, "points": 10, "all": {"played": 4}},
				 {"rank": 2, "team": {"id": 2, "name": "B"}, "points": 8, "all": {"played": 4}}],
				[{"rank": 1, "team": {"id": 3, "name": "C"}, "points": 9, "all": {"played": 4}}]
			]
		}
	}]`
	if err := sonic.Unmarshal([]byte(payload), &items); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	rows := parseStandings(items)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.Position != i+1 {
			t.Fatalf("row %d has position %d, want %d", i, row.Position, i+1)
		}
	}
	if rows[2].TeamName != "C" {
		t.Fatalf("group order not preserved: %+v", rows[2])
	}
}

func TestParsePlayers_NullableStatistics(t *testing.T) {
	t.Parallel()

	items := []wirePlayerItem{}
	payload := `[{
		"player": {"id": 9, "name": "Viktor Gyökeres", "age": 28, "nationality": "Sweden"},
		"statistics": [{
			"team": {"id": 377, "name": "Malmo FF"},
			"league": {"id": 113, "season": 2025},
			"games": {"appearences": 18, "minutes": 1540, "position": "Attacker", "rating": null},
			"goals": {"total": 14, "assists": null},
			"cards": {"yellow": 2, "red": 0}
		}]
	}]`
	if err := sonic.Unmarshal([]byte(payload), &items); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	players := parsePlayers(items)
	if len(players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(players))
	}
	p := players[0]
	if p.Statistics.Goals != 14 {
		t.Fatalf("goals = %d, want 14", p.Statistics.Goals)
	}
	if p.Statistics.Assists != 0 {
		t.Fatalf("null assists should read as 0, got %d", p.Statistics.Assists)
	}
	if p.Statistics.Rating != "" {
		t.Fatalf("null rating should read as empty, got %q", p.Statistics.Rating)
	}
	if p.Statistics.Position != "Attacker" {
		t.Fatalf("position = %q", p.Statistics.Position)
	}
}

func TestParseCoaches_NullEndDate(t *testing.T) {
	t.Parallel()

	items := []wireCoachItem{}
	payload := `[{
		"id": 51, "name": "Henrik Rydström", "nationality": "Sweden",
		"career": [
			{"team": {"id": 377, "name": "Malmo FF"}, "start": "2024-01-01", "end": null},
			{"team": {"id": 370, "name": "Kalmar FF"}, "start": "2021-01-01", "end": "2023-12-31"}
		]
	}]`
	if err := sonic.Unmarshal([]byte(payload), &items); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	coaches := parseCoaches(items)
	if len(coaches) != 1 {
		t.Fatalf("expected 1 coach, got %d", len(coaches))
	}
	c := coaches[0]
	if len(c.Career) != 2 {
		t.Fatalf("expected 2 career entries, got %d", len(c.Career))
	}
	if c.Career[0].End != nil {
		t.Fatalf("open engagement should have nil end, got %v", *c.Career[0].End)
	}
	if c.Career[1].End == nil || *c.Career[1].End != "2023-12-31" {
		t.Fatalf("closed engagement end mismatch: %v", c.Career[1].End)
	}
	if !c.CurrentFor(377) {
		t.Fatal("coach should be current for team 377")
	}
	if c.CurrentFor(370) {
		t.Fatal("coach should not be current for team 370")
	}
}

func TestEnvelopeErrorText(t *testing.T) {
	t.Parallel()

	if got := envelopeErrorText([]byte(`[]`)); got != "no provider error detail" {
		t.Fatalf("empty array: %q", got)
	}
	got := envelopeErrorText([]byte(`{"token":"Missing application key","plan":"Limit reached"}`))
	want := "plan: Limit reached; token: Missing application key"
	if got != want {
		t.Fatalf("error map flattening: got %q want %q", got, want)
	}
}
