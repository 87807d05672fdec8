package model

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestTeamMarshalJSON_emptyRoster(t *testing.T) {
	team := Team{
		TeamID:          1,
		LeagueID:        1,
		TeamName:        "Squad 01",
		LastChangedDate: NewDate(2024, time.April, 1),
		Players:         []Player{},
	}

	b, err := json.Marshal(team)
	if err != nil {
		t.Fatalf("error marshaling team: %v", err)
	}

	// An empty roster is still a roster: the players key must be present.
	if !strings.Contains(string(b), `"players":[]`) {
		t.Errorf("expected an empty players list on the wire, got: %s", string(b))
	}
}

func TestTeamBaseMarshalJSON_noRoster(t *testing.T) {
	team := TeamBase{
		TeamID:          1,
		LeagueID:        1,
		TeamName:        "Squad 01",
		LastChangedDate: NewDate(2024, time.April, 1),
	}

	b, err := json.Marshal(team)
	if err != nil {
		t.Fatalf("error marshaling team: %v", err)
	}

	if strings.Contains(string(b), "players") {
		t.Errorf("expected no players key on a nested team, got: %s", string(b))
	}
}

func TestLeagueMarshalJSON_emptyTeams(t *testing.T) {
	league := League{
		LeagueID:        1,
		LeagueName:      "League 1",
		ScoringType:     SCORING_PPR,
		LastChangedDate: NewDate(2024, time.April, 1),
		Teams:           []TeamBase{},
	}

	b, err := json.Marshal(league)
	if err != nil {
		t.Fatalf("error marshaling league: %v", err)
	}

	if !strings.Contains(string(b), `"teams":[]`) {
		t.Errorf("expected an empty teams list on the wire, got: %s", string(b))
	}
}
