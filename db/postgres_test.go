package db_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/sportsworldcentral/swc_api/db"
	"github.com/sportsworldcentral/swc_api/model"
	"github.com/sportsworldcentral/swc_api/testutils"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// unbounded is a limit large enough to return every fixture row.
const unbounded = 10000

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()

	if err := testutils.LoadFixture(testDB.DB); err != nil {
		fmt.Printf("error loading fixture data: %v", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

func TestGetPlayers_dateFilter(t *testing.T) {
	ctx := context.Background()

	all, err := testDB.DB.GetPlayers(ctx, db.PlayerFilter{PageParams: db.PageParams{Limit: unbounded}})
	if err != nil {
		t.Fatalf("error listing players: %v", err)
	}
	if len(all) != testutils.PlayerCount {
		t.Errorf("expected %d players, got %d", testutils.PlayerCount, len(all))
	}

	filtered, err := testDB.DB.GetPlayers(ctx, db.PlayerFilter{
		PageParams:             db.PageParams{Limit: unbounded},
		MinimumLastChangedDate: testutils.WatermarkDate.Time,
	})
	if err != nil {
		t.Fatalf("error listing players with date filter: %v", err)
	}

	// Exactly half of the fixture rows sit on the watermark date itself, so
	// this also proves the bound is closed (>=), not exclusive.
	if len(filtered) != testutils.PlayerCount/2 {
		t.Errorf("expected %d players, got %d", testutils.PlayerCount/2, len(filtered))
	}
	for _, p := range filtered {
		if p.LastChangedDate.Before(testutils.WatermarkDate.Time) {
			t.Errorf("player %d has last_changed_date %s before the filter date", p.PlayerID, p.LastChangedDate)
		}
	}

	// Moving the watermark one day later must never grow the result. The
	// late fixture rows sit exactly on the watermark, so it shrinks to zero.
	dayAfter, err := testDB.DB.GetPlayers(ctx, db.PlayerFilter{
		PageParams:             db.PageParams{Limit: unbounded},
		MinimumLastChangedDate: testutils.WatermarkDate.AddDate(0, 0, 1),
	})
	if err != nil {
		t.Fatalf("error listing players with later date filter: %v", err)
	}
	if len(dayAfter) != 0 {
		t.Errorf("expected 0 players changed after the watermark, got %d", len(dayAfter))
	}
}

func TestGetPlayers_pagination(t *testing.T) {
	ctx := context.Background()

	full, err := testDB.DB.GetPlayers(ctx, db.PlayerFilter{
		PageParams:             db.PageParams{Limit: unbounded},
		MinimumLastChangedDate: testutils.WatermarkDate.Time,
	})
	if err != nil {
		t.Fatalf("error listing players: %v", err)
	}

	// Walking the filtered set page by page must partition it with no gaps
	// and no overlaps.
	const pageSize = 100
	var paged []model.Player
	for skip := 0; ; skip += pageSize {
		page, err := testDB.DB.GetPlayers(ctx, db.PlayerFilter{
			PageParams:             db.PageParams{Skip: skip, Limit: pageSize},
			MinimumLastChangedDate: testutils.WatermarkDate.Time,
		})
		if err != nil {
			t.Fatalf("error listing players at skip %d: %v", skip, err)
		}
		if len(page) > pageSize {
			t.Fatalf("page at skip %d has %d players, limit was %d", skip, len(page), pageSize)
		}
		paged = append(paged, page...)
		if len(page) < pageSize {
			break
		}
	}

	if len(paged) != len(full) {
		t.Fatalf("paged result has %d players, expected %d", len(paged), len(full))
	}
	for i := range full {
		if full[i].PlayerID != paged[i].PlayerID {
			t.Fatalf("paged result diverges at index %d: %d vs %d", i, full[i].PlayerID, paged[i].PlayerID)
		}
	}

	// Paging past the data is an empty result, not an error.
	beyond, err := testDB.DB.GetPlayers(ctx, db.PlayerFilter{
		PageParams: db.PageParams{Skip: testutils.PlayerCount * 2, Limit: pageSize},
	})
	if err != nil {
		t.Fatalf("error listing players beyond the data: %v", err)
	}
	if len(beyond) != 0 {
		t.Errorf("expected an empty result, got %d players", len(beyond))
	}
}

func TestGetPlayers_nameFilter(t *testing.T) {
	ctx := context.Background()

	tests := map[string]struct {
		first string
		last  string
		want  int
	}{
		"full name":       {first: "Bryce", last: "Young", want: 1},
		"first name only": {first: "Bryce", want: 1},
		"last name only":  {last: "Last010", want: 1},
		"no such player":  {first: "Nonexistent", want: 0},
		"case sensitive":  {first: "bryce", last: "young", want: 0},
		"no filters":      {want: testutils.PlayerCount},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			players, err := testDB.DB.GetPlayers(ctx, db.PlayerFilter{
				PageParams: db.PageParams{Limit: unbounded},
				FirstName:  tc.first,
				LastName:   tc.last,
			})
			if err != nil {
				t.Fatalf("error listing players: %v", err)
			}
			if len(players) != tc.want {
				t.Errorf("expected %d players, got %d", tc.want, len(players))
			}
			if name == "full name" && len(players) == 1 && players[0].PlayerID != testutils.BryceYoungID {
				t.Errorf("expected player id %d, got %d", testutils.BryceYoungID, players[0].PlayerID)
			}
		})
	}
}

func TestGetPlayer(t *testing.T) {
	ctx := context.Background()

	p, err := testDB.DB.GetPlayer(ctx, testutils.BryceYoungID)
	if err != nil {
		t.Fatalf("error getting player: %v", err)
	}
	if p.FirstName != "Bryce" || p.LastName != "Young" {
		t.Errorf("unexpected player name: %s %s", p.FirstName, p.LastName)
	}
	if p.Position != model.POS_QB {
		t.Errorf("expected position %v, got %v", model.POS_QB, p.Position)
	}
	if p.GsisID != "00-0039150" {
		t.Errorf("unexpected gsis id: %s", p.GsisID)
	}

	_, err = testDB.DB.GetPlayer(ctx, 999999)
	if !errors.Is(err, db.ErrPlayerNotFound) {
		t.Errorf("expected ErrPlayerNotFound, got: %v", err)
	}
}

func TestGetPerformances(t *testing.T) {
	ctx := context.Background()

	all, err := testDB.DB.GetPerformances(ctx, db.PerformanceFilter{PageParams: db.PageParams{Limit: unbounded}})
	if err != nil {
		t.Fatalf("error listing performances: %v", err)
	}
	if len(all) != testutils.PerformanceCount {
		t.Errorf("expected %d performances, got %d", testutils.PerformanceCount, len(all))
	}

	filtered, err := testDB.DB.GetPerformances(ctx, db.PerformanceFilter{
		PageParams:             db.PageParams{Limit: unbounded},
		MinimumLastChangedDate: testutils.WatermarkDate.Time,
	})
	if err != nil {
		t.Fatalf("error listing performances with date filter: %v", err)
	}
	if len(filtered) != testutils.PerformanceCount/2 {
		t.Errorf("expected %d performances, got %d", testutils.PerformanceCount/2, len(filtered))
	}

	// The default-sized page respects its limit.
	page, err := testDB.DB.GetPerformances(ctx, db.PerformanceFilter{PageParams: db.PageParams{Limit: 100}})
	if err != nil {
		t.Fatalf("error listing performances: %v", err)
	}
	if len(page) != 100 {
		t.Errorf("expected 100 performances, got %d", len(page))
	}
}

func TestGetLeagues(t *testing.T) {
	ctx := context.Background()

	leagues, err := testDB.DB.GetLeagues(ctx, db.LeagueFilter{PageParams: db.PageParams{Limit: unbounded}})
	if err != nil {
		t.Fatalf("error listing leagues: %v", err)
	}
	if len(leagues) != testutils.LeagueCount {
		t.Fatalf("expected %d leagues, got %d", testutils.LeagueCount, len(leagues))
	}

	for _, l := range leagues {
		wantTeams := 3
		if l.LeagueID == 1 {
			wantTeams = testutils.League1TeamCount
		}
		if len(l.Teams) != wantTeams {
			t.Errorf("league %d: expected %d teams, got %d", l.LeagueID, wantTeams, len(l.Teams))
		}
		for _, team := range l.Teams {
			if team.LeagueID != l.LeagueID {
				t.Errorf("league %d contains team %d from league %d", l.LeagueID, team.TeamID, team.LeagueID)
			}
		}
	}
}

func TestGetLeagues_nameFilter(t *testing.T) {
	ctx := context.Background()

	// Two fixture leagues share this name; league_name is not unique.
	leagues, err := testDB.DB.GetLeagues(ctx, db.LeagueFilter{
		PageParams: db.PageParams{Limit: unbounded},
		LeagueName: "Sharpshooters Invitational",
	})
	if err != nil {
		t.Fatalf("error listing leagues: %v", err)
	}
	if len(leagues) != 2 {
		t.Errorf("expected 2 leagues, got %d", len(leagues))
	}

	leagues, err = testDB.DB.GetLeagues(ctx, db.LeagueFilter{
		PageParams: db.PageParams{Limit: unbounded},
		LeagueName: "No Such League",
	})
	if err != nil {
		t.Fatalf("error listing leagues: %v", err)
	}
	if len(leagues) != 0 {
		t.Errorf("expected 0 leagues, got %d", len(leagues))
	}
}

func TestGetLeague(t *testing.T) {
	ctx := context.Background()

	l, err := testDB.DB.GetLeague(ctx, 1)
	if err != nil {
		t.Fatalf("error getting league: %v", err)
	}
	if len(l.Teams) != testutils.League1TeamCount {
		t.Errorf("expected %d teams, got %d", testutils.League1TeamCount, len(l.Teams))
	}

	_, err = testDB.DB.GetLeague(ctx, 999999)
	if !errors.Is(err, db.ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound, got: %v", err)
	}
}

func TestGetTeams(t *testing.T) {
	ctx := context.Background()

	teams, err := testDB.DB.GetTeams(ctx, db.TeamFilter{PageParams: db.PageParams{Limit: unbounded}})
	if err != nil {
		t.Fatalf("error listing teams: %v", err)
	}
	if len(teams) != testutils.TeamCount {
		t.Fatalf("expected %d teams, got %d", testutils.TeamCount, len(teams))
	}

	for _, team := range teams {
		if len(team.Players) != testutils.RosterSize {
			t.Errorf("team %d: expected a roster of %d, got %d", team.TeamID, testutils.RosterSize, len(team.Players))
		}
	}
}

func TestGetTeams_filters(t *testing.T) {
	ctx := context.Background()
	leagueOne := int32(1)

	tests := map[string]struct {
		filter db.TeamFilter
		want   int
	}{
		"by name":          {filter: db.TeamFilter{TeamName: "Squad 03"}, want: 1},
		"by league":        {filter: db.TeamFilter{LeagueID: &leagueOne}, want: testutils.League1TeamCount},
		"name and league":  {filter: db.TeamFilter{TeamName: "Squad 03", LeagueID: &leagueOne}, want: 1},
		"no matching name": {filter: db.TeamFilter{TeamName: "Ghost Squad"}, want: 0},
		"league and date": {
			filter: db.TeamFilter{LeagueID: &leagueOne, MinimumLastChangedDate: testutils.WatermarkDate.Time},
			want:   testutils.League1TeamCount / 2,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tc.filter.Limit = unbounded
			teams, err := testDB.DB.GetTeams(ctx, tc.filter)
			if err != nil {
				t.Fatalf("error listing teams: %v", err)
			}
			if len(teams) != tc.want {
				t.Errorf("expected %d teams, got %d", tc.want, len(teams))
			}
		})
	}
}

func TestCounts(t *testing.T) {
	ctx := context.Background()

	leagues, err := testDB.DB.GetLeagueCount(ctx)
	if err != nil {
		t.Fatalf("error counting leagues: %v", err)
	}
	if leagues != testutils.LeagueCount {
		t.Errorf("expected %d leagues, got %d", testutils.LeagueCount, leagues)
	}

	teams, err := testDB.DB.GetTeamCount(ctx)
	if err != nil {
		t.Fatalf("error counting teams: %v", err)
	}
	if teams != testutils.TeamCount {
		t.Errorf("expected %d teams, got %d", testutils.TeamCount, teams)
	}

	players, err := testDB.DB.GetPlayerCount(ctx)
	if err != nil {
		t.Fatalf("error counting players: %v", err)
	}
	if players != testutils.PlayerCount {
		t.Errorf("expected %d players, got %d", testutils.PlayerCount, players)
	}

	// Counts must match an unbounded, unfiltered listing.
	all, err := testDB.DB.GetPlayers(ctx, db.PlayerFilter{PageParams: db.PageParams{Limit: unbounded}})
	if err != nil {
		t.Fatalf("error listing players: %v", err)
	}
	if players != len(all) {
		t.Errorf("player count %d does not match listing size %d", players, len(all))
	}
}

func TestAllRows(t *testing.T) {
	ctx := context.Background()

	players, err := testDB.DB.AllPlayers(ctx)
	if err != nil {
		t.Fatalf("error reading all players: %v", err)
	}
	if len(players) != testutils.PlayerCount {
		t.Errorf("expected %d players, got %d", testutils.PlayerCount, len(players))
	}
	for i := 1; i < len(players); i++ {
		if players[i-1].PlayerID >= players[i].PlayerID {
			t.Fatalf("players are not ordered by id at index %d", i)
		}
	}

	teamPlayers, err := testDB.DB.AllTeamPlayers(ctx)
	if err != nil {
		t.Fatalf("error reading all roster rows: %v", err)
	}
	if len(teamPlayers) != testutils.TeamPlayerCount {
		t.Errorf("expected %d roster rows, got %d", testutils.TeamPlayerCount, len(teamPlayers))
	}

	performances, err := testDB.DB.AllPerformances(ctx)
	if err != nil {
		t.Fatalf("error reading all performances: %v", err)
	}
	if len(performances) != testutils.PerformanceCount {
		t.Errorf("expected %d performances, got %d", testutils.PerformanceCount, len(performances))
	}
}

func TestSavePlayer_defaultsChangedDate(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Upsert over an existing fixture row rather than inserting a new one,
	// and restore it afterwards so the counts and the half/half date split
	// hold no matter which order the tests run in.
	original, err := testDB.DB.GetPlayer(ctx, testutils.PlayerCount)
	if err != nil {
		t.Fatalf("error reading fixture player: %v", err)
	}
	t.Cleanup(func() {
		if err := testDB.DB.SavePlayer(context.Background(), original); err != nil {
			t.Fatalf("error restoring fixture player: %v", err)
		}
	})

	update := *original
	update.LastChangedDate = model.Date{}
	if err := testDB.DB.SavePlayer(ctx, &update); err != nil {
		t.Fatalf("error saving player: %v", err)
	}

	saved, err := testDB.DB.GetPlayer(ctx, update.PlayerID)
	if err != nil {
		t.Fatalf("error reading back player: %v", err)
	}
	if saved.LastChangedDate.IsZero() {
		t.Errorf("expected last_changed_date to default to today")
	}
}
