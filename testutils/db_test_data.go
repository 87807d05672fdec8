package testutils

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sportsworldcentral/swc_api/containers"
	"github.com/sportsworldcentral/swc_api/db"
	"github.com/sportsworldcentral/swc_api/model"
)

// Deterministic fixture sizes. Exactly half the rows of every table carry a
// last_changed_date on or after WatermarkDate, so date filter tests can
// assert "filtered = half of total".
const (
	LeagueCount      = 5
	TeamCount        = 20
	PlayerCount      = 550
	PerformanceCount = 1100
	TeamPlayerCount  = 140
	RosterSize       = 7
	League1TeamCount = 8

	// BryceYoungID is the one fully named player in the fixture.
	BryceYoungID int32 = 1
)

var (
	// WatermarkDate is the boundary used for the date split. Rows on the
	// late side carry exactly this date, which also makes it a probe for
	// the closed (>=) lower bound.
	WatermarkDate = model.NewDate(2024, time.April, 1)
	earlyDate     = model.NewDate(2024, time.February, 1)
)

var positions = []model.Position{
	model.POS_QB, model.POS_RB, model.POS_WR, model.POS_TE, model.POS_K, model.POS_DEF,
}

var scoringTypes = []model.ScoringType{
	model.SCORING_PPR, model.SCORING_STANDARD, model.SCORING_HALF_PPR,
}

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

// splitDate gives even ordinals the watermark date and odd ordinals the
// early date, yielding an exact half/half split for even row counts.
func splitDate(i int) model.Date {
	if i%2 == 0 {
		return WatermarkDate
	}
	return earlyDate
}

// LoadFixture populates the full deterministic dataset: 5 leagues, 20
// teams (league 1 holds 8 of them), 550 players, 1100 performances, and a
// 7 player roster for each of the 20 teams.
func LoadFixture(d db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	if err := loadLeagues(ctx, d); err != nil {
		return err
	}
	if err := loadTeams(ctx, d); err != nil {
		return err
	}
	if err := loadPlayers(ctx, d); err != nil {
		return err
	}
	if err := loadPerformances(ctx, d); err != nil {
		return err
	}
	return loadRosters(ctx, d)
}

func loadLeagues(ctx context.Context, d db.DB) error {
	for i := 1; i <= LeagueCount; i++ {
		name := fmt.Sprintf("League %d", i)
		if i == 2 || i == 4 {
			// league_name is not unique; keep a duplicate pair to prove it.
			name = "Sharpshooters Invitational"
		}
		l := &model.League{
			LeagueID:        int32(i),
			LeagueName:      name,
			ScoringType:     scoringTypes[(i-1)%len(scoringTypes)],
			LastChangedDate: splitDate(i),
		}
		if err := d.SaveLeague(ctx, l); err != nil {
			return fmt.Errorf("error loading league %d: %w", i, err)
		}
	}
	return nil
}

// leagueForTeam puts teams 1-8 in league 1 and spreads the remaining 12
// teams over leagues 2-5, three apiece.
func leagueForTeam(teamID int) int32 {
	if teamID <= League1TeamCount {
		return 1
	}
	return int32(2 + (teamID-League1TeamCount-1)/3)
}

func loadTeams(ctx context.Context, d db.DB) error {
	for i := 1; i <= TeamCount; i++ {
		t := &model.Team{
			TeamID:          int32(i),
			LeagueID:        leagueForTeam(i),
			TeamName:        fmt.Sprintf("Squad %02d", i),
			LastChangedDate: splitDate(i),
		}
		if err := d.SaveTeam(ctx, t); err != nil {
			return fmt.Errorf("error loading team %d: %w", i, err)
		}
	}
	return nil
}

func loadPlayers(ctx context.Context, d db.DB) error {
	for i := 1; i <= PlayerCount; i++ {
		p := &model.Player{
			PlayerID:        int32(i),
			GsisID:          fmt.Sprintf("00-00%05d", i),
			FirstName:       fmt.Sprintf("First%03d", i),
			LastName:        fmt.Sprintf("Last%03d", i),
			Position:        positions[(i-1)%len(positions)],
			LastChangedDate: splitDate(i),
		}
		if int32(i) == BryceYoungID {
			p.FirstName = "Bryce"
			p.LastName = "Young"
			p.Position = model.POS_QB
			p.GsisID = "00-0039150"
		}
		if err := d.SavePlayer(ctx, p); err != nil {
			return fmt.Errorf("error loading player %d: %w", i, err)
		}
	}
	return nil
}

func loadPerformances(ctx context.Context, d db.DB) error {
	for i := 1; i <= PerformanceCount; i++ {
		perf := &model.Performance{
			PerformanceID:   int32(i),
			PlayerID:        int32((i-1)%PlayerCount + 1),
			WeekNumber:      fmt.Sprintf("%d", (i-1)/PlayerCount+1),
			FantasyPoints:   float64(i%30) + 0.5,
			LastChangedDate: splitDate(i),
		}
		if err := d.SavePerformance(ctx, perf); err != nil {
			return fmt.Errorf("error loading performance %d: %w", i, err)
		}
	}
	return nil
}

func loadRosters(ctx context.Context, d db.DB) error {
	i := 0
	for team := 1; team <= TeamCount; team++ {
		for slot := 0; slot < RosterSize; slot++ {
			i++
			tp := &model.TeamPlayer{
				TeamID:          int32(team),
				PlayerID:        int32((team-1)*RosterSize + slot + 1),
				LastChangedDate: splitDate(i),
			}
			if err := d.SaveTeamPlayer(ctx, tp); err != nil {
				return fmt.Errorf("error loading roster row (%d, %d): %w", tp.TeamID, tp.PlayerID, err)
			}
		}
	}
	return nil
}
