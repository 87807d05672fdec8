// Package bulk encodes full-table exports as delimited text (CSV) or
// columnar binary (Parquet) files. Column headers are fixed so consumers
// can validate them, and rows arrive already ordered by primary key.
package bulk

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"github.com/sportsworldcentral/swc_api/model"
)

type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "csv":
		return FormatCSV, nil
	case "parquet":
		return FormatParquet, nil
	default:
		return "", fmt.Errorf("unsupported bulk file format: %s", s)
	}
}

// ContentType returns the MIME type to serve the encoded file with.
func (f Format) ContentType() string {
	if f == FormatParquet {
		return "application/vnd.apache.parquet"
	}
	return "text/csv"
}

var PlayerHeader = []string{"player_id", "gsis_id", "first_name", "last_name", "position", "last_changed_date"}

type playerRow struct {
	PlayerID        int32  `parquet:"player_id"`
	GsisID          string `parquet:"gsis_id"`
	FirstName       string `parquet:"first_name"`
	LastName        string `parquet:"last_name"`
	Position        string `parquet:"position"`
	LastChangedDate string `parquet:"last_changed_date"`
}

func Players(format Format, players []model.Player) ([]byte, error) {
	rows := make([]playerRow, 0, len(players))
	for _, p := range players {
		rows = append(rows, playerRow{
			PlayerID:        p.PlayerID,
			GsisID:          p.GsisID,
			FirstName:       p.FirstName,
			LastName:        p.LastName,
			Position:        string(p.Position),
			LastChangedDate: p.LastChangedDate.String(),
		})
	}

	if format == FormatParquet {
		return writeParquet(rows)
	}
	return writeCSV(PlayerHeader, rows, func(r playerRow) []string {
		return []string{formatID(r.PlayerID), r.GsisID, r.FirstName, r.LastName, r.Position, r.LastChangedDate}
	})
}

var LeagueHeader = []string{"league_id", "league_name", "scoring_type", "last_changed_date"}

type leagueRow struct {
	LeagueID        int32  `parquet:"league_id"`
	LeagueName      string `parquet:"league_name"`
	ScoringType     string `parquet:"scoring_type"`
	LastChangedDate string `parquet:"last_changed_date"`
}

func Leagues(format Format, leagues []model.League) ([]byte, error) {
	rows := make([]leagueRow, 0, len(leagues))
	for _, l := range leagues {
		rows = append(rows, leagueRow{
			LeagueID:        l.LeagueID,
			LeagueName:      l.LeagueName,
			ScoringType:     string(l.ScoringType),
			LastChangedDate: l.LastChangedDate.String(),
		})
	}

	if format == FormatParquet {
		return writeParquet(rows)
	}
	return writeCSV(LeagueHeader, rows, func(r leagueRow) []string {
		return []string{formatID(r.LeagueID), r.LeagueName, r.ScoringType, r.LastChangedDate}
	})
}

var TeamHeader = []string{"team_id", "team_name", "league_id", "last_changed_date"}

type teamRow struct {
	TeamID          int32  `parquet:"team_id"`
	TeamName        string `parquet:"team_name"`
	LeagueID        int32  `parquet:"league_id"`
	LastChangedDate string `parquet:"last_changed_date"`
}

func Teams(format Format, teams []model.Team) ([]byte, error) {
	rows := make([]teamRow, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, teamRow{
			TeamID:          t.TeamID,
			TeamName:        t.TeamName,
			LeagueID:        t.LeagueID,
			LastChangedDate: t.LastChangedDate.String(),
		})
	}

	if format == FormatParquet {
		return writeParquet(rows)
	}
	return writeCSV(TeamHeader, rows, func(r teamRow) []string {
		return []string{formatID(r.TeamID), r.TeamName, formatID(r.LeagueID), r.LastChangedDate}
	})
}

var PerformanceHeader = []string{"performance_id", "week_number", "fantasy_points", "player_id", "last_changed_date"}

type performanceRow struct {
	PerformanceID   int32   `parquet:"performance_id"`
	WeekNumber      string  `parquet:"week_number"`
	FantasyPoints   float64 `parquet:"fantasy_points"`
	PlayerID        int32   `parquet:"player_id"`
	LastChangedDate string  `parquet:"last_changed_date"`
}

func Performances(format Format, performances []model.Performance) ([]byte, error) {
	rows := make([]performanceRow, 0, len(performances))
	for _, p := range performances {
		rows = append(rows, performanceRow{
			PerformanceID:   p.PerformanceID,
			WeekNumber:      p.WeekNumber,
			FantasyPoints:   p.FantasyPoints,
			PlayerID:        p.PlayerID,
			LastChangedDate: p.LastChangedDate.String(),
		})
	}

	if format == FormatParquet {
		return writeParquet(rows)
	}
	return writeCSV(PerformanceHeader, rows, func(r performanceRow) []string {
		return []string{
			formatID(r.PerformanceID),
			r.WeekNumber,
			strconv.FormatFloat(r.FantasyPoints, 'f', -1, 64),
			formatID(r.PlayerID),
			r.LastChangedDate,
		}
	})
}

var TeamPlayerHeader = []string{"team_id", "player_id", "last_changed_date"}

type teamPlayerRow struct {
	TeamID          int32  `parquet:"team_id"`
	PlayerID        int32  `parquet:"player_id"`
	LastChangedDate string `parquet:"last_changed_date"`
}

func TeamPlayers(format Format, teamPlayers []model.TeamPlayer) ([]byte, error) {
	rows := make([]teamPlayerRow, 0, len(teamPlayers))
	for _, tp := range teamPlayers {
		rows = append(rows, teamPlayerRow{
			TeamID:          tp.TeamID,
			PlayerID:        tp.PlayerID,
			LastChangedDate: tp.LastChangedDate.String(),
		})
	}

	if format == FormatParquet {
		return writeParquet(rows)
	}
	return writeCSV(TeamPlayerHeader, rows, func(r teamPlayerRow) []string {
		return []string{formatID(r.TeamID), formatID(r.PlayerID), r.LastChangedDate}
	})
}

func writeCSV[T any](header []string, rows []T, record func(T) []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("error writing csv header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(record(r)); err != nil {
			return nil, fmt.Errorf("error writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeParquet[T any](rows []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := parquet.Write(&buf, rows); err != nil {
		return nil, fmt.Errorf("error writing parquet file: %w", err)
	}
	return buf.Bytes(), nil
}

func formatID(id int32) string {
	return strconv.FormatInt(int64(id), 10)
}
