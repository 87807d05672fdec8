package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sportsworldcentral/swc_api/model"
)

// Full-table reads backing the bulk file exports. Rows come back flat and
// ordered by primary key so the exported files are deterministic.

func (db *postgresDB) AllLeagues(ctx context.Context) ([]model.League, error) {
	const query = `SELECT league_id, league_name, scoring_type, last_changed_date
		FROM league ORDER BY league_id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error reading leagues for export: %w", err)
	}
	defer rows.Close()

	results := make([]model.League, 0, 16)
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *l)
	}
	return results, rows.Err()
}

func (db *postgresDB) AllTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT team_id, league_id, team_name, last_changed_date
		FROM team ORDER BY team_id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error reading teams for export: %w", err)
	}
	defer rows.Close()

	results := make([]model.Team, 0, 32)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}
	return results, rows.Err()
}

func (db *postgresDB) AllPlayers(ctx context.Context) ([]model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM player ORDER BY player_id`, playerColumns)

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error reading players for export: %w", err)
	}
	defer rows.Close()

	results := make([]model.Player, 0, 512)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	return results, rows.Err()
}

func (db *postgresDB) AllPerformances(ctx context.Context) ([]model.Performance, error) {
	const query = `SELECT performance_id, player_id, week_number, fantasy_points, last_changed_date
		FROM performance ORDER BY performance_id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error reading performances for export: %w", err)
	}
	defer rows.Close()

	results := make([]model.Performance, 0, 1024)
	for rows.Next() {
		perf, err := scanPerformance(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *perf)
	}
	return results, rows.Err()
}

func (db *postgresDB) AllTeamPlayers(ctx context.Context) ([]model.TeamPlayer, error) {
	const query = `SELECT team_id, player_id, last_changed_date
		FROM team_player ORDER BY team_id, player_id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error reading roster rows for export: %w", err)
	}
	defer rows.Close()

	results := make([]model.TeamPlayer, 0, 128)
	for rows.Next() {
		var tp model.TeamPlayer
		var changed pgtype.Date
		if err := rows.Scan(&tp.TeamID, &tp.PlayerID, &changed); err != nil {
			return nil, fmt.Errorf("error scanning roster row: %w", err)
		}
		tp.LastChangedDate = model.DateOf(changed.Time)
		results = append(results, tp)
	}
	return results, rows.Err()
}

// Seed writes. These are upserts so the loader can be re-run against an
// existing database. Every write stamps last_changed_date, defaulting to
// the current date when the caller leaves it zero.

func (db *postgresDB) SaveLeague(ctx context.Context, l *model.League) error {
	const query = `INSERT INTO league (league_id, league_name, scoring_type, last_changed_date)
		VALUES (@id, @name, @scoring, @changed)
		ON CONFLICT (league_id) DO UPDATE
		SET league_name=@name, scoring_type=@scoring, last_changed_date=@changed`

	args := pgx.NamedArgs{
		"id":      l.LeagueID,
		"name":    l.LeagueName,
		"scoring": &DBScoringType{scoring: l.ScoringType},
		"changed": db.changedDateArg(l.LastChangedDate),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving league (%d): %w", l.LeagueID, err)
	}
	return nil
}

func (db *postgresDB) SaveTeam(ctx context.Context, t *model.Team) error {
	const query = `INSERT INTO team (team_id, league_id, team_name, last_changed_date)
		VALUES (@id, @leagueID, @name, @changed)
		ON CONFLICT (team_id) DO UPDATE
		SET league_id=@leagueID, team_name=@name, last_changed_date=@changed`

	args := pgx.NamedArgs{
		"id":       t.TeamID,
		"leagueID": t.LeagueID,
		"name":     t.TeamName,
		"changed":  db.changedDateArg(t.LastChangedDate),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving team (%d): %w", t.TeamID, err)
	}
	return nil
}

func (db *postgresDB) SavePlayer(ctx context.Context, p *model.Player) error {
	const query = `INSERT INTO player (player_id, gsis_id, name_first, name_last, position, last_changed_date)
		VALUES (@id, @gsisID, @nameFirst, @nameLast, @position, @changed)
		ON CONFLICT (player_id) DO UPDATE
		SET gsis_id=@gsisID, name_first=@nameFirst, name_last=@nameLast,
			position=@position, last_changed_date=@changed`

	args := pgx.NamedArgs{
		"id": p.PlayerID,
		"gsisID": sql.NullString{
			String: p.GsisID,
			Valid:  p.GsisID != "",
		},
		"nameFirst": p.FirstName,
		"nameLast":  p.LastName,
		"position":  &DBPosition{position: p.Position},
		"changed":   db.changedDateArg(p.LastChangedDate),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving player (%d): %w", p.PlayerID, err)
	}
	return nil
}

func (db *postgresDB) SavePerformance(ctx context.Context, perf *model.Performance) error {
	const query = `INSERT INTO performance (performance_id, player_id, week_number, fantasy_points, last_changed_date)
		VALUES (@id, @playerID, @week, @points, @changed)
		ON CONFLICT (performance_id) DO UPDATE
		SET player_id=@playerID, week_number=@week, fantasy_points=@points, last_changed_date=@changed`

	args := pgx.NamedArgs{
		"id":       perf.PerformanceID,
		"playerID": perf.PlayerID,
		"week":     perf.WeekNumber,
		"points":   perf.FantasyPoints,
		"changed":  db.changedDateArg(perf.LastChangedDate),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving performance (%d): %w", perf.PerformanceID, err)
	}
	return nil
}

func (db *postgresDB) SaveTeamPlayer(ctx context.Context, tp *model.TeamPlayer) error {
	const query = `INSERT INTO team_player (team_id, player_id, last_changed_date)
		VALUES (@teamID, @playerID, @changed)
		ON CONFLICT (team_id, player_id) DO UPDATE SET last_changed_date=@changed`

	args := pgx.NamedArgs{
		"teamID":   tp.TeamID,
		"playerID": tp.PlayerID,
		"changed":  db.changedDateArg(tp.LastChangedDate),
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving roster row (%d, %d): %w", tp.TeamID, tp.PlayerID, err)
	}
	return nil
}

func (db *postgresDB) changedDateArg(d model.Date) pgtype.Date {
	if d.IsZero() {
		return dateArg(db.clock.Now().UTC())
	}
	return dateArg(d.Time)
}
