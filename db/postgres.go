package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportsworldcentral/swc_api/model"
)

var (
	ErrPlayerNotFound error = errors.New("player not found")
	ErrLeagueNotFound error = errors.New("league not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

const playerColumns = `player_id, gsis_id, name_first, name_last, position, last_changed_date`

func (db *postgresDB) GetPlayers(ctx context.Context, filter PlayerFilter) ([]model.Player, error) {
	args := pgx.NamedArgs{
		"skip":  filter.Skip,
		"limit": filter.Limit,
	}
	conds := make([]string, 0, 3)
	if !filter.MinimumLastChangedDate.IsZero() {
		conds = append(conds, "last_changed_date >= @minDate")
		args["minDate"] = dateArg(filter.MinimumLastChangedDate)
	}
	if filter.FirstName != "" {
		conds = append(conds, "name_first = @firstName")
		args["firstName"] = filter.FirstName
	}
	if filter.LastName != "" {
		conds = append(conds, "name_last = @lastName")
		args["lastName"] = filter.LastName
	}

	query := fmt.Sprintf(`SELECT %s FROM player%s ORDER BY player_id OFFSET @skip LIMIT @limit`,
		playerColumns, whereClause(conds))

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	defer rows.Close()

	results := make([]model.Player, 0, 16)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	query := fmt.Sprintf(`SELECT %s FROM player WHERE player_id=@id`, playerColumns)

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %d: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) GetPerformances(ctx context.Context, filter PerformanceFilter) ([]model.Performance, error) {
	args := pgx.NamedArgs{
		"skip":  filter.Skip,
		"limit": filter.Limit,
	}
	conds := make([]string, 0, 1)
	if !filter.MinimumLastChangedDate.IsZero() {
		conds = append(conds, "last_changed_date >= @minDate")
		args["minDate"] = dateArg(filter.MinimumLastChangedDate)
	}

	query := fmt.Sprintf(`SELECT performance_id, player_id, week_number, fantasy_points, last_changed_date
		FROM performance%s ORDER BY performance_id OFFSET @skip LIMIT @limit`, whereClause(conds))

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing performances: %w", err)
	}
	defer rows.Close()

	results := make([]model.Performance, 0, 16)
	for rows.Next() {
		perf, err := scanPerformance(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *perf)
	}
	return results, rows.Err()
}

func (db *postgresDB) GetLeagues(ctx context.Context, filter LeagueFilter) ([]model.League, error) {
	args := pgx.NamedArgs{
		"skip":  filter.Skip,
		"limit": filter.Limit,
	}
	conds := make([]string, 0, 2)
	if !filter.MinimumLastChangedDate.IsZero() {
		conds = append(conds, "last_changed_date >= @minDate")
		args["minDate"] = dateArg(filter.MinimumLastChangedDate)
	}
	if filter.LeagueName != "" {
		conds = append(conds, "league_name = @leagueName")
		args["leagueName"] = filter.LeagueName
	}

	query := fmt.Sprintf(`SELECT league_id, league_name, scoring_type, last_changed_date
		FROM league%s ORDER BY league_id OFFSET @skip LIMIT @limit`, whereClause(conds))

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}
	defer rows.Close()

	results := make([]model.League, 0, 8)
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.loadLeagueTeams(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

func (db *postgresDB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	const query = `SELECT league_id, league_name, scoring_type, last_changed_date
		FROM league WHERE league_id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	l, err := scanLeague(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error scanning league %d: %w", id, err)
	}

	leagues := []model.League{*l}
	if err := db.loadLeagueTeams(ctx, leagues); err != nil {
		return nil, err
	}
	return &leagues[0], nil
}

// loadLeagueTeams hydrates the Teams collection of every league in a single
// batched query. The nested teams never carry player rosters.
func (db *postgresDB) loadLeagueTeams(ctx context.Context, leagues []model.League) error {
	if len(leagues) == 0 {
		return nil
	}

	ids := make([]int32, 0, len(leagues))
	for i := range leagues {
		leagues[i].Teams = make([]model.TeamBase, 0, 4)
		ids = append(ids, leagues[i].LeagueID)
	}

	const query = `SELECT team_id, league_id, team_name, last_changed_date
		FROM team WHERE league_id = ANY(@leagueIDs) ORDER BY team_id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueIDs": ids})
	if err != nil {
		return fmt.Errorf("error loading teams for leagues: %w", err)
	}
	defer rows.Close()

	byLeague := make(map[int32][]model.TeamBase, len(leagues))
	for rows.Next() {
		t, err := scanTeamBase(rows)
		if err != nil {
			return err
		}
		byLeague[t.LeagueID] = append(byLeague[t.LeagueID], *t)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range leagues {
		if teams, ok := byLeague[leagues[i].LeagueID]; ok {
			leagues[i].Teams = teams
		}
	}
	return nil
}

func (db *postgresDB) GetTeams(ctx context.Context, filter TeamFilter) ([]model.Team, error) {
	args := pgx.NamedArgs{
		"skip":  filter.Skip,
		"limit": filter.Limit,
	}
	conds := make([]string, 0, 3)
	if !filter.MinimumLastChangedDate.IsZero() {
		conds = append(conds, "last_changed_date >= @minDate")
		args["minDate"] = dateArg(filter.MinimumLastChangedDate)
	}
	if filter.TeamName != "" {
		conds = append(conds, "team_name = @teamName")
		args["teamName"] = filter.TeamName
	}
	if filter.LeagueID != nil {
		conds = append(conds, "league_id = @leagueID")
		args["leagueID"] = *filter.LeagueID
	}

	query := fmt.Sprintf(`SELECT team_id, league_id, team_name, last_changed_date
		FROM team%s ORDER BY team_id OFFSET @skip LIMIT @limit`, whereClause(conds))

	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	defer rows.Close()

	results := make([]model.Team, 0, 8)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.loadTeamRosters(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

// loadTeamRosters hydrates the Players collection of every team in a single
// batched query through the team_player join table.
func (db *postgresDB) loadTeamRosters(ctx context.Context, teams []model.Team) error {
	if len(teams) == 0 {
		return nil
	}

	ids := make([]int32, 0, len(teams))
	for i := range teams {
		teams[i].Players = make([]model.Player, 0, 8)
		ids = append(ids, teams[i].TeamID)
	}

	const query = `SELECT tp.team_id, p.player_id, p.gsis_id, p.name_first, p.name_last, p.position, p.last_changed_date
		FROM team_player tp
		JOIN player p ON p.player_id = tp.player_id
		WHERE tp.team_id = ANY(@teamIDs)
		ORDER BY tp.team_id, p.player_id`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"teamIDs": ids})
	if err != nil {
		return fmt.Errorf("error loading rosters: %w", err)
	}
	defer rows.Close()

	byTeam := make(map[int32][]model.Player, len(teams))
	for rows.Next() {
		var teamID int32
		var p model.Player
		var gsisID sql.NullString
		var pos DBPosition
		var changed pgtype.Date
		err := rows.Scan(&teamID, &p.PlayerID, &gsisID, &p.FirstName, &p.LastName, &pos, &changed)
		if err != nil {
			return fmt.Errorf("error scanning roster row: %w", err)
		}
		p.GsisID = valueOrEmpty(gsisID)
		p.Position = pos.position
		p.LastChangedDate = model.DateOf(changed.Time)
		byTeam[teamID] = append(byTeam[teamID], p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range teams {
		if roster, ok := byTeam[teams[i].TeamID]; ok {
			teams[i].Players = roster
		}
	}
	return nil
}

func (db *postgresDB) GetLeagueCount(ctx context.Context) (int, error) {
	return db.count(ctx, `SELECT COUNT(*) FROM league`)
}

func (db *postgresDB) GetTeamCount(ctx context.Context) (int, error) {
	return db.count(ctx, `SELECT COUNT(*) FROM team`)
}

func (db *postgresDB) GetPlayerCount(ctx context.Context) (int, error) {
	return db.count(ctx, `SELECT COUNT(*) FROM player`)
}

func (db *postgresDB) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := db.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting rows: %w", err)
	}
	return n, nil
}

func whereClause(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

func dateArg(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	var gsisID sql.NullString
	var pos DBPosition
	var changed pgtype.Date
	err := row.Scan(&p.PlayerID, &gsisID, &p.FirstName, &p.LastName, &pos, &changed)
	if err != nil {
		return nil, err
	}
	p.GsisID = valueOrEmpty(gsisID)
	p.Position = pos.position
	p.LastChangedDate = model.DateOf(changed.Time)
	return &p, nil
}

func scanPerformance(row pgx.Row) (*model.Performance, error) {
	var perf model.Performance
	var changed pgtype.Date
	err := row.Scan(&perf.PerformanceID, &perf.PlayerID, &perf.WeekNumber, &perf.FantasyPoints, &changed)
	if err != nil {
		return nil, err
	}
	perf.LastChangedDate = model.DateOf(changed.Time)
	return &perf, nil
}

func scanLeague(row pgx.Row) (*model.League, error) {
	var l model.League
	var scoring DBScoringType
	var changed pgtype.Date
	err := row.Scan(&l.LeagueID, &l.LeagueName, &scoring, &changed)
	if err != nil {
		return nil, err
	}
	l.ScoringType = scoring.scoring
	l.LastChangedDate = model.DateOf(changed.Time)
	return &l, nil
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var t model.Team
	var changed pgtype.Date
	err := row.Scan(&t.TeamID, &t.LeagueID, &t.TeamName, &changed)
	if err != nil {
		return nil, err
	}
	t.LastChangedDate = model.DateOf(changed.Time)
	return &t, nil
}

func scanTeamBase(row pgx.Row) (*model.TeamBase, error) {
	var t model.TeamBase
	var changed pgtype.Date
	err := row.Scan(&t.TeamID, &t.LeagueID, &t.TeamName, &changed)
	if err != nil {
		return nil, err
	}
	t.LastChangedDate = model.DateOf(changed.Time)
	return &t, nil
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

type DBPosition struct {
	position model.Position
}

func (p *DBPosition) ScanText(v pgtype.Text) error {
	p.position = model.ParsePosition(v.String)
	return nil
}

func (p *DBPosition) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(p.position),
		Valid:  true,
	}, nil
}

type DBScoringType struct {
	scoring model.ScoringType
}

func (s *DBScoringType) ScanText(v pgtype.Text) error {
	s.scoring = model.ParseScoringType(v.String)
	return nil
}

func (s *DBScoringType) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(s.scoring),
		Valid:  true,
	}, nil
}
