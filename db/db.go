package db

import (
	"context"
	"time"

	"github.com/sportsworldcentral/swc_api/model"
)

// PageParams control offset based pagination. Skip and Limit are applied
// after every filter. Values beyond the available rows yield an empty
// result, never an error.
type PageParams struct {
	Skip  int
	Limit int
}

// PlayerFilter narrows a player listing. MinimumLastChangedDate is a closed
// lower bound (>=) on last_changed_date; the zero value means no date
// filter. FirstName and LastName are exact, case-sensitive matches and are
// only applied when non-empty. An empty string means "no constraint", not
// "match the empty string".
type PlayerFilter struct {
	PageParams
	MinimumLastChangedDate time.Time
	FirstName              string
	LastName               string
}

// PerformanceFilter narrows a performance listing. Only the date watermark
// is supported.
type PerformanceFilter struct {
	PageParams
	MinimumLastChangedDate time.Time
}

type LeagueFilter struct {
	PageParams
	MinimumLastChangedDate time.Time
	LeagueName             string
}

// TeamFilter narrows a team listing. LeagueID is nil when absent; teams can
// only be filtered by league id, not by league name.
type TeamFilter struct {
	PageParams
	MinimumLastChangedDate time.Time
	TeamName               string
	LeagueID               *int32
}

type DB interface {
	// GetPlayers lists players matching the filter. Performances are never
	// loaded here; use GetPerformances.
	GetPlayers(ctx context.Context, filter PlayerFilter) ([]model.Player, error)
	GetPlayer(ctx context.Context, id int32) (*model.Player, error)

	GetPerformances(ctx context.Context, filter PerformanceFilter) ([]model.Performance, error)

	// GetLeagues and GetLeague load each league's teams in the same call.
	// The nested teams do not carry player rosters.
	GetLeagues(ctx context.Context, filter LeagueFilter) ([]model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)

	// GetTeams loads each team's player roster in the same call.
	GetTeams(ctx context.Context, filter TeamFilter) ([]model.Team, error)

	// Whole-table counts. These ignore all filters.
	GetLeagueCount(ctx context.Context) (int, error)
	GetTeamCount(ctx context.Context) (int, error)
	GetPlayerCount(ctx context.Context) (int, error)

	// Full-table reads for the bulk file exports, ordered by primary key.
	// The rows are flat: no nested collections are loaded.
	AllLeagues(ctx context.Context) ([]model.League, error)
	AllTeams(ctx context.Context) ([]model.Team, error)
	AllPlayers(ctx context.Context) ([]model.Player, error)
	AllPerformances(ctx context.Context) ([]model.Performance, error)
	AllTeamPlayers(ctx context.Context) ([]model.TeamPlayer, error)

	// Seed writes used by the data loader and tests. The HTTP API is
	// read-only; nothing above the db layer calls these. A zero
	// LastChangedDate defaults to the current date.
	SaveLeague(ctx context.Context, l *model.League) error
	SaveTeam(ctx context.Context, t *model.Team) error
	SavePlayer(ctx context.Context, p *model.Player) error
	SavePerformance(ctx context.Context, perf *model.Performance) error
	SaveTeamPlayer(ctx context.Context, tp *model.TeamPlayer) error
}
