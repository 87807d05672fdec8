package controller

import (
	"context"
	"fmt"

	"github.com/sportsworldcentral/swc_api/bulk"
	"github.com/sportsworldcentral/swc_api/db"
	"github.com/sportsworldcentral/swc_api/model"
)

// C encapsulates business logic without worrying about any web layers.
// The API is read-only: everything here is a lookup, a listing, or an
// export over data loaded by an external process.
type C interface {
	GetPlayers(ctx context.Context, filter db.PlayerFilter) ([]model.Player, error)
	GetPlayer(ctx context.Context, id int32) (*model.Player, error)

	GetPerformances(ctx context.Context, filter db.PerformanceFilter) ([]model.Performance, error)

	GetLeagues(ctx context.Context, filter db.LeagueFilter) ([]model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)

	GetTeams(ctx context.Context, filter db.TeamFilter) ([]model.Team, error)

	// GetCounts returns whole-table counts for leagues, teams, and players.
	// Counts ignore all filters by design.
	GetCounts(ctx context.Context) (*model.Counts, error)

	// Full-table file exports in the requested format. Filters never apply
	// to exports.
	ExportLeagues(ctx context.Context, format bulk.Format) ([]byte, error)
	ExportTeams(ctx context.Context, format bulk.Format) ([]byte, error)
	ExportPlayers(ctx context.Context, format bulk.Format) ([]byte, error)
	ExportPerformances(ctx context.Context, format bulk.Format) ([]byte, error)
	ExportTeamPlayers(ctx context.Context, format bulk.Format) ([]byte, error)
}

type controller struct {
	db db.DB
}

func New(db db.DB) (C, error) {
	c := &controller{
		db: db,
	}
	return c, nil
}

func (c *controller) GetPlayers(ctx context.Context, filter db.PlayerFilter) ([]model.Player, error) {
	return c.db.GetPlayers(ctx, filter)
}

func (c *controller) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) GetPerformances(ctx context.Context, filter db.PerformanceFilter) ([]model.Performance, error) {
	return c.db.GetPerformances(ctx, filter)
}

func (c *controller) GetLeagues(ctx context.Context, filter db.LeagueFilter) ([]model.League, error) {
	return c.db.GetLeagues(ctx, filter)
}

func (c *controller) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	return c.db.GetLeague(ctx, id)
}

func (c *controller) GetTeams(ctx context.Context, filter db.TeamFilter) ([]model.Team, error) {
	return c.db.GetTeams(ctx, filter)
}

func (c *controller) GetCounts(ctx context.Context) (*model.Counts, error) {
	leagues, err := c.db.GetLeagueCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting leagues: %w", err)
	}
	teams, err := c.db.GetTeamCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting teams: %w", err)
	}
	players, err := c.db.GetPlayerCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting players: %w", err)
	}

	return &model.Counts{
		LeagueCount: leagues,
		TeamCount:   teams,
		PlayerCount: players,
	}, nil
}

func (c *controller) ExportLeagues(ctx context.Context, format bulk.Format) ([]byte, error) {
	leagues, err := c.db.AllLeagues(ctx)
	if err != nil {
		return nil, err
	}
	return bulk.Leagues(format, leagues)
}

func (c *controller) ExportTeams(ctx context.Context, format bulk.Format) ([]byte, error) {
	teams, err := c.db.AllTeams(ctx)
	if err != nil {
		return nil, err
	}
	return bulk.Teams(format, teams)
}

func (c *controller) ExportPlayers(ctx context.Context, format bulk.Format) ([]byte, error) {
	players, err := c.db.AllPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return bulk.Players(format, players)
}

func (c *controller) ExportPerformances(ctx context.Context, format bulk.Format) ([]byte, error) {
	performances, err := c.db.AllPerformances(ctx)
	if err != nil {
		return nil, err
	}
	return bulk.Performances(format, performances)
}

func (c *controller) ExportTeamPlayers(ctx context.Context, format bulk.Format) ([]byte, error) {
	teamPlayers, err := c.db.AllTeamPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return bulk.TeamPlayers(format, teamPlayers)
}
