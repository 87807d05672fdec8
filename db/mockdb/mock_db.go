package mockdb

import (
	"context"

	"github.com/sportsworldcentral/swc_api/db"
	"github.com/sportsworldcentral/swc_api/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (m *DB) GetPlayers(ctx context.Context, filter db.PlayerFilter) ([]model.Player, error) {
	args := m.Called(ctx, filter)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (m *DB) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	args := m.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (m *DB) GetPerformances(ctx context.Context, filter db.PerformanceFilter) ([]model.Performance, error) {
	args := m.Called(ctx, filter)

	var r []model.Performance
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Performance)
	}
	return r, args.Error(1)
}

func (m *DB) GetLeagues(ctx context.Context, filter db.LeagueFilter) ([]model.League, error) {
	args := m.Called(ctx, filter)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (m *DB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := m.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (m *DB) GetTeams(ctx context.Context, filter db.TeamFilter) ([]model.Team, error) {
	args := m.Called(ctx, filter)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (m *DB) GetLeagueCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *DB) GetTeamCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *DB) GetPlayerCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *DB) AllLeagues(ctx context.Context) ([]model.League, error) {
	args := m.Called(ctx)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (m *DB) AllTeams(ctx context.Context) ([]model.Team, error) {
	args := m.Called(ctx)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (m *DB) AllPlayers(ctx context.Context) ([]model.Player, error) {
	args := m.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (m *DB) AllPerformances(ctx context.Context) ([]model.Performance, error) {
	args := m.Called(ctx)

	var r []model.Performance
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Performance)
	}
	return r, args.Error(1)
}

func (m *DB) AllTeamPlayers(ctx context.Context) ([]model.TeamPlayer, error) {
	args := m.Called(ctx)

	var r []model.TeamPlayer
	if args.Get(0) != nil {
		r = args.Get(0).([]model.TeamPlayer)
	}
	return r, args.Error(1)
}

func (m *DB) SaveLeague(ctx context.Context, l *model.League) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *DB) SaveTeam(ctx context.Context, t *model.Team) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *DB) SavePerformance(ctx context.Context, perf *model.Performance) error {
	args := m.Called(ctx, perf)
	return args.Error(0)
}

func (m *DB) SaveTeamPlayer(ctx context.Context, tp *model.TeamPlayer) error {
	args := m.Called(ctx, tp)
	return args.Error(0)
}
