package mockcontroller

import (
	"context"

	"github.com/sportsworldcentral/swc_api/bulk"
	"github.com/sportsworldcentral/swc_api/db"
	"github.com/sportsworldcentral/swc_api/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetPlayers(ctx context.Context, filter db.PlayerFilter) ([]model.Player, error) {
	args := c.Called(ctx, filter)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, id int32) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) GetPerformances(ctx context.Context, filter db.PerformanceFilter) ([]model.Performance, error) {
	args := c.Called(ctx, filter)

	var r []model.Performance
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Performance)
	}
	return r, args.Error(1)
}

func (c *C) GetLeagues(ctx context.Context, filter db.LeagueFilter) ([]model.League, error) {
	args := c.Called(ctx, filter)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (c *C) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := c.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) GetTeams(ctx context.Context, filter db.TeamFilter) ([]model.Team, error) {
	args := c.Called(ctx, filter)

	var r []model.Team
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Team)
	}
	return r, args.Error(1)
}

func (c *C) GetCounts(ctx context.Context) (*model.Counts, error) {
	args := c.Called(ctx)

	var counts *model.Counts
	if args.Get(0) != nil {
		counts = args.Get(0).(*model.Counts)
	}
	return counts, args.Error(1)
}

func (c *C) ExportLeagues(ctx context.Context, format bulk.Format) ([]byte, error) {
	args := c.Called(ctx, format)
	return bytesOrNil(args), args.Error(1)
}

func (c *C) ExportTeams(ctx context.Context, format bulk.Format) ([]byte, error) {
	args := c.Called(ctx, format)
	return bytesOrNil(args), args.Error(1)
}

func (c *C) ExportPlayers(ctx context.Context, format bulk.Format) ([]byte, error) {
	args := c.Called(ctx, format)
	return bytesOrNil(args), args.Error(1)
}

func (c *C) ExportPerformances(ctx context.Context, format bulk.Format) ([]byte, error) {
	args := c.Called(ctx, format)
	return bytesOrNil(args), args.Error(1)
}

func (c *C) ExportTeamPlayers(ctx context.Context, format bulk.Format) ([]byte, error) {
	args := c.Called(ctx, format)
	return bytesOrNil(args), args.Error(1)
}

func bytesOrNil(args mock.Arguments) []byte {
	if args.Get(0) != nil {
		return args.Get(0).([]byte)
	}
	return nil
}
