package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sportsworldcentral/swc_api/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", healthCheckHandler(render))

	r.Route("/v0", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", listPlayersHandler(ctrl, render))
			r.Get("/{playerID:\\d+}", getPlayerHandler(ctrl, render))
		})

		r.Get("/performances/", listPerformancesHandler(ctrl, render))

		r.Route("/leagues", func(r chi.Router) {
			r.Get("/", listLeaguesHandler(ctrl, render))
			r.Get("/{leagueID:\\d+}", getLeagueHandler(ctrl, render))
		})

		r.Get("/teams/", listTeamsHandler(ctrl, render))
		r.Get("/counts/", getCountsHandler(ctrl, render))

		r.Route("/bulk", func(r chi.Router) {
			// Bulk files are full-table exports; the longer timeout covers
			// the parquet encoding of the larger tables.
			r.Use(middleware.Timeout(30 * time.Second))

			r.Get("/players", bulkFileHandler(ctrl.ExportPlayers, "players", render))
			r.Get("/leagues", bulkFileHandler(ctrl.ExportLeagues, "leagues", render))
			r.Get("/teams", bulkFileHandler(ctrl.ExportTeams, "teams", render))
			r.Get("/performances", bulkFileHandler(ctrl.ExportPerformances, "performances", render))
			r.Get("/team-players", bulkFileHandler(ctrl.ExportTeamPlayers, "team_players", render))
		})

		r.Get("/docs/", docsHandler(render))
	})

	return r
}
