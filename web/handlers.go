package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sportsworldcentral/swc_api/controller"
	"github.com/sportsworldcentral/swc_api/db"
	"github.com/unrolled/render"
)

const defaultLimit = 100

func healthCheckHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"message": "API health check successful"})
	}
}

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := db.PlayerFilter{
			FirstName: r.URL.Query().Get("first_name"),
			LastName:  r.URL.Query().Get("last_name"),
		}

		var err error
		if filter.PageParams, err = parsePageParams(r); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		if filter.MinimumLastChangedDate, err = parseMinimumDate(r); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		players, err := ctrl.GetPlayers(r.Context(), filter)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "playerID"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing player id: %v", err))
			return
		}

		p, err := ctrl.GetPlayer(r.Context(), int32(id))
		if err != nil {
			if errors.Is(err, db.ErrPlayerNotFound) {
				renderError(render, w, http.StatusNotFound, "Player not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func listPerformancesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter db.PerformanceFilter

		var err error
		if filter.PageParams, err = parsePageParams(r); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		if filter.MinimumLastChangedDate, err = parseMinimumDate(r); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		performances, err := ctrl.GetPerformances(r.Context(), filter)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, performances)
	}
}

func listLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := db.LeagueFilter{
			LeagueName: r.URL.Query().Get("league_name"),
		}

		var err error
		if filter.PageParams, err = parsePageParams(r); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		if filter.MinimumLastChangedDate, err = parseMinimumDate(r); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}

		leagues, err := ctrl.GetLeagues(r.Context(), filter)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func getLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "leagueID"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing league id: %v", err))
			return
		}

		l, err := ctrl.GetLeague(r.Context(), int32(id))
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				renderError(render, w, http.StatusNotFound, "League not found")
			} else {
				renderError(render, w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func listTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := db.TeamFilter{
			TeamName: r.URL.Query().Get("team_name"),
		}

		var err error
		if filter.PageParams, err = parsePageParams(r); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		if filter.MinimumLastChangedDate, err = parseMinimumDate(r); err != nil {
			renderError(render, w, http.StatusBadRequest, err.Error())
			return
		}
		if v := r.URL.Query().Get("league_id"); v != "" {
			id, err := strconv.Atoi(v)
			if err != nil {
				renderError(render, w, http.StatusBadRequest, fmt.Sprintf("error parsing league id: %v", err))
				return
			}
			leagueID := int32(id)
			filter.LeagueID = &leagueID
		}

		teams, err := ctrl.GetTeams(r.Context(), filter)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func getCountsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := ctrl.GetCounts(r.Context())
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err.Error())
			return
		}
		render.JSON(w, http.StatusOK, counts)
	}
}

// parsePageParams reads skip and limit, applying the documented defaults of
// 0 and 100. Malformed values, a negative skip, or a non-positive limit are
// rejected before anything reaches the query layer.
func parsePageParams(r *http.Request) (db.PageParams, error) {
	page := db.PageParams{Skip: 0, Limit: defaultLimit}

	if v := r.URL.Query().Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return page, fmt.Errorf("skip must be a non-negative integer, got: %s", v)
		}
		page.Skip = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return page, fmt.Errorf("limit must be a positive integer, got: %s", v)
		}
		page.Limit = n
	}
	return page, nil
}

// parseMinimumDate reads minimum_last_changed_date. Absent means no date
// filter at all, which is different from any concrete date value.
func parseMinimumDate(r *http.Request) (time.Time, error) {
	v := r.URL.Query().Get("minimum_last_changed_date")
	if v == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("minimum_last_changed_date must be in the YYYY-MM-DD format, got: %s", v)
	}
	return t, nil
}

func renderError(render *render.Render, w http.ResponseWriter, status int, detail string) {
	render.JSON(w, status, map[string]string{"detail": detail})
}
