package web

import (
	"net/http"

	"github.com/unrolled/render"
)

// RouteDoc is static documentation metadata for one endpoint. It is plain
// data consumed by documentation tooling, not routing logic.
type RouteDoc struct {
	OperationID string   `json:"operation_id"`
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

var routeDocs = []RouteDoc{
	{
		OperationID: "v0_health_check",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Check to see if the SWC fantasy football API is running",
		Description: "Use this endpoint to check if the API is running. You can also check it first before making other calls to be sure it's running.",
		Tags:        []string{"analytics"},
	},
	{
		OperationID: "v0_get_players",
		Method:      http.MethodGet,
		Path:        "/v0/players/",
		Summary:     "Get all the SWC players that meet the parameters you send. Names are not unique; use skip and limit for pagination. Don't use player id values for counts.",
		Description: "Use this endpoint to get a list of SWC players. You can use the parameters to filter down the players in the list. Names are not unique. Use skip and limit to paginate. Don't use the player id values to perform counts; those are not guaranteed to be in order.",
		Tags:        []string{"players"},
	},
	{
		OperationID: "v0_get_players_by_player_id",
		Method:      http.MethodGet,
		Path:        "/v0/players/{player_id}",
		Summary:     "Get one player using the SWC player id",
		Description: "If you have an SWC player id of a player from another call such as v0_get_players, you can look the player up directly with it.",
		Tags:        []string{"players"},
	},
	{
		OperationID: "v0_get_performances",
		Method:      http.MethodGet,
		Path:        "/v0/performances/",
		Summary:     "Get weekly scoring performances, including fantasy points under SWC league scoring",
		Description: "Use this endpoint to get lists of weekly performances by players in the SWC. Use skip and limit to paginate. Don't use the performance id for counting or logic; it is an internal id and is not guaranteed to be sequential.",
		Tags:        []string{"scoring"},
	},
	{
		OperationID: "v0_get_leagues",
		Method:      http.MethodGet,
		Path:        "/v0/leagues/",
		Summary:     "Get SWC fantasy football leagues with their member teams. League name is not unique.",
		Description: "Use this endpoint to get lists of SWC fantasy football leagues. Use skip and limit to paginate. League name is not guaranteed to be unique. Don't use the league id for counting or logic; it is an internal id and is not guaranteed to be sequential.",
		Tags:        []string{"membership"},
	},
	{
		OperationID: "v0_get_league_by_league_id",
		Method:      http.MethodGet,
		Path:        "/v0/leagues/{league_id}",
		Summary:     "Get one league by league id",
		Description: "Use this endpoint to get a single league that matches the league id you provide.",
		Tags:        []string{"membership"},
	},
	{
		OperationID: "v0_get_teams",
		Method:      http.MethodGet,
		Path:        "/v0/teams/",
		Summary:     "Get SWC fantasy football teams with their player rosters. Team name is unique inside a league only.",
		Description: "Use this endpoint to get lists of SWC fantasy football teams. Use skip and limit to paginate. Team name is not unique across the SWC, only inside a league. Don't use the team id for counting or logic; it is an internal id and is not guaranteed to be sequential.",
		Tags:        []string{"membership"},
	},
	{
		OperationID: "v0_get_counts",
		Method:      http.MethodGet,
		Path:        "/v0/counts/",
		Summary:     "Get whole-table counts of leagues, teams, and players. Use this instead of counting rows from the list endpoints.",
		Description: "Use this endpoint to count the number of leagues, teams, and players in SWC fantasy football. Use it in combination with skip and limit in v0_get_leagues, v0_get_teams, or v0_get_players, and use it for counts instead of paging through the list endpoints.",
		Tags:        []string{"analytics"},
	},
	{
		OperationID: "v0_get_bulk_files",
		Method:      http.MethodGet,
		Path:        "/v0/bulk/{entity}",
		Summary:     "Download a full-table export of an entity as a CSV or Parquet file",
		Description: "Use this endpoint to download the entire contents of a table in one file instead of paginating through the list endpoints. The format query parameter selects csv (the default) or parquet.",
		Tags:        []string{"bulk"},
	},
}

func docsHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, routeDocs)
	}
}
