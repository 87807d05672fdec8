package model

// League is an SWC fantasy football league. LeagueName is not unique.
type League struct {
	LeagueID        int32       `json:"league_id"`
	LeagueName      string      `json:"league_name"`
	ScoringType     ScoringType `json:"scoring_type"`
	LastChangedDate Date        `json:"last_changed_date"`
	// Teams is populated when leagues are fetched. The nested teams do not
	// carry their player rosters; use the teams listing for that.
	Teams []TeamBase `json:"teams"`
}

// TeamBase is a team without its roster, as it appears nested under a
// league. TeamName is unique within its league but not globally.
type TeamBase struct {
	TeamID          int32  `json:"team_id"`
	LeagueID        int32  `json:"league_id"`
	TeamName        string `json:"team_name"`
	LastChangedDate Date   `json:"last_changed_date"`
}

// Team is a fantasy team with its player roster, as returned by the teams
// listing. Players is always present on the wire, even for an empty roster.
type Team struct {
	TeamID          int32    `json:"team_id"`
	LeagueID        int32    `json:"league_id"`
	TeamName        string   `json:"team_name"`
	LastChangedDate Date     `json:"last_changed_date"`
	Players         []Player `json:"players"`
}

// TeamPlayer is a roster membership row. Membership is presence only, there
// is no role or date range.
type TeamPlayer struct {
	TeamID          int32 `json:"team_id"`
	PlayerID        int32 `json:"player_id"`
	LastChangedDate Date  `json:"last_changed_date"`
}

// Counts holds whole-table row counts. These ignore all filters and match
// what an unbounded, unfiltered listing would return.
type Counts struct {
	LeagueCount int `json:"league_count"`
	TeamCount   int `json:"team_count"`
	PlayerCount int `json:"player_count"`
}
