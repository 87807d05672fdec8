package model

// Player is an NFL player in the SWC dataset. PlayerID is an internal
// surrogate key and is not guaranteed to be sequential, so it must never be
// used for counting. GsisID is an optional identifier from the upstream feed.
type Player struct {
	PlayerID        int32    `json:"player_id"`
	GsisID          string   `json:"gsis_id"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Position        Position `json:"position"`
	LastChangedDate Date     `json:"last_changed_date"`
}

// Performance is a single player's fantasy scoring for one week. WeekNumber
// is a label, not a number, and is not guaranteed to sort numerically.
type Performance struct {
	PerformanceID   int32   `json:"performance_id"`
	PlayerID        int32   `json:"player_id"`
	WeekNumber      string  `json:"week_number"`
	FantasyPoints   float64 `json:"fantasy_points"`
	LastChangedDate Date    `json:"last_changed_date"`
}
