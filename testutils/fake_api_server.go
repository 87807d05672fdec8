package testutils

import (
	"log"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/sportsworldcentral/swc_api/bulk"
	"github.com/sportsworldcentral/swc_api/model"
)

// Canned records served by the FakeAPIServer, exported so SDK tests can
// compare decoded responses against them.
var (
	BryceYoung = model.Player{
		PlayerID:        1,
		GsisID:          "00-0039150",
		FirstName:       "Bryce",
		LastName:        "Young",
		Position:        model.POS_QB,
		LastChangedDate: model.NewDate(2024, time.April, 1),
	}
	TylerLockett = model.Player{
		PlayerID:        16,
		GsisID:          "00-0032211",
		FirstName:       "Tyler",
		LastName:        "Lockett",
		Position:        model.POS_WR,
		LastChangedDate: model.NewDate(2024, time.February, 1),
	}

	FakeTeams = []model.Team{
		{
			TeamID:          1,
			LeagueID:        1,
			TeamName:        "Squad 01",
			LastChangedDate: model.NewDate(2024, time.April, 1),
			Players:         []model.Player{BryceYoung, TylerLockett},
		},
	}

	FakeLeagues = []model.League{
		{
			LeagueID:        1,
			LeagueName:      "League 1",
			ScoringType:     model.SCORING_PPR,
			LastChangedDate: model.NewDate(2024, time.April, 1),
			Teams: []model.TeamBase{
				{TeamID: 1, LeagueID: 1, TeamName: "Squad 01", LastChangedDate: model.NewDate(2024, time.April, 1)},
				{TeamID: 2, LeagueID: 1, TeamName: "Squad 02", LastChangedDate: model.NewDate(2024, time.February, 1)},
			},
		},
		{
			LeagueID:        2,
			LeagueName:      "Sharpshooters Invitational",
			ScoringType:     model.SCORING_STANDARD,
			LastChangedDate: model.NewDate(2024, time.February, 1),
			Teams:           []model.TeamBase{},
		},
	}

	FakePerformances = []model.Performance{
		{PerformanceID: 1, PlayerID: 1, WeekNumber: "1", FantasyPoints: 21.5, LastChangedDate: model.NewDate(2024, time.April, 1)},
		{PerformanceID: 2, PlayerID: 16, WeekNumber: "1", FantasyPoints: 12.1, LastChangedDate: model.NewDate(2024, time.February, 1)},
	}

	FakeCounts = model.Counts{LeagueCount: 5, TeamCount: 20, PlayerCount: 550}
)

// FakeAPIServer serves the happy-path SWC API surface for SDK tests.
type FakeAPIServer struct {
	s *httptest.Server
}

func NewFakeAPIServer() *FakeAPIServer {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		serveJSON(w, map[string]string{"message": "API health check successful"})
	})

	r.Route("/v0", func(r chi.Router) {
		r.Get("/players/", playersHandler)
		r.Get("/players/{playerID}", playerHandler)
		r.Get("/performances/", func(w http.ResponseWriter, r *http.Request) {
			serveJSON(w, FakePerformances)
		})
		r.Get("/leagues/", func(w http.ResponseWriter, r *http.Request) {
			serveJSON(w, FakeLeagues)
		})
		r.Get("/leagues/{leagueID}", leagueHandler)
		r.Get("/teams/", func(w http.ResponseWriter, r *http.Request) {
			serveJSON(w, FakeTeams)
		})
		r.Get("/counts/", func(w http.ResponseWriter, r *http.Request) {
			serveJSON(w, FakeCounts)
		})
		r.Get("/bulk/players", bulkPlayersHandler)
	})

	return &FakeAPIServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeAPIServer) Close() {
	f.s.Close()
}

func (f *FakeAPIServer) URL() string {
	return f.s.URL
}

func playersHandler(w http.ResponseWriter, r *http.Request) {
	players := []model.Player{BryceYoung, TylerLockett}

	// Enough filter support for SDK tests: exact first/last name matches.
	first := r.URL.Query().Get("first_name")
	last := r.URL.Query().Get("last_name")
	matches := make([]model.Player, 0, len(players))
	for _, p := range players {
		if first != "" && p.FirstName != first {
			continue
		}
		if last != "" && p.LastName != last {
			continue
		}
		matches = append(matches, p)
	}
	serveJSON(w, matches)
}

func playerHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "playerID") == "1" {
		serveJSON(w, BryceYoung)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"detail": "Player not found"}`))
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == "1" {
		serveJSON(w, FakeLeagues[0])
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"detail": "League not found"}`))
}

func bulkPlayersHandler(w http.ResponseWriter, r *http.Request) {
	format, err := bulk.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	data, err := bulk.Players(format, []model.Player{BryceYoung, TylerLockett})
	if err != nil {
		log.Printf("error building bulk player file: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func serveJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("error marshaling fake response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
