package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const finalGameJSON = `{
  "events": [{
    "id": "401547001",
    "name": "Atlanta Falcons at Indianapolis Colts",
    "shortName": "ATL @ IND",
    "date": "2025-11-09T18:00Z",
    "status": {"type": {"completed": true, "description": "Final", "state": "post"}},
    "competitions": [{
      "competitors": [
        {"id": "11", "homeAway": "home", "score": "28", "winner": true,
         "team": {"displayName": "Indianapolis Colts", "abbreviation": "IND"}},
        {"id": "1", "homeAway": "away", "score": "21", "winner": false,
         "team": {"displayName": "Atlanta Falcons", "abbreviation": "ATL"}}
      ]
    }]
  }]
}`

func testClient(srv *httptest.Server) *Client {
	return &Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
}

func TestGetScoreboard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/football/nfl/scoreboard" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("dates"); got != "20251109" {
			t.Errorf("dates = %q", got)
		}
		_, _ = w.Write([]byte(finalGameJSON))
	}))
	defer srv.Close()

	results, err := testClient(srv).GetScoreboard(context.Background(), "football", "nfl", "20251109")
	if err != nil {
		t.Fatalf("GetScoreboard: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d", len(results))
	}

	r := results[0]
	if !r.Status.Completed || r.Winner != "home" {
		t.Errorf("status = %+v, winner = %q", r.Status, r.Winner)
	}
	if r.HomeTeam == nil || r.HomeTeam.Score == nil || *r.HomeTeam.Score != 28 {
		t.Errorf("home = %+v", r.HomeTeam)
	}
	if r.AwayTeam == nil || r.AwayTeam.Name != "Atlanta Falcons" {
		t.Errorf("away = %+v", r.AwayTeam)
	}
}

func TestFindGameByTeamsScansNeighboringDates(t *testing.T) {
	var dates []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("dates")
		dates = append(dates, date)
		if date == "20251108" {
			_, _ = w.Write([]byte(finalGameJSON))
			return
		}
		_, _ = w.Write([]byte(`{"events": []}`))
	}))
	defer srv.Close()

	gameDate := time.Date(2025, 11, 9, 18, 0, 0, 0, time.UTC)
	result, err := testClient(srv).FindGameByTeams(context.Background(), "football", "nfl",
		"Atlanta Falcons", "Indianapolis Colts", gameDate)
	if err != nil {
		t.Fatalf("FindGameByTeams: %v", err)
	}
	if result == nil || result.GameID != "401547001" {
		t.Fatalf("result = %+v", result)
	}

	// Date on record first, then the day before
	if len(dates) < 2 || dates[0] != "20251109" || dates[1] != "20251108" {
		t.Errorf("search order = %v", dates)
	}
}

func TestFindGameByTeamsNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"events": []}`))
	}))
	defer srv.Close()

	result, err := testClient(srv).FindGameByTeams(context.Background(), "football", "nfl",
		"Chicago Bears", "Detroit Lions", time.Now())
	if err != nil {
		t.Fatalf("FindGameByTeams: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil, got %+v", result)
	}
}

func TestTeamNamesMatch(t *testing.T) {
	cases := []struct {
		espn, canonical string
		want            bool
	}{
		{"Indianapolis Colts", "Indianapolis Colts", true},
		{"Colts", "Indianapolis Colts", true},
		{"Indianapolis Colts", "Colts", true},
		{"LA Rams", "Los Angeles Rams", true}, // shared nickname token
		{"Indianapolis Colts", "Atlanta Falcons", false},
	}
	for _, tt := range cases {
		if got := teamNamesMatch(tt.espn, tt.canonical); got != tt.want {
			t.Errorf("teamNamesMatch(%q, %q) = %v, want %v", tt.espn, tt.canonical, got, tt.want)
		}
	}
}
