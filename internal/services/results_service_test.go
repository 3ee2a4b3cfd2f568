package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oddslens/backend/internal/espn"
	"github.com/oddslens/backend/internal/reconcile"
	"github.com/oddslens/backend/internal/sports"
)

const finalColtsGame = `{
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

func resultsServiceFor(srvURL string) *ResultsService {
	client := &espn.Client{BaseURL: srvURL, HTTPClient: http.DefaultClient}
	return NewResultsService(nil, client)
}

func coltsRecord(yesBid float64) *reconcile.EventRecord {
	closeDT := time.Date(2025, 11, 9, 18, 0, 0, 0, time.UTC)
	return &reconcile.EventRecord{
		EventTicker: "KXNFLGAME-25NOV09ATLIND",
		AwayTeam:    "Atlanta Falcons",
		HomeTeam:    "Indianapolis Colts",
		CloseDT:     &closeDT,
		WinnerPrimary: reconcile.WinnerPrimary{
			Label:       "Indianapolis Colts - Winner?",
			SubjectTeam: "Indianapolis Colts",
			YesBid:      &yesBid,
			Ticker:      "KXNFLGAME-25NOV09ATLIND-IND",
		},
	}
}

func TestGetEventResultMarketRight(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(finalColtsGame))
	}))
	t.Cleanup(srv.Close)

	verdict, err := resultsServiceFor(srv.URL).GetEventResult(
		context.Background(), sports.Get("nfl"), coltsRecord(0.65))
	if err != nil {
		t.Fatalf("GetEventResult: %v", err)
	}
	if verdict == nil {
		t.Fatal("expected a verdict")
	}

	if verdict.GameResult.Winner != "home" {
		t.Errorf("winner = %q", verdict.GameResult.Winner)
	}
	if verdict.PrimaryTeam != "Indianapolis Colts" {
		t.Errorf("primary = %q", verdict.PrimaryTeam)
	}
	if verdict.ConfidenceLabel != "moderately confident" {
		t.Errorf("label = %q", verdict.ConfidenceLabel)
	}
	if verdict.MarketWasRight == nil || !*verdict.MarketWasRight {
		t.Errorf("market_was_right = %v", verdict.MarketWasRight)
	}
}

func TestGetEventResultNoGameFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"events": []}`))
	}))
	t.Cleanup(srv.Close)

	verdict, err := resultsServiceFor(srv.URL).GetEventResult(
		context.Background(), sports.Get("nfl"), coltsRecord(0.65))
	if err != nil {
		t.Fatalf("GetEventResult: %v", err)
	}
	if verdict != nil {
		t.Errorf("expected nil verdict, got %+v", verdict)
	}
}

func TestConfidenceLabel(t *testing.T) {
	cases := []struct {
		p    float64
		want string
	}{
		{0.90, "very confident"},
		{0.75, "very confident"},
		{0.65, "moderately confident"},
		{0.60, "moderately confident"},
		{0.50, "uncertain"},
		{0.40, "uncertain"},
		{0.30, "doubtful"},
		{0.25, "doubtful"},
		{0.10, "very doubtful"},
	}
	for _, tt := range cases {
		if got := confidenceLabel(tt.p); got != tt.want {
			t.Errorf("confidenceLabel(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}
