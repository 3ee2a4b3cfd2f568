package oddsfeed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oddslens/backend/internal/config"
)

func testClient(srvURL string) *Client {
	return NewClient(&config.Config{
		OddsFeed: config.OddsFeedConfig{
			BaseURL: srvURL,
			APIKey:  "test-key",
			Regions: "us",
		},
	})
}

func TestFetchGames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v4/sports/americanfootball_nfl/odds" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("apiKey") != "test-key" || q.Get("oddsFormat") != "american" || q.Get("markets") != "h2h" {
			t.Errorf("query = %v", q)
		}

		_ = json.NewEncoder(w).Encode([]Game{{
			ID:       "g1",
			SportKey: "americanfootball_nfl",
			AwayTeam: "Atlanta Falcons",
			HomeTeam: "Indianapolis Colts",
		}})
	}))
	defer srv.Close()

	games, err := testClient(srv.URL).FetchGames(context.Background(), "americanfootball_nfl")
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	if len(games) != 1 || games[0].ID != "g1" {
		t.Fatalf("games = %+v", games)
	}
}

func TestFetchGamesRetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	games, err := testClient(srv.URL).FetchGames(context.Background(), "americanfootball_nfl")
	if err != nil {
		t.Fatalf("FetchGames after retry: %v", err)
	}
	if games == nil || len(games) != 0 {
		t.Fatalf("games = %+v", games)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestFetchGamesDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchGames(context.Background(), "americanfootball_nfl")
	if err == nil {
		t.Fatal("expected error on 401")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want no retry on 4xx", calls)
	}
}
