package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/oddslens/backend/internal/kalshi"
	"github.com/oddslens/backend/internal/reconcile"
	"github.com/oddslens/backend/internal/sports"
)

func testRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func marketsUpstream(t *testing.T, markets []kalshi.Market, calls *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		_ = json.NewEncoder(w).Encode(kalshi.MarketsResponse{Markets: markets})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func eventsServiceFor(srvURL string, rdb *redis.Client) *EventsService {
	client := &kalshi.Client{BaseURL: srvURL, HTTPClient: http.DefaultClient}
	return NewEventsService(nil, rdb, client)
}

func sampleMarkets() []kalshi.Market {
	bid, ask := 65.0, 67.0
	obid, oask := 33.0, 35.0
	return []kalshi.Market{
		{
			Ticker:      "KXNFLGAME-25NOV09ATLIND-IND",
			EventTicker: "KXNFLGAME-25NOV09ATLIND",
			Title:       "Atlanta Falcons at Indianapolis Colts Winner?",
			YesBid:      &bid,
			YesAsk:      &ask,
		},
		{
			Ticker:      "KXNFLGAME-25NOV09ATLIND-ATL",
			EventTicker: "KXNFLGAME-25NOV09ATLIND",
			Title:       "Atlanta Falcons at Indianapolis Colts Winner?",
			YesBid:      &obid,
			YesAsk:      &oask,
		},
	}
}

func TestGetEventsFetchesAndCaches(t *testing.T) {
	mr, rdb := testRedis(t)
	calls := 0
	srv := marketsUpstream(t, sampleMarkets(), &calls)
	svc := eventsServiceFor(srv.URL, rdb)
	cfg := sports.Get("nfl")

	events, err := svc.GetEvents(context.Background(), cfg)
	if err != nil {
		t.Fatalf("GetEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	if events[0].HomeTeam != "Indianapolis Colts" {
		t.Errorf("home = %q", events[0].HomeTeam)
	}
	if calls != 1 {
		t.Fatalf("upstream calls = %d, want 1", calls)
	}

	// Both cache tiers written
	if !mr.Exists("events:nfl") || !mr.Exists("events:nfl:stale") {
		t.Fatal("cache keys missing after fetch")
	}
	if mr.TTL("events:nfl") == 0 {
		t.Error("fresh key should expire")
	}
	if mr.TTL("events:nfl:stale") != 0 {
		t.Error("stale key should not expire")
	}

	// Second call is served from cache, not the upstream
	if _, err := svc.GetEvents(context.Background(), cfg); err != nil {
		t.Fatalf("cached GetEvents: %v", err)
	}
	if calls != 1 {
		t.Errorf("upstream calls after cache hit = %d, want 1", calls)
	}
}

func TestGetEventsServesStaleOnUpstreamFailure(t *testing.T) {
	_, rdb := testRedis(t)

	stale := []reconcile.EventRecord{{EventTicker: "KXNFLGAME-OLD", HomeTeam: "Chicago Bears"}}
	data, _ := json.Marshal(stale)
	if err := rdb.Set(context.Background(), "events:nfl:stale", data, 0).Err(); err != nil {
		t.Fatalf("seed stale: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	svc := eventsServiceFor(srv.URL, rdb)
	events, err := svc.GetEvents(context.Background(), sports.Get("nfl"))
	if err != nil {
		t.Fatalf("GetEvents: %v", err)
	}
	if len(events) != 1 || events[0].EventTicker != "KXNFLGAME-OLD" {
		t.Fatalf("expected stale data, got %+v", events)
	}
}

func TestGetEventsThrottlesDeadUpstream(t *testing.T) {
	mr, rdb := testRedis(t)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	svc := eventsServiceFor(srv.URL, rdb)
	cfg := sports.Get("nfl")

	events, err := svc.GetEvents(context.Background(), cfg)
	if err != nil {
		t.Fatalf("GetEvents: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty events, got %d", len(events))
	}

	// The empty payload lands under the fresh key with a TTL, so the next
	// call inside the window never reaches the upstream.
	if !mr.Exists("events:nfl") {
		t.Fatal("empty payload not cached")
	}
	if _, err := svc.GetEvents(context.Background(), cfg); err != nil {
		t.Fatalf("second GetEvents: %v", err)
	}
	if calls != 1 {
		t.Errorf("upstream calls = %d, want 1", calls)
	}
}

func TestFindEvent(t *testing.T) {
	_, rdb := testRedis(t)
	calls := 0
	srv := marketsUpstream(t, sampleMarkets(), &calls)
	svc := eventsServiceFor(srv.URL, rdb)
	cfg := sports.Get("nfl")

	record, err := svc.FindEvent(context.Background(), cfg, "KXNFLGAME-25NOV09ATLIND")
	if err != nil {
		t.Fatalf("FindEvent: %v", err)
	}
	if record == nil || record.EventTicker != "KXNFLGAME-25NOV09ATLIND" {
		t.Fatalf("record = %+v", record)
	}

	missing, err := svc.FindEvent(context.Background(), cfg, "KXNFLGAME-NOPE")
	if err != nil {
		t.Fatalf("FindEvent missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown ticker, got %+v", missing)
	}
}
