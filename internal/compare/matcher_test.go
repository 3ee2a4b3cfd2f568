package compare

import (
	"math"
	"testing"

	"github.com/oddslens/backend/internal/oddsfeed"
	"github.com/oddslens/backend/internal/sports"
)

func nflMatcher() *Matcher {
	return NewMatcher(sports.Get("nfl").Directory())
}

func h2hGame(id, away, home string, books ...oddsfeed.Bookmaker) oddsfeed.Game {
	return oddsfeed.Game{
		ID:         id,
		AwayTeam:   away,
		HomeTeam:   home,
		Bookmakers: books,
	}
}

func h2hBook(title string, awayName string, awayPrice int, homeName string, homePrice int) oddsfeed.Bookmaker {
	return oddsfeed.Bookmaker{
		Title: title,
		Markets: []oddsfeed.Market{{
			Key: oddsfeed.MoneylineMarket,
			Outcomes: []oddsfeed.Outcome{
				{Name: awayName, Price: awayPrice},
				{Name: homeName, Price: homePrice},
			},
		}},
	}
}

func TestFindGame(t *testing.T) {
	games := []oddsfeed.Game{
		h2hGame("g1", "Buffalo Bills", "Miami Dolphins"),
		h2hGame("g2", "Kansas City Chiefs", "Las Vegas Raiders"),
	}

	m := nflMatcher()

	got := m.FindGame("Kansas City Chiefs", "Las Vegas Raiders", games)
	if got == nil || got.ID != "g2" {
		t.Fatalf("FindGame = %v, want g2", got)
	}

	// Sources render names differently; normalization bridges them
	got = m.FindGame("KC", "LV", games)
	if got == nil || got.ID != "g2" {
		t.Fatalf("FindGame with codes = %v, want g2", got)
	}

	if m.FindGame("Chicago Bears", "Detroit Lions", games) != nil {
		t.Error("unrelated matchup should not match")
	}
}

func TestFindGameFirstMatchWins(t *testing.T) {
	games := []oddsfeed.Game{
		h2hGame("dup1", "Buffalo Bills", "Miami Dolphins"),
		h2hGame("dup2", "Buffalo Bills", "Miami Dolphins"),
	}

	got := nflMatcher().FindGame("Buffalo Bills", "Miami Dolphins", games)
	if got == nil || got.ID != "dup1" {
		t.Fatalf("FindGame = %v, want the first listing", got)
	}
}

func TestCollectQuotes(t *testing.T) {
	game := h2hGame("g1", "Kansas City Chiefs", "Las Vegas Raiders",
		h2hBook("DraftKings", "Kansas City Chiefs", -120, "Las Vegas Raiders", 100),
		h2hBook("FanDuel", "Kansas City Chiefs", -110, "Las Vegas Raiders", -105),
		// Spread market must be ignored
		oddsfeed.Bookmaker{
			Title: "Caesars",
			Markets: []oddsfeed.Market{{
				Key: "spreads",
				Outcomes: []oddsfeed.Outcome{
					{Name: "Kansas City Chiefs", Price: -110},
				},
			}},
		},
		// Zero price must be skipped
		h2hBook("BetMGM", "Kansas City Chiefs", 0, "Las Vegas Raiders", -115),
	)

	odds := nflMatcher().CollectQuotes(&game)

	if len(odds.Away) != 2 {
		t.Fatalf("away quotes = %d, want 2", len(odds.Away))
	}
	if len(odds.Home) != 3 {
		t.Fatalf("home quotes = %d, want 3", len(odds.Home))
	}

	if odds.Away[0].Bookmaker != "DraftKings" || odds.Away[0].Odds != -120 {
		t.Errorf("first away quote = %+v", odds.Away[0])
	}
	want := 120.0 / 220.0
	if math.Abs(odds.Away[0].ImpliedProbability-want) > 1e-9 {
		t.Errorf("implied = %v, want %v", odds.Away[0].ImpliedProbability, want)
	}
}

func TestComputeConsensusConvertThenAverage(t *testing.T) {
	quotes := []Quote{
		{Bookmaker: "A", Odds: -120, ImpliedProbability: 120.0 / 220.0},
		{Bookmaker: "B", Odds: -110, ImpliedProbability: 110.0 / 210.0},
		{Bookmaker: "C", Odds: -130, ImpliedProbability: 130.0 / 230.0},
	}

	consensus := ComputeConsensus(GameOdds{Away: quotes})

	if consensus.Away.NumBookmakers != 3 {
		t.Fatalf("num_bookmakers = %d", consensus.Away.NumBookmakers)
	}
	want := (120.0/220.0 + 110.0/210.0 + 130.0/230.0) / 3
	if consensus.Away.AverageProbability == nil ||
		math.Abs(*consensus.Away.AverageProbability-want) > 1e-9 {
		t.Errorf("average = %v, want %v", consensus.Away.AverageProbability, want)
	}

	if consensus.Home.AverageProbability != nil || consensus.Home.NumBookmakers != 0 {
		t.Error("empty side must stay nil")
	}
}

func TestBestQuote(t *testing.T) {
	quotes := []Quote{
		{Bookmaker: "A", Odds: -120},
		{Bookmaker: "B", Odds: 150},
		{Bookmaker: "C", Odds: -200},
	}

	best := BestQuote(quotes)
	if best == nil || best.Bookmaker != "B" || best.Odds != 150 {
		t.Errorf("best = %+v, want B at +150", best)
	}

	if BestQuote(nil) != nil {
		t.Error("empty list has no best quote")
	}
}
