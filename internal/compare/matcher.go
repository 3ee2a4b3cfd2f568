/**
 * @description
 * Cross-source matcher.
 * Pairs a reconciled event's away/home teams with the sportsbook feed's
 * independently-named games, then folds per-bookmaker moneyline prices into
 * consensus probabilities per side.
 *
 * @dependencies
 * - backend/internal/oddsfeed: sportsbook game shape
 * - backend/internal/oddsmath: American odds conversion
 * - backend/internal/sports: canonical resolution and key normalization
 *
 * @notes
 * - Pure: operates only on already-fetched data. Any missing or malformed
 *   bookmaker block is skipped, never fatal.
 */

package compare

import (
	"strings"

	"github.com/oddslens/backend/internal/oddsfeed"
	"github.com/oddslens/backend/internal/oddsmath"
	"github.com/oddslens/backend/internal/sports"
)

// Quote is one bookmaker's moneyline price with its implied probability
type Quote struct {
	Bookmaker          string  `json:"bookmaker"`
	Odds               int     `json:"odds"`
	ImpliedProbability float64 `json:"implied_probability"`
}

// GameOdds holds every collected quote for a matched game, per side
type GameOdds struct {
	Away []Quote `json:"away_team"`
	Home []Quote `json:"home_team"`
}

// SideConsensus is the convert-then-average probability across books for
// one side. Nil when no book quoted that side.
type SideConsensus struct {
	AverageProbability *float64 `json:"average_probability"`
	NumBookmakers      int      `json:"num_bookmakers"`
}

// Consensus pairs both sides' averages for a matched game
type Consensus struct {
	Away SideConsensus `json:"away_team"`
	Home SideConsensus `json:"home_team"`
}

// Matcher matches team identities across sources for one sport
type Matcher struct {
	dir *sports.Directory
}

// NewMatcher creates a matcher bound to a sport's team directory
func NewMatcher(dir *sports.Directory) *Matcher {
	return &Matcher{dir: dir}
}

// normalizeKey reduces a free-text team name to a comparable key, via
// directory resolution when possible and the last-token heuristic otherwise.
func (m *Matcher) normalizeKey(name string) string {
	if resolved := m.dir.Resolve(name); resolved != "" {
		return sports.NormalizeKey(resolved)
	}
	return sports.NormalizeKey(name)
}

// FindGame returns the first sportsbook game referring to the same
// real-world matchup, in source order. Ambiguity is not scored; the first
// hit wins. Nil when nothing matches.
func (m *Matcher) FindGame(awayTeam, homeTeam string, games []oddsfeed.Game) *oddsfeed.Game {
	awayKey := m.normalizeKey(awayTeam)
	homeKey := m.normalizeKey(homeTeam)

	for i := range games {
		game := &games[i]
		gameAway := m.normalizeKey(game.AwayTeam)
		gameHome := m.normalizeKey(game.HomeTeam)

		if strings.Contains(awayKey, gameAway) && strings.Contains(homeKey, gameHome) {
			return game
		}
	}

	return nil
}

// CollectQuotes gathers every bookmaker's moneyline price for both sides of
// a matched game. Books without a moneyline market, or with outcomes that
// match neither team, are skipped.
func (m *Matcher) CollectQuotes(game *oddsfeed.Game) GameOdds {
	var odds GameOdds
	if game == nil {
		return odds
	}

	awayKey := m.normalizeKey(game.AwayTeam)
	homeKey := m.normalizeKey(game.HomeTeam)

	for _, book := range game.Bookmakers {
		name := book.Title
		if name == "" {
			name = book.Key
		}

		for _, market := range book.Markets {
			if market.Key != oddsfeed.MoneylineMarket {
				continue
			}
			for _, outcome := range market.Outcomes {
				if outcome.Price == 0 {
					continue
				}
				quote := Quote{
					Bookmaker:          name,
					Odds:               outcome.Price,
					ImpliedProbability: oddsmath.AmericanToProbability(outcome.Price),
				}
				switch m.normalizeKey(outcome.Name) {
				case awayKey:
					odds.Away = append(odds.Away, quote)
				case homeKey:
					odds.Home = append(odds.Home, quote)
				}
			}
		}
	}

	return odds
}

// ComputeConsensus averages already-converted probabilities per side.
// Convert-then-average: the mean of implied probabilities, never the
// probability of the mean odds.
func ComputeConsensus(odds GameOdds) Consensus {
	return Consensus{
		Away: sideConsensus(odds.Away),
		Home: sideConsensus(odds.Home),
	}
}

func sideConsensus(quotes []Quote) SideConsensus {
	if len(quotes) == 0 {
		return SideConsensus{}
	}

	sum := 0.0
	for _, q := range quotes {
		sum += q.ImpliedProbability
	}
	avg := sum / float64(len(quotes))

	return SideConsensus{
		AverageProbability: &avg,
		NumBookmakers:      len(quotes),
	}
}

// BestQuote returns the single best price in a side's quote list: the
// numerically greatest odds (least-negative for a favorite, most-positive
// for an underdog), with its bookmaker attached. Nil for an empty list.
func BestQuote(quotes []Quote) *Quote {
	var best *Quote
	for i := range quotes {
		if best == nil || quotes[i].Odds > best.Odds {
			best = &quotes[i]
		}
	}
	return best
}
