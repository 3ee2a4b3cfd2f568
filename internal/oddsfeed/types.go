/**
 * @description
 * Type definitions for the sportsbook odds API responses.
 * One Game carries moneyline prices from many bookmakers; each bookmaker
 * exposes markets of named outcomes with signed American odds.
 */

package oddsfeed

// Game is one sportsbook event with odds from every covered bookmaker
type Game struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	CommenceTime string      `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one book's quoted markets for a game
type Bookmaker struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	LastUpdate string   `json:"last_update"`
	Markets    []Market `json:"markets"`
}

// Market is one quoted market ("h2h" is the moneyline)
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is a named side with its American-odds price
type Outcome struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

// MoneylineMarket is the market key for head-to-head winner prices
const MoneylineMarket = "h2h"
