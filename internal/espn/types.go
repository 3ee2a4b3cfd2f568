/**
 * @description
 * Type definitions for the ESPN scoreboard API and the extracted game
 * result shape consumed by the post-hoc comparison service.
 */

package espn

// scoreboard wire types

type scoreboardResponse struct {
	Events []scoreboardEvent `json:"events"`
}

type scoreboardEvent struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Date         string        `json:"date"`
	Competitions []competition `json:"competitions"`
	Status       eventStatus   `json:"status"`
}

type competition struct {
	Competitors []competitor `json:"competitors"`
}

type competitor struct {
	ID       string   `json:"id"`
	HomeAway string   `json:"homeAway"`
	Score    string   `json:"score"`
	Winner   bool     `json:"winner"`
	Team     teamInfo `json:"team"`
}

type teamInfo struct {
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

type eventStatus struct {
	Type statusType `json:"type"`
}

type statusType struct {
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	State       string `json:"state"`
}

// extracted result types

// TeamResult is one side's final state in a completed (or live) game
type TeamResult struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Score        *int   `json:"score"`
	Winner       bool   `json:"winner"`
}

// GameStatus reports whether a game has finished
type GameStatus struct {
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	State       string `json:"state"`
}

// GameResult is the extracted outcome of one real-world game.
// Winner is "home", "away", or "" while undecided.
type GameResult struct {
	GameID    string      `json:"game_id"`
	Name      string      `json:"name"`
	ShortName string      `json:"short_name"`
	Date      string      `json:"date"`
	Status    GameStatus  `json:"status"`
	HomeTeam  *TeamResult `json:"home_team"`
	AwayTeam  *TeamResult `json:"away_team"`
	Winner    string      `json:"winner"`
}
