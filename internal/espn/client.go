/**
 * @description
 * HTTP Client for ESPN's public scoreboard API.
 * Looks up historical game results by matchup and date; used only for
 * post-hoc comparison of market probabilities against actual outcomes.
 *
 * @dependencies
 * - net/http
 * - encoding/json
 * - backend/internal/config
 */

package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oddslens/backend/internal/config"
)

const (
	DefaultTimeout = 10 * time.Second

	userAgent = "Mozilla/5.0 (compatible; OddsLens/1.0)"
)

// dayOffsets is the search window around the expected game date, nearest
// first.
var dayOffsets = []int{0, -1, 1, -2, 2}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL: cfg.ESPN.BaseURL,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// GetScoreboard fetches the scoreboard for a sport/league on a date
// (YYYYMMDD). An empty date returns current games.
func (c *Client) GetScoreboard(ctx context.Context, sportPath, leaguePath, date string) ([]GameResult, error) {
	u, err := url.Parse(fmt.Sprintf("%s/%s/%s/scoreboard", c.BaseURL, sportPath, leaguePath))
	if err != nil {
		return nil, err
	}

	if date != "" {
		q := u.Query()
		q.Set("dates", date)
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("espn api error: status %d", resp.StatusCode)
	}

	var sb scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&sb); err != nil {
		return nil, err
	}

	results := make([]GameResult, 0, len(sb.Events))
	for _, event := range sb.Events {
		results = append(results, extractResult(event))
	}
	return results, nil
}

// FindGameByTeams searches the scoreboard around gameDate for a matchup.
// Returns nil when no game near the date pairs those teams.
func (c *Client) FindGameByTeams(ctx context.Context, sportPath, leaguePath, awayTeam, homeTeam string, gameDate time.Time) (*GameResult, error) {
	for _, offset := range dayOffsets {
		date := gameDate.AddDate(0, 0, offset).Format("20060102")

		results, err := c.GetScoreboard(ctx, sportPath, leaguePath, date)
		if err != nil {
			// Keep scanning neighboring dates; one bad day shouldn't end the search
			continue
		}

		for i := range results {
			r := &results[i]
			if r.AwayTeam == nil || r.HomeTeam == nil {
				continue
			}
			if teamNamesMatch(r.AwayTeam.Name, awayTeam) && teamNamesMatch(r.HomeTeam.Name, homeTeam) {
				return r, nil
			}
		}
	}

	return nil, nil
}

// teamNamesMatch compares an ESPN display name against a canonical name:
// exact, substring either way, or same final token (the nickname).
func teamNamesMatch(espnName, canonicalName string) bool {
	a := strings.ToLower(espnName)
	b := strings.ToLower(canonicalName)

	if a == b {
		return true
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}

	aParts := strings.Fields(a)
	bParts := strings.Fields(b)
	if len(aParts) > 0 && len(bParts) > 0 && aParts[len(aParts)-1] == bParts[len(bParts)-1] {
		return true
	}

	return false
}

// extractResult reduces a scoreboard event to the fields comparison needs
func extractResult(event scoreboardEvent) GameResult {
	result := GameResult{
		GameID:    event.ID,
		Name:      event.Name,
		ShortName: event.ShortName,
		Date:      event.Date,
		Status: GameStatus{
			Completed:   event.Status.Type.Completed,
			Description: event.Status.Type.Description,
			State:       event.Status.Type.State,
		},
	}

	if len(event.Competitions) == 0 {
		return result
	}

	for _, comp := range event.Competitions[0].Competitors {
		team := &TeamResult{
			ID:           comp.ID,
			Name:         comp.Team.DisplayName,
			Abbreviation: comp.Team.Abbreviation,
			Winner:       comp.Winner,
		}
		if comp.Score != "" {
			if score, err := strconv.Atoi(comp.Score); err == nil {
				team.Score = &score
			}
		}

		if comp.HomeAway == "home" {
			result.HomeTeam = team
		} else {
			result.AwayTeam = team
		}
	}

	if result.Status.Completed && result.HomeTeam != nil && result.AwayTeam != nil {
		if result.HomeTeam.Winner {
			result.Winner = "home"
		} else if result.AwayTeam.Winner {
			result.Winner = "away"
		}
	}

	return result
}
