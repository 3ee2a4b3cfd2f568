/**
 * @description
 * Per-sport configuration registry.
 * Maps a sport key to its display name, upstream API identifiers, and the
 * canonical team directory used for identity resolution.
 *
 * @notes
 * - Directories are built once at package init; resolution is read-only
 *   afterwards, so configs are safe to share across requests.
 */

package sports

// Config describes one supported sport
type Config struct {
	Key          string `json:"key"`
	DisplayName  string `json:"display_name"`
	KalshiSeries string `json:"kalshi_series"`
	OddsAPIKey   string `json:"odds_api_key"`
	ESPNSport    string `json:"espn_sport"`
	ESPNLeague   string `json:"espn_league"`

	directory *Directory
}

// Directory returns the sport's canonical team directory
func (c *Config) Directory() *Directory {
	return c.directory
}

var registry = map[string]*Config{
	"nfl": {
		Key:          "nfl",
		DisplayName:  "NFL",
		KalshiSeries: "KXNFLGAME",
		OddsAPIKey:   "americanfootball_nfl",
		ESPNSport:    "football",
		ESPNLeague:   "nfl",
		directory:    NewDirectory(nflTeams),
	},
	"nba": {
		Key:          "nba",
		DisplayName:  "NBA",
		KalshiSeries: "KXNBAGAME",
		OddsAPIKey:   "basketball_nba",
		ESPNSport:    "basketball",
		ESPNLeague:   "nba",
		directory:    NewDirectory(nbaTeams),
	},
	"nhl": {
		Key:          "nhl",
		DisplayName:  "NHL",
		KalshiSeries: "KXNHLGAME",
		OddsAPIKey:   "icehockey_nhl",
		ESPNSport:    "hockey",
		ESPNLeague:   "nhl",
		directory:    NewDirectory(nhlTeams),
	},
	"soccer": {
		Key:          "soccer",
		DisplayName:  "Soccer",
		KalshiSeries: "KXSOCCERGAME",
		OddsAPIKey:   "soccer_epl",
		ESPNSport:    "soccer",
		ESPNLeague:   "eng.1",
		directory:    NewDirectory(soccerTeams),
	},
}

// order of keys for listing endpoints (stable, not map iteration order)
var keys = []string{"nfl", "nba", "nhl", "soccer"}

// Get returns the config for a sport key, or nil if unsupported
func Get(key string) *Config {
	return registry[key]
}

// IsValid reports whether the sport key is supported
func IsValid(key string) bool {
	_, ok := registry[key]
	return ok
}

// All returns every supported sport config in a stable order
func All() []*Config {
	out := make([]*Config, 0, len(keys))
	for _, k := range keys {
		out = append(out, registry[k])
	}
	return out
}
