/**
 * @description
 * Canonical team identity resolution.
 * A Directory is a two-tier resolver: a precomputed exact lookup built from
 * abbreviations, canonical names, and known variations, with an on-demand
 * similarity fallback for unseen strings.
 *
 * @dependencies
 * - github.com/agnivade/levenshtein: edit distance for the fuzzy tier
 *
 * @notes
 * - Resolution order is strict: abbreviation, exact name/variation,
 *   city/nickname containment, then fuzzy. Ties in the fuzzy tier resolve to
 *   the first canonical name in enumeration order, never randomly.
 */

package sports

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// fuzzyCutoff is the minimum similarity ratio (inclusive) accepted by the
// fuzzy tier, on a 0-1 scale.
const fuzzyCutoff = 0.6

type fuzzyCandidate struct {
	text string // lowercased name or variation
	name string // canonical name it resolves to
}

// Directory resolves free-text team references to canonical team names for
// one sport. Many-to-one: variations map to canonical names, never back.
type Directory struct {
	teams   []Team
	byAbbr  map[string]string
	exact   map[string]string
	fuzzies []fuzzyCandidate
}

// NewDirectory builds a Directory from a sport's closed team enumeration.
// The team slice order is the enumeration order used for tie-breaking.
func NewDirectory(teams []Team) *Directory {
	d := &Directory{
		teams:  teams,
		byAbbr: make(map[string]string, len(teams)),
		exact:  make(map[string]string, len(teams)*4),
	}

	addExact := func(key, name string) {
		k := strings.ToLower(key)
		if _, taken := d.exact[k]; !taken {
			d.exact[k] = name
		}
	}

	for _, team := range teams {
		if _, taken := d.byAbbr[strings.ToLower(team.Abbr)]; !taken {
			d.byAbbr[strings.ToLower(team.Abbr)] = team.Name
		}
		addExact(team.Name, team.Name)
		addExact(team.Abbr, team.Name)
		for _, v := range team.Variations {
			addExact(v, team.Name)
		}

		d.fuzzies = append(d.fuzzies, fuzzyCandidate{text: strings.ToLower(team.Name), name: team.Name})
		for _, v := range team.Variations {
			d.fuzzies = append(d.fuzzies, fuzzyCandidate{text: strings.ToLower(v), name: team.Name})
		}
	}

	return d
}

// Resolve maps a free-text candidate to a canonical team name.
// Returns "" when nothing matches confidently enough.
func (d *Directory) Resolve(candidate string) string {
	raw := strings.TrimSpace(candidate)
	if raw == "" {
		return ""
	}
	t := strings.ToLower(raw)

	// 1. Exact abbreviation
	if name, ok := d.byAbbr[t]; ok {
		return name
	}

	// 2a. Exact canonical name or known variation
	if name, ok := d.exact[t]; ok {
		return name
	}

	// 2b. City/nickname containment. The nickname is the final token; the
	// city is everything before it, so "New England" stays one unit.
	for _, team := range d.teams {
		idx := strings.LastIndex(team.Name, " ")
		if idx < 0 {
			continue
		}
		cityL := strings.ToLower(team.Name[:idx])
		nickL := strings.ToLower(team.Name[idx+1:])
		if strings.Contains(t, cityL) || strings.Contains(t, nickL) {
			return team.Name
		}
		// Reverse containment only for candidates long enough to be meaningful
		if len(t) >= 4 && (strings.Contains(cityL, t) || strings.Contains(nickL, t)) {
			return team.Name
		}
	}

	// 3. Fuzzy similarity over names and variations; first-wins on ties
	best := ""
	bestScore := 0.0
	for _, cand := range d.fuzzies {
		score := similarity(t, cand.text)
		if score > bestScore {
			bestScore = score
			best = cand.name
		}
	}
	if bestScore >= fuzzyCutoff {
		return best
	}

	return ""
}

// AbbrName maps a team code to its canonical name
func (d *Directory) AbbrName(abbr string) (string, bool) {
	name, ok := d.byAbbr[strings.ToLower(abbr)]
	return name, ok
}

// Teams returns the directory's enumeration in order
func (d *Directory) Teams() []Team {
	return d.teams
}

// similarity is a normalized edit-distance ratio in [0,1]
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// NormalizeKey reduces a team name to a matching key: the final
// whitespace-delimited token of a multi-word name ("Las Vegas Raiders" ->
// "raiders"), or the whole name lowercased.
func NormalizeKey(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	words := strings.Fields(n)
	if len(words) > 1 {
		return words[len(words)-1]
	}
	return n
}
