/**
 * @description
 * Event reconciliation engine.
 * Groups raw contract listings by event ticker, resolves home/away team
 * identity, selects one canonical winner contract per event, and derives
 * complement NO pricing from the opposite side.
 *
 * @dependencies
 * - backend/internal/kalshi: raw contract wire type
 * - backend/internal/oddsmath: cents/probability conversions
 * - backend/internal/sports: canonical team directory
 *
 * @notes
 * - Pure and synchronous: no I/O, no shared state. Every step has a defined
 *   fallback, so malformed input degrades to a partially-empty record
 *   instead of an error.
 */

package reconcile

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/oddslens/backend/internal/kalshi"
	"github.com/oddslens/backend/internal/oddsmath"
	"github.com/oddslens/backend/internal/sports"
)

var (
	teamCodeRe     = regexp.MustCompile(`[A-Z]{2,3}`)
	matchupRe      = regexp.MustCompile(`(?i)(.+?)\s+at\s+(.+)`)
	tickerSuffixRe = regexp.MustCompile(`-([A-Z]{2,3})$`)
)

// Engine reconciles raw contracts into EventRecords for one sport.
// Sport specifics (the team directory) are injected, so one engine
// implementation covers every configured sport.
type Engine struct {
	dir *sports.Directory
}

// NewEngine creates an engine bound to a sport's team directory
func NewEngine(dir *sports.Directory) *Engine {
	return &Engine{dir: dir}
}

// Reconcile turns an unordered list of raw contracts into event records
// sorted ascending by close time, nulls last.
func (e *Engine) Reconcile(markets []kalshi.Market) []EventRecord {
	groups, order := groupByEvent(markets)

	records := make([]EventRecord, 0, len(order))
	for _, eventTicker := range order {
		records = append(records, e.combineEvent(eventTicker, groups[eventTicker]))
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].CloseDT, records[j].CloseDT
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})

	return records
}

// groupByEvent partitions contracts by event ticker. Contracts without one
// land in the UnknownEvent bucket. Returned order is first appearance, so a
// run is deterministic for a given input order.
func groupByEvent(markets []kalshi.Market) (map[string][]kalshi.Market, []string) {
	groups := make(map[string][]kalshi.Market)
	var order []string

	for _, m := range markets {
		key := m.EventTicker
		if key == "" {
			key = UnknownEvent
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], m)
	}

	return groups, order
}

// normalize converts a raw market into the engine's contract shape
func normalize(m kalshi.Market) Contract {
	return Contract{
		Ticker:       m.Ticker,
		EventTicker:  m.EventTicker,
		SeriesTicker: m.SeriesTicker,
		MarketType:   m.MarketType,
		Title:        m.Title,
		Subtitle:     m.Subtitle,
		CloseTime:    m.CloseTime,
		CloseDT:      parseCloseTime(m.CloseTime),
		YesBid:       oddsmath.CentsToProbability(m.YesBid),
		YesAsk:       oddsmath.CentsToProbability(m.YesAsk),
		OpenInterest: m.OpenInterest,
		Volume24h:    m.Volume24h,
	}
}

func parseCloseTime(ts string) *time.Time {
	if ts == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return nil
	}
	return &t
}

// combineEvent builds one EventRecord with a single primary winner contract
// (home side preferred). The NO side is computed from the opposite team's
// contract when available.
func (e *Engine) combineEvent(eventTicker string, markets []kalshi.Market) EventRecord {
	contracts := make([]Contract, 0, len(markets))
	for _, m := range markets {
		contracts = append(contracts, normalize(m))
	}

	awayName, homeName, pretty := e.resolveIdentity(eventTicker, contracts)

	var awayWin, homeWin *Contract
	for i := range contracts {
		c := &contracts[i]
		if !strings.Contains(strings.ToLower(c.Title), "winner") {
			continue
		}
		subject := e.subjectFromTickerSuffix(c.Ticker)
		if subject == "" {
			subject = subjectFromText(c.Title, c.Subtitle, awayName, homeName)
		}
		switch subject {
		case awayName:
			awayWin = c
		case homeName:
			homeWin = c
		}
	}

	// choose primary (home preferred), keep secondary for complements
	primary := homeWin
	if primary == nil {
		primary = awayWin
	}
	var secondary *Contract
	if primary == homeWin {
		secondary = awayWin
	} else {
		secondary = homeWin
	}

	subjectTeam := homeName
	if primary != nil && primary == awayWin {
		subjectTeam = awayName
	}

	var yesBid, yesAsk *float64
	ticker := ""
	if primary != nil {
		yesBid = primary.YesBid
		yesAsk = primary.YesAsk
		ticker = primary.Ticker
	}

	// Best-effort NO price: the opposite team's quote first, own complement
	// as fallback.
	var noBid, noAsk *float64
	if secondary != nil && secondary.YesAsk != nil {
		noBid = oddsmath.Complement(secondary.YesAsk)
	} else {
		noBid = oddsmath.Complement(yesAsk)
	}
	if secondary != nil && secondary.YesBid != nil {
		noAsk = oddsmath.Complement(secondary.YesBid)
	} else {
		noAsk = oddsmath.Complement(yesBid)
	}

	var closeDT *time.Time
	var oiSum, volSum int64
	for i := range contracts {
		if dt := contracts[i].CloseDT; dt != nil {
			if closeDT == nil || dt.Before(*closeDT) {
				closeDT = dt
			}
		}
		oiSum += contracts[i].OpenInterest
		volSum += contracts[i].Volume24h
	}

	return EventRecord{
		EventTicker:     eventTicker,
		PrettyEvent:     pretty,
		AwayTeam:        awayName,
		HomeTeam:        homeName,
		CloseDT:         closeDT,
		OpenInterestSum: oiSum,
		Volume24hSum:    volSum,
		WinnerPrimary: WinnerPrimary{
			Label:       fmt.Sprintf("%s - Winner?", subjectTeam),
			SubjectTeam: subjectTeam,
			YesBid:      yesBid,
			YesAsk:      yesAsk,
			NoBid:       noBid,
			NoAsk:       noAsk,
			Ticker:      ticker,
		},
		AllContracts: contracts,
	}
}

// resolveIdentity attempts, in order: team codes embedded in the event
// ticker, an "X at Y" pattern in contract text, then literal placeholders.
func (e *Engine) resolveIdentity(eventTicker string, contracts []Contract) (away, home, pretty string) {
	if a, h, ok := e.decodeEventTicker(eventTicker); ok {
		return a, h, fmt.Sprintf("%s at %s", a, h)
	}

	if a, h, p, ok := e.extractFromText(contracts); ok {
		return a, h, p
	}

	pretty = "Unknown matchup"
	if len(contracts) > 0 && contracts[0].Title != "" {
		pretty = contracts[0].Title
	} else if eventTicker != "" && eventTicker != UnknownEvent {
		pretty = eventTicker
	}
	return "Away", "Home", pretty
}

// decodeEventTicker scans the ticker for recognized team codes; the last two
// recognized codes are away then home.
func (e *Engine) decodeEventTicker(eventTicker string) (away, home string, ok bool) {
	if eventTicker == "" || eventTicker == UnknownEvent {
		return "", "", false
	}

	codes := teamCodeRe.FindAllString(strings.ToUpper(eventTicker), -1)
	var valid []string
	for _, code := range codes {
		if name, found := e.dir.AbbrName(code); found {
			valid = append(valid, name)
		}
	}
	if len(valid) < 2 {
		return "", "", false
	}
	return valid[len(valid)-2], valid[len(valid)-1], true
}

// extractFromText looks for an "X at Y" matchup in any contract's title head
// and subtitle, resolving both sides through the directory.
func (e *Engine) extractFromText(contracts []Contract) (away, home, pretty string, ok bool) {
	for _, c := range contracts {
		head, _, _ := strings.Cut(c.Title, ":")
		text := head + " " + c.Subtitle

		m := matchupRe.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		awayRaw, homeRaw := m[1], m[2]
		away = e.dir.Resolve(awayRaw)
		if away == "" {
			away = strings.TrimSpace(awayRaw)
		}
		home = e.dir.Resolve(homeRaw)
		if home == "" {
			home = strings.TrimSpace(homeRaw)
		}
		return away, home, fmt.Sprintf("%s at %s", away, home), true
	}
	return "", "", "", false
}

// subjectFromTickerSuffix resolves which team a contract's YES side refers
// to from a trailing team code in the contract ticker.
func (e *Engine) subjectFromTickerSuffix(ticker string) string {
	if ticker == "" {
		return ""
	}
	m := tickerSuffixRe.FindStringSubmatch(strings.ToUpper(ticker))
	if m == nil {
		return ""
	}
	name, _ := e.dir.AbbrName(m[1])
	return name
}

// subjectFromText scores token overlap between the contract text and each
// resolved team name. The team whose words appear more often wins; any tie,
// zero overlap or not, is unresolved rather than a guess.
func subjectFromText(title, subtitle, awayName, homeName string) string {
	text := strings.ToLower(strings.TrimSpace(title + " " + subtitle))

	score := func(team string) int {
		n := 0
		for _, tok := range strings.Fields(strings.ToLower(team)) {
			if tok != "" && strings.Contains(text, tok) {
				n++
			}
		}
		return n
	}

	awayScore := score(awayName)
	homeScore := score(homeName)

	switch {
	case awayScore > homeScore:
		return awayName
	case homeScore > awayScore:
		return homeName
	default:
		return ""
	}
}
