/**
 * @description
 * Canonical team rosters per sport.
 * Each entry maps one canonical display name to a short code and the textual
 * variations (city, nickname, alternate codes) used only for matching.
 */

package sports

// Team is one entry in a sport's closed enumeration of canonical teams.
type Team struct {
	Name       string
	Abbr       string
	Variations []string
}

var nflTeams = []Team{
	{Name: "Arizona Cardinals", Abbr: "ARI", Variations: []string{"Arizona", "Cardinals"}},
	{Name: "Atlanta Falcons", Abbr: "ATL", Variations: []string{"Atlanta", "Falcons"}},
	{Name: "Baltimore Ravens", Abbr: "BAL", Variations: []string{"Baltimore", "Ravens"}},
	{Name: "Buffalo Bills", Abbr: "BUF", Variations: []string{"Buffalo", "Bills"}},
	{Name: "Carolina Panthers", Abbr: "CAR", Variations: []string{"Carolina", "Panthers"}},
	{Name: "Chicago Bears", Abbr: "CHI", Variations: []string{"Chicago", "Bears"}},
	{Name: "Cincinnati Bengals", Abbr: "CIN", Variations: []string{"Cincinnati", "Bengals"}},
	{Name: "Cleveland Browns", Abbr: "CLE", Variations: []string{"Cleveland", "Browns"}},
	{Name: "Dallas Cowboys", Abbr: "DAL", Variations: []string{"Dallas", "Cowboys"}},
	{Name: "Denver Broncos", Abbr: "DEN", Variations: []string{"Denver", "Broncos"}},
	{Name: "Detroit Lions", Abbr: "DET", Variations: []string{"Detroit", "Lions"}},
	{Name: "Green Bay Packers", Abbr: "GB", Variations: []string{"Green Bay", "Packers", "GNB"}},
	{Name: "Houston Texans", Abbr: "HOU", Variations: []string{"Houston", "Texans"}},
	{Name: "Indianapolis Colts", Abbr: "IND", Variations: []string{"Indianapolis", "Colts"}},
	{Name: "Jacksonville Jaguars", Abbr: "JAX", Variations: []string{"Jacksonville", "Jaguars", "JAC"}},
	{Name: "Kansas City Chiefs", Abbr: "KC", Variations: []string{"Kansas City", "Chiefs", "KAN"}},
	{Name: "Las Vegas Raiders", Abbr: "LV", Variations: []string{"Las Vegas", "Raiders", "Oakland", "LVR"}},
	{Name: "Los Angeles Chargers", Abbr: "LAC", Variations: []string{"Los Angeles Chargers", "LA Chargers", "Chargers"}},
	{Name: "Los Angeles Rams", Abbr: "LAR", Variations: []string{"Los Angeles Rams", "LA Rams", "Rams"}},
	{Name: "Miami Dolphins", Abbr: "MIA", Variations: []string{"Miami", "Dolphins"}},
	{Name: "Minnesota Vikings", Abbr: "MIN", Variations: []string{"Minnesota", "Vikings"}},
	{Name: "New England Patriots", Abbr: "NE", Variations: []string{"New England", "Patriots", "NWE"}},
	{Name: "New Orleans Saints", Abbr: "NO", Variations: []string{"New Orleans", "Saints", "NOR"}},
	{Name: "New York Giants", Abbr: "NYG", Variations: []string{"New York Giants", "NY Giants", "Giants"}},
	{Name: "New York Jets", Abbr: "NYJ", Variations: []string{"New York Jets", "NY Jets", "Jets"}},
	{Name: "Philadelphia Eagles", Abbr: "PHI", Variations: []string{"Philadelphia", "Eagles"}},
	{Name: "Pittsburgh Steelers", Abbr: "PIT", Variations: []string{"Pittsburgh", "Steelers"}},
	{Name: "San Francisco 49ers", Abbr: "SF", Variations: []string{"San Francisco", "49ers", "SFO"}},
	{Name: "Seattle Seahawks", Abbr: "SEA", Variations: []string{"Seattle", "Seahawks"}},
	{Name: "Tampa Bay Buccaneers", Abbr: "TB", Variations: []string{"Tampa Bay", "Buccaneers", "TAM"}},
	{Name: "Tennessee Titans", Abbr: "TEN", Variations: []string{"Tennessee", "Titans"}},
	{Name: "Washington Commanders", Abbr: "WAS", Variations: []string{"Washington", "Commanders", "Washington Football Team"}},
}

var nbaTeams = []Team{
	{Name: "Atlanta Hawks", Abbr: "ATL", Variations: []string{"Atlanta", "Hawks"}},
	{Name: "Boston Celtics", Abbr: "BOS", Variations: []string{"Boston", "Celtics"}},
	{Name: "Brooklyn Nets", Abbr: "BKN", Variations: []string{"Brooklyn", "Nets"}},
	{Name: "Charlotte Hornets", Abbr: "CHA", Variations: []string{"Charlotte", "Hornets"}},
	{Name: "Chicago Bulls", Abbr: "CHI", Variations: []string{"Chicago", "Bulls"}},
	{Name: "Cleveland Cavaliers", Abbr: "CLE", Variations: []string{"Cleveland", "Cavaliers", "Cavs"}},
	{Name: "Dallas Mavericks", Abbr: "DAL", Variations: []string{"Dallas", "Mavericks", "Mavs"}},
	{Name: "Denver Nuggets", Abbr: "DEN", Variations: []string{"Denver", "Nuggets"}},
	{Name: "Detroit Pistons", Abbr: "DET", Variations: []string{"Detroit", "Pistons"}},
	{Name: "Golden State Warriors", Abbr: "GSW", Variations: []string{"Golden State", "Warriors", "GS"}},
	{Name: "Houston Rockets", Abbr: "HOU", Variations: []string{"Houston", "Rockets"}},
	{Name: "Indiana Pacers", Abbr: "IND", Variations: []string{"Indiana", "Pacers"}},
	{Name: "Los Angeles Clippers", Abbr: "LAC", Variations: []string{"Los Angeles Clippers", "LA Clippers", "Clippers"}},
	{Name: "Los Angeles Lakers", Abbr: "LAL", Variations: []string{"Los Angeles Lakers", "LA Lakers", "Lakers"}},
	{Name: "Memphis Grizzlies", Abbr: "MEM", Variations: []string{"Memphis", "Grizzlies"}},
	{Name: "Miami Heat", Abbr: "MIA", Variations: []string{"Miami", "Heat"}},
	{Name: "Milwaukee Bucks", Abbr: "MIL", Variations: []string{"Milwaukee", "Bucks"}},
	{Name: "Minnesota Timberwolves", Abbr: "MIN", Variations: []string{"Minnesota", "Timberwolves", "Wolves"}},
	{Name: "New Orleans Pelicans", Abbr: "NOP", Variations: []string{"New Orleans", "Pelicans", "NO"}},
	{Name: "New York Knicks", Abbr: "NYK", Variations: []string{"New York Knicks", "NY Knicks", "Knicks"}},
	{Name: "Oklahoma City Thunder", Abbr: "OKC", Variations: []string{"Oklahoma City", "Thunder"}},
	{Name: "Orlando Magic", Abbr: "ORL", Variations: []string{"Orlando", "Magic"}},
	{Name: "Philadelphia 76ers", Abbr: "PHI", Variations: []string{"Philadelphia", "76ers", "Sixers"}},
	{Name: "Phoenix Suns", Abbr: "PHX", Variations: []string{"Phoenix", "Suns"}},
	{Name: "Portland Trail Blazers", Abbr: "POR", Variations: []string{"Portland", "Trail Blazers", "Blazers"}},
	{Name: "Sacramento Kings", Abbr: "SAC", Variations: []string{"Sacramento", "Kings"}},
	{Name: "San Antonio Spurs", Abbr: "SAS", Variations: []string{"San Antonio", "Spurs"}},
	{Name: "Toronto Raptors", Abbr: "TOR", Variations: []string{"Toronto", "Raptors"}},
	{Name: "Utah Jazz", Abbr: "UTA", Variations: []string{"Utah", "Jazz"}},
	{Name: "Washington Wizards", Abbr: "WAS", Variations: []string{"Washington", "Wizards"}},
}

var nhlTeams = []Team{
	{Name: "Anaheim Ducks", Abbr: "ANA", Variations: []string{"Anaheim", "Ducks"}},
	{Name: "Arizona Coyotes", Abbr: "ARI", Variations: []string{"Arizona", "Coyotes"}},
	{Name: "Boston Bruins", Abbr: "BOS", Variations: []string{"Boston", "Bruins"}},
	{Name: "Buffalo Sabres", Abbr: "BUF", Variations: []string{"Buffalo", "Sabres"}},
	{Name: "Calgary Flames", Abbr: "CGY", Variations: []string{"Calgary", "Flames"}},
	{Name: "Carolina Hurricanes", Abbr: "CAR", Variations: []string{"Carolina", "Hurricanes", "Canes"}},
	{Name: "Chicago Blackhawks", Abbr: "CHI", Variations: []string{"Chicago", "Blackhawks"}},
	{Name: "Colorado Avalanche", Abbr: "COL", Variations: []string{"Colorado", "Avalanche", "Avs"}},
	{Name: "Columbus Blue Jackets", Abbr: "CBJ", Variations: []string{"Columbus", "Blue Jackets"}},
	{Name: "Dallas Stars", Abbr: "DAL", Variations: []string{"Dallas", "Stars"}},
	{Name: "Detroit Red Wings", Abbr: "DET", Variations: []string{"Detroit", "Red Wings"}},
	{Name: "Edmonton Oilers", Abbr: "EDM", Variations: []string{"Edmonton", "Oilers"}},
	{Name: "Florida Panthers", Abbr: "FLA", Variations: []string{"Florida", "Panthers"}},
	{Name: "Los Angeles Kings", Abbr: "LAK", Variations: []string{"Los Angeles Kings", "LA Kings", "Kings"}},
	{Name: "Minnesota Wild", Abbr: "MIN", Variations: []string{"Minnesota", "Wild"}},
	{Name: "Montreal Canadiens", Abbr: "MTL", Variations: []string{"Montreal", "Canadiens", "Habs"}},
	{Name: "Nashville Predators", Abbr: "NSH", Variations: []string{"Nashville", "Predators", "Preds"}},
	{Name: "New Jersey Devils", Abbr: "NJD", Variations: []string{"New Jersey", "Devils", "NJ"}},
	{Name: "New York Islanders", Abbr: "NYI", Variations: []string{"New York Islanders", "NY Islanders", "Islanders"}},
	{Name: "New York Rangers", Abbr: "NYR", Variations: []string{"New York Rangers", "NY Rangers", "Rangers"}},
	{Name: "Ottawa Senators", Abbr: "OTT", Variations: []string{"Ottawa", "Senators", "Sens"}},
	{Name: "Philadelphia Flyers", Abbr: "PHI", Variations: []string{"Philadelphia", "Flyers"}},
	{Name: "Pittsburgh Penguins", Abbr: "PIT", Variations: []string{"Pittsburgh", "Penguins", "Pens"}},
	{Name: "San Jose Sharks", Abbr: "SJS", Variations: []string{"San Jose", "Sharks", "SJ"}},
	{Name: "Seattle Kraken", Abbr: "SEA", Variations: []string{"Seattle", "Kraken"}},
	{Name: "St. Louis Blues", Abbr: "STL", Variations: []string{"St. Louis", "St Louis", "Blues"}},
	{Name: "Tampa Bay Lightning", Abbr: "TBL", Variations: []string{"Tampa Bay", "Lightning", "TB"}},
	{Name: "Toronto Maple Leafs", Abbr: "TOR", Variations: []string{"Toronto", "Maple Leafs", "Leafs"}},
	{Name: "Vancouver Canucks", Abbr: "VAN", Variations: []string{"Vancouver", "Canucks"}},
	{Name: "Vegas Golden Knights", Abbr: "VGK", Variations: []string{"Vegas", "Golden Knights", "Knights"}},
	{Name: "Washington Capitals", Abbr: "WSH", Variations: []string{"Washington", "Capitals", "Caps"}},
	{Name: "Winnipeg Jets", Abbr: "WPG", Variations: []string{"Winnipeg", "Jets"}},
}

var soccerTeams = []Team{
	{Name: "Arsenal", Abbr: "ARS", Variations: []string{"Arsenal"}},
	{Name: "Aston Villa", Abbr: "AVL", Variations: []string{"Aston Villa", "Villa"}},
	{Name: "Bournemouth", Abbr: "BOU", Variations: []string{"Bournemouth", "AFC Bournemouth"}},
	{Name: "Brentford", Abbr: "BRE", Variations: []string{"Brentford"}},
	{Name: "Brighton", Abbr: "BHA", Variations: []string{"Brighton", "Brighton & Hove Albion"}},
	{Name: "Chelsea", Abbr: "CHE", Variations: []string{"Chelsea"}},
	{Name: "Crystal Palace", Abbr: "CRY", Variations: []string{"Crystal Palace", "Palace"}},
	{Name: "Everton", Abbr: "EVE", Variations: []string{"Everton"}},
	{Name: "Fulham", Abbr: "FUL", Variations: []string{"Fulham"}},
	{Name: "Ipswich Town", Abbr: "IPS", Variations: []string{"Ipswich", "Ipswich Town"}},
	{Name: "Leicester City", Abbr: "LEI", Variations: []string{"Leicester", "Leicester City"}},
	{Name: "Liverpool", Abbr: "LIV", Variations: []string{"Liverpool"}},
	{Name: "Manchester City", Abbr: "MCI", Variations: []string{"Manchester City", "Man City"}},
	{Name: "Manchester United", Abbr: "MUN", Variations: []string{"Manchester United", "Man United", "Man Utd"}},
	{Name: "Newcastle", Abbr: "NEW", Variations: []string{"Newcastle", "Newcastle United"}},
	{Name: "Nottingham Forest", Abbr: "NFO", Variations: []string{"Nottingham Forest", "Forest"}},
	{Name: "Southampton", Abbr: "SOU", Variations: []string{"Southampton"}},
	{Name: "Tottenham", Abbr: "TOT", Variations: []string{"Tottenham", "Tottenham Hotspur", "Spurs"}},
	{Name: "West Ham", Abbr: "WHU", Variations: []string{"West Ham", "West Ham United"}},
	{Name: "Wolverhampton", Abbr: "WOL", Variations: []string{"Wolverhampton", "Wolves", "Wolverhampton Wanderers"}},
}
