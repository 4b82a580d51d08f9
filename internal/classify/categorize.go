package classify

import "strings"

// CategoryOther - fallback label for merchants no keyword list claims
const CategoryOther = "Øvrige"

// categoryKeywords drives Categorize. Order matters: the first group
// with a hit wins, so the more specific groups sit on top.
var categoryKeywords = []struct {
	label    string
	keywords []string
}{
	{"Streaming & Underholdning", []string{
		"netflix", "spotify", "disney+", "hbo", "amazon prime", "youtube premium",
		"apple music", "tidal", "viaplay", "tv2 play", "drtv", "discovery+",
		"paramount+", "apple tv+", "crunchyroll",
	}},
	{"Telekom & Internet", []string{
		"yousee", "telia", "telenor", "tdc", "oister", "cbb", "waoo", "stofa",
		"fullrate", "kviknet", "bolignet", "fiber", "bredbånd", "internet",
		"mobil", "telefon",
	}},
	{"Forsyning", []string{
		"seas-nve", "ørsted", "ewii", "nrgi", "energi fyn", "trefor", "konstant",
		"radius", "norlys", "forsyning", "energi", "fjernvarme", "varme", "vand",
	}},
	{"Forsikring & Pension", []string{
		"tryg", "alka", "codan", "if forsikring", "topdanmark", "gjensidige",
		"lærerstandens", "pfa", "danica", "alm. brand", "europæiske", "falck",
		"skandia", "forsikring", "pension",
	}},
	{"Fitness & Sundhed", []string{
		"sats", "fitness world", "fresh fitness", "form & fitness",
		"nordic wellness", "fitness dk", "myfitnesspal", "strava", "peloton",
		"fitnesscenter", "fitness", "træning", "sundhed", "wellness", "yoga",
	}},
	{"Skønhed & Pleje", []string{
		"matas", "sephora", "kicks", "parfume", "skønhed", "beauty", "kosmetik",
		"hudpleje",
	}},
	{"Software & Produktivitet", []string{
		"adobe", "microsoft", "dropbox", "google", "icloud", "office 365",
		"canva", "figma", "github", "slack", "zoom", "notion", "trello", "asana",
		"monday.com", "clickup", "basecamp", "jetbrains", "atlassian", "todoist",
		"1password", "lastpass", "openai",
	}},
	{"Nyheder & Medier", []string{
		"berlingske", "politiken", "jyllands-posten", "ekstrabladet",
		"information", "weekendavisen", "new york times", "wall street journal",
		"financial times", "economist",
	}},
	{"Transport", []string{
		"dsb", "rejsekort", "uber", "taxa", "viggo", "greenmobility", "share now",
	}},
	{"Mad & Levering", []string{
		"just eat", "wolt", "foodora", "hungry.dk", "nemlig.com", "aarstiderne",
	}},
	{"Bank & Finans", []string{
		"danske bank", "nordea", "jyske bank", "sydbank", "spar nord", "lunar",
		"revolut", "wise", "saxo bank",
	}},
	{"Uddannelse & Læring", []string{
		"duolingo", "babbel", "skillshare", "udemy", "coursera",
		"linkedin learning", "masterclass",
	}},
	{"Gaming", []string{
		"playstation", "xbox", "nintendo", "steam", "epic games", "battle.net",
		"twitch",
	}},
	{"Shopping & Retail", []string{
		"amazon", "zalando", "asos", "boozt", "ellos", "nelly", "bilka",
		"webshop",
	}},
}

// Categorize guesses an import category for a merchant name by keyword
// matching, either direction, case-insensitive. Unknown merchants land
// in Øvrige.
func Categorize(merchantName string) string {
	lower := strings.ToLower(strings.TrimSpace(merchantName))
	if lower == "" {
		return CategoryOther
	}
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) || strings.Contains(kw, lower) {
				return group.label
			}
		}
	}
	return CategoryOther
}
