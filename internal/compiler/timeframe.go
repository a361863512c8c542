package compiler

import (
	"regexp"
	"strconv"
	"strings"
)

// Timeframe is the parsed duration of a goal.
type Timeframe struct {
	Days    int
	Display string
}

const (
	defaultDays    = 90
	defaultDisplay = "3 months"
)

type timePattern struct {
	re         *regexp.Regexp
	multiplier int    // days per captured unit, 0 for fixed phrases
	fixedDays  int    // used when multiplier is 0
	fixedText  string // display for fixed phrases
}

// Ordered: explicit numeric units first, fixed phrases last.
// First match wins.
var timePatterns = []timePattern{
	{re: regexp.MustCompile(`(?i)(\d+)\s*months?`), multiplier: 30},
	{re: regexp.MustCompile(`(?i)(\d+)\s*weeks?`), multiplier: 7},
	{re: regexp.MustCompile(`(?i)(\d+)\s*days?`), multiplier: 1},
	{re: regexp.MustCompile(`(?i)(\d+)\s*years?`), multiplier: 365},
	{re: regexp.MustCompile(`(?i)half\s*(a\s*)?year|6\s*months`), fixedDays: 180, fixedText: "6 months"},
	{re: regexp.MustCompile(`(?i)quarter|3\s*months`), fixedDays: 90, fixedText: "3 months"},
}

// ExtractTimeframe parses a duration out of free text. No match yields
// the 90-day / "3 months" default. Pure function, no failure modes.
func ExtractTimeframe(text string) Timeframe {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, p := range timePatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if p.multiplier > 0 {
			n, err := strconv.Atoi(m[1])
			if err != nil || n <= 0 {
				continue
			}
			return Timeframe{Days: n * p.multiplier, Display: m[0]}
		}
		return Timeframe{Days: p.fixedDays, Display: p.fixedText}
	}
	return Timeframe{Days: defaultDays, Display: defaultDisplay}
}
