package query

import (
	"regexp"
	"strconv"
)

// wattagePattern matches an integer immediately followed by the unit marker,
// e.g. "950w". Matches outside [convert.MinWattage, convert.MaxWattage] are
// discarded and do not count as found wattages.
var wattagePattern = regexp.MustCompile(`(\d+)w\b`)

const (
	minWattage = 100
	maxWattage = 2000
)

// Role-tagged extraction. Each role has its own ordered pattern list; patterns
// are tried top to bottom and the first in-range match wins for that role.
// A sentence like "my 700w microwave, recipe expects 950w" resolves both roles
// here without touching the heuristic disambiguator.
var originalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:recipe|instructions?)\s+(?:expects?|says?|asks?\s+for|calls?\s+for|requires?)\s+(?:a\s+)?(\d+)w\b`),
	regexp.MustCompile(`(?:calls?\s+for|written\s+for|meant\s+for)\s+(?:a\s+)?(\d+)w\b`),
	regexp.MustCompile(`(\d+)w\s+recipe\b`),
}

var targetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`my\s+(\d+)w\s+(?:microwave|oven)\b`),
	regexp.MustCompile(`i\s+(?:have|own|use)\s+(?:an?\s+)?(\d+)w\b`),
	regexp.MustCompile(`(?:in|with|using)\s+(?:an?\s+|my\s+)?(\d+)w\s+(?:microwave|oven)\b`),
	regexp.MustCompile(`my\s+microwave\s+is\s+(?:an?\s+)?(\d+)w\b`),
}

// Duration patterns, tried in order with first-match-wins semantics. The
// combined minutes[+seconds] form takes priority; a bare seconds count is the
// fallback and is normalized into minutes when it reaches 60.
var (
	minutesPattern = regexp.MustCompile(`(\d+)\s*min(?:ute)?s?\b(?:\s*(?:and\s+)?(\d+)\s*sec(?:ond)?s?\b)?`)
	secondsPattern = regexp.MustCompile(`(\d+)\s*sec(?:ond)?s?\b`)
)

// extract runs all pattern passes over already-normalized (lower-cased) text.
// Pure function, no side effects.
func extract(text string) *ParsedQuery {
	p := &ParsedQuery{
		Mentions: scanWattages(text),
		Original: matchRole(originalPatterns, text),
		Target:   matchRole(targetPatterns, text),
	}
	extractDuration(text, p)
	return p
}

// scanWattages finds every in-range wattage mention with its character offset.
func scanWattages(text string) []Mention {
	var mentions []Mention
	for _, idx := range wattagePattern.FindAllStringSubmatchIndex(text, -1) {
		value, err := strconv.Atoi(text[idx[2]:idx[3]])
		if err != nil || value < minWattage || value > maxWattage {
			continue
		}
		mentions = append(mentions, Mention{Value: value, Offset: idx[0]})
	}
	return mentions
}

// matchRole returns the first in-range wattage captured by the ordered
// pattern list, or 0 when no pattern matches.
func matchRole(patterns []*regexp.Regexp, text string) int {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := strconv.Atoi(m[1])
		if err != nil || value < minWattage || value > maxWattage {
			continue
		}
		return value
	}
	return 0
}

func extractDuration(text string, p *ParsedQuery) {
	if m := minutesPattern.FindStringSubmatch(text); m != nil {
		p.Minutes, _ = strconv.Atoi(m[1])
		p.FoundMinutes = true
		if m[2] != "" {
			p.Seconds, _ = strconv.Atoi(m[2])
			p.FoundSeconds = true
		}
		return
	}
	if m := secondsPattern.FindStringSubmatch(text); m != nil {
		total, _ := strconv.Atoi(m[1])
		if total >= 60 {
			p.Minutes = total / 60
			p.Seconds = total % 60
		} else {
			p.Seconds = total
		}
		p.FoundSeconds = true
	}
}
