package query

import "strings"

// defaultCueWindow is how many characters of preceding text are inspected as
// a mention's context when classifying its role.
const defaultCueWindow = 30

// Keyword sets the disambiguator looks for in a mention's context window.
// Substring matching keeps "expects"/"expect" and "instructions"/"instruction"
// on one entry each.
var (
	userCues   = []string{"my", "i have", "i own", "using", "with my", "in my"}
	recipeCues = []string{"recipe", "instruction", "expect", "call", "require", "say"}
)

// cueClass is one mention plus its context classification.
type cueClass struct {
	mention Mention
	user    bool
	recipe  bool
}

// disambiguationRule is a pure classification rule. Rules are tried in
// priority order; ok reports whether this rule can decide the pair. New rules
// slot into the chain without touching control flow.
type disambiguationRule struct {
	name   string
	decide func(first, second cueClass) (original, target Mention, ok bool)
}

var disambiguationRules = []disambiguationRule{
	{
		// One mention reads like the user's appliance and the other like the
		// recipe's requirement.
		name: "opposing cues",
		decide: func(first, second cueClass) (Mention, Mention, bool) {
			userFirst := first.user && second.recipe
			userSecond := second.user && first.recipe
			switch {
			case userFirst && !userSecond:
				return second.mention, first.mention, true
			case userSecond && !userFirst:
				return first.mention, second.mention, true
			}
			return Mention{}, Mention{}, false
		},
	},
	{
		name: "single recipe cue",
		decide: func(first, second cueClass) (Mention, Mention, bool) {
			if first.recipe == second.recipe {
				return Mention{}, Mention{}, false
			}
			if first.recipe {
				return first.mention, second.mention, true
			}
			return second.mention, first.mention, true
		},
	},
	{
		name: "single user cue",
		decide: func(first, second cueClass) (Mention, Mention, bool) {
			if first.user == second.user {
				return Mention{}, Mention{}, false
			}
			if first.user {
				return second.mention, first.mention, true
			}
			return first.mention, second.mention, true
		},
	},
	{
		// Nothing distinguishes the pair: the earlier mention is the recipe's.
		name: "position",
		decide: func(first, second cueClass) (Mention, Mention, bool) {
			return first.mention, second.mention, true
		},
	},
}

// disambiguate decides which of exactly two mentions is the original (recipe)
// wattage and which is the target (user) wattage. It also reports the name of
// the rule that decided, for debug logging.
func disambiguate(text string, first, second Mention, window int) (original, target Mention, rule string) {
	if window <= 0 {
		window = defaultCueWindow
	}
	a := classify(text, first, window)
	b := classify(text, second, window)
	for _, r := range disambiguationRules {
		if o, t, ok := r.decide(a, b); ok {
			return o, t, r.name
		}
	}
	// Unreachable: the position rule always decides.
	return first, second, "position"
}

// classify inspects the window of text preceding a mention for role keywords.
func classify(text string, m Mention, window int) cueClass {
	start := m.Offset - window
	if start < 0 {
		start = 0
	}
	ctx := text[start:m.Offset]
	return cueClass{
		mention: m,
		user:    containsAny(ctx, userCues),
		recipe:  containsAny(ctx, recipeCues),
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
