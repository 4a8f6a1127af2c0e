package query

import (
	"strings"

	"github.com/wattwise/wattwise/internal/logger"
)

// Interpreter turns free text into validated conversion parameters. Safe for
// concurrent use; it holds no per-call state.
type Interpreter struct {
	cueWindow int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithCueWindow overrides the context window (in characters) the
// disambiguator inspects before each wattage mention.
func WithCueWindow(n int) Option {
	return func(i *Interpreter) {
		if n > 0 {
			i.cueWindow = n
		}
	}
}

// New creates an Interpreter.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{cueWindow: defaultCueWindow}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Interpret extracts both wattages and the cooking time from text.
//
// Explicit role phrasing ("recipe expects 950w", "my 700w microwave") always
// outranks the keyword-proximity heuristics, which in turn outrank the
// positional fallback. Duration parsing is independent of wattage resolution
// and never blocks it.
func (i *Interpreter) Interpret(text string) (*Interpretation, error) {
	normalized := strings.ToLower(text)
	parsed := extract(normalized)

	original, target := parsed.Original, parsed.Target
	if original == 0 || target == 0 {
		var err error
		original, target, err = i.resolveRoles(normalized, parsed)
		if err != nil {
			return nil, err
		}
	}

	if original == 0 {
		return nil, ErrOriginalNotFound
	}
	if target == 0 {
		return nil, ErrTargetNotFound
	}
	if !parsed.HasDuration() {
		return nil, ErrDurationNotFound
	}
	if original == target {
		return nil, ErrSameWattage
	}

	logger.Debug("interpreted query: original=%dW target=%dW time=%dm%ds",
		original, target, parsed.Minutes, parsed.Seconds)

	return &Interpretation{
		OriginalWattage: original,
		TargetWattage:   target,
		Minutes:         parsed.Minutes,
		Seconds:         parsed.Seconds,
	}, nil
}

// resolveRoles fills whichever roles the tagged extraction left open, using
// the full mention scan.
func (i *Interpreter) resolveRoles(text string, parsed *ParsedQuery) (original, target int, err error) {
	original, target = parsed.Original, parsed.Target

	switch len(parsed.Mentions) {
	case 0:
		// Nothing to work with; validation reports the missing role.
		return original, target, nil

	case 1:
		if original == 0 && target == 0 {
			return 0, 0, ErrOnlyOneWattage
		}
		// One role came from explicit phrasing and the scan found no second
		// appliance; the open role stays unresolved for validation.
		return original, target, nil

	case 2:
		if original == 0 && target == 0 {
			o, t, rule := disambiguate(text, parsed.Mentions[0], parsed.Mentions[1], i.cueWindow)
			logger.Debug("disambiguated %dW/%dW via %s rule", o.Value, t.Value, rule)
			return o.Value, t.Value, nil
		}
		// Exactly one role is tagged: the other mention fills the open role.
		if original == 0 {
			original = otherMention(parsed.Mentions, target)
		} else {
			target = otherMention(parsed.Mentions, original)
		}
		return original, target, nil

	default:
		return 0, 0, ErrTooManyWattages
	}
}

// otherMention picks the mention that is not the already-assigned value,
// falling back to the first mention when both carry the same value (the
// same-wattage check rejects that reading later).
func otherMention(mentions []Mention, assigned int) int {
	for _, m := range mentions {
		if m.Value != assigned {
			return m.Value
		}
	}
	return mentions[0].Value
}
