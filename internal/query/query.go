// Package query interprets free-form English requests like "my 700w microwave,
// recipe expects 950w, cook 5 minutes" into the four numbers the conversion
// engine needs. Extraction is pattern based, disambiguation is a fixed chain
// of keyword-proximity rules, and every call is stateless.
package query

import "errors"

// Failure taxonomy. All are caller-visible validation failures; none are
// retryable. Messages include an example phrasing so the caller can rephrase.
var (
	ErrOriginalNotFound = errors.New(`original wattage not found - try phrasing like "recipe expects 950w" or "950w recipe"`)
	ErrTargetNotFound   = errors.New(`target wattage not found - try phrasing like "my 700w microwave"`)
	ErrDurationNotFound = errors.New(`cooking time not found - try phrasing like "5 minutes" or "2 minutes 30 seconds"`)
	ErrOnlyOneWattage   = errors.New("only one wattage found - mention both the recipe wattage and your microwave's wattage")
	ErrTooManyWattages  = errors.New("more than two wattages found - say which is the recipe's and which is your microwave's")
	ErrSameWattage      = errors.New("same wattage found for both roles - the recipe and your microwave must differ")
)

// Mention is one in-range wattage occurrence, tagged with where it appeared so
// the disambiguator can inspect the preceding context.
type Mention struct {
	Value  int
	Offset int
}

// ParsedQuery is the transient output of extraction over one piece of text.
// Zero values mean "not found"; it never outlives the interpretation call.
type ParsedQuery struct {
	Mentions []Mention // every in-range wattage, in text order

	Original int // role-tagged recipe wattage, 0 if untagged
	Target   int // role-tagged user wattage, 0 if untagged

	Minutes      int
	Seconds      int
	FoundMinutes bool
	FoundSeconds bool
}

// HasDuration reports whether any time component was extracted.
func (p *ParsedQuery) HasDuration() bool {
	return p.FoundMinutes || p.FoundSeconds
}

// Interpretation is the validated result of interpreting one query.
type Interpretation struct {
	OriginalWattage int
	TargetWattage   int
	Minutes         int
	Seconds         int
}
