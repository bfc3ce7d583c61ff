package comparator

import "errors"

// Outcome distinguishes a genuine comparison from the sentinel results
// where no comparison was possible.
type Outcome string

const (
	// OutcomeCompared means every readable history file was compared;
	// the alert list may be empty.
	OutcomeCompared Outcome = "compared"
	// OutcomeSyntaxInvalid means the new config failed the syntax gate
	// and nothing was compared.
	OutcomeSyntaxInvalid Outcome = "syntax_invalid"
	// OutcomeLoadFailed means the new config passed the gate but could
	// not be loaded.
	OutcomeLoadFailed Outcome = "load_failed"
	// OutcomeNoHistory means the history directory held no usable files.
	OutcomeNoHistory Outcome = "no_history"
)

// ErrDirectoryMissing is returned when the history directory does not exist.
var ErrDirectoryMissing = errors.New("config history directory missing")

// Alert records one historical file whose change ratio exceeded the
// threshold, or a sentinel message for runs that never got that far.
type Alert struct {
	File    string  `json:"file,omitempty"`
	Score   float64 `json:"score,omitempty"`
	Summary string  `json:"summary"`
	Diff    string  `json:"diff,omitempty"`
}

func (a Alert) String() string {
	if a.Diff == "" {
		return a.Summary
	}
	return a.Summary + ":\n" + a.Diff
}

// Result is the outcome of one comparison run. Sentinel outcomes carry
// exactly one descriptive alert so callers that only print alerts still
// surface them, while tests can tell "no data" apart from "compared
// cleanly".
type Result struct {
	Outcome Outcome `json:"outcome"`
	Alerts  []Alert `json:"alerts"`
}

// Compared reports whether history files were actually examined.
func (r *Result) Compared() bool {
	return r.Outcome == OutcomeCompared
}
