// Package renderer turns a comparison result into the text shown to the
// operator.
package renderer

import (
	"fmt"
	"io"

	"github.com/emt/driftwatch/pkg/comparator"
)

// Render writes result to w: either the all-clear line, or one block per
// alert in the order alerts were produced. Sentinel outcomes carry their
// message as their single alert and print under the same banner.
func Render(w io.Writer, result *comparator.Result) {
	if len(result.Alerts) == 0 {
		fmt.Fprintln(w, "No significant deviations detected.")
		return
	}

	fmt.Fprintln(w, "Potential regressions or unexpected changes detected:")
	for _, alert := range result.Alerts {
		fmt.Fprintln(w, alert.String())
	}
}
