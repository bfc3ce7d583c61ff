package renderer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emt/driftwatch/pkg/comparator"
)

func TestRenderNoAlerts(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &comparator.Result{Outcome: comparator.OutcomeCompared})

	assert.Equal(t, "No significant deviations detected.\n", buf.String())
}

func TestRenderAlerts(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &comparator.Result{
		Outcome: comparator.OutcomeCompared,
		Alerts: []comparator.Alert{
			{
				File:    "v2.yaml",
				Score:   0.25,
				Summary: "Significant deviation detected compared to v2.yaml",
				Diff:    "  {\n-   \"b\": 2\n+   \"b\": 3\n  }",
			},
			{
				File:    "v3.yaml",
				Score:   0.5,
				Summary: "Significant deviation detected compared to v3.yaml",
				Diff:    "- old\n+ new",
			},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "Potential regressions or unexpected changes detected:")
	assert.Contains(t, output, "compared to v2.yaml:\n  {")
	assert.Contains(t, output, `+   "b": 3`)

	// Blocks appear in production order.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("v2.yaml")), bytes.Index(buf.Bytes(), []byte("v3.yaml")))
}

func TestRenderSentinel(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &comparator.Result{
		Outcome: comparator.OutcomeNoHistory,
		Alerts: []comparator.Alert{
			{Summary: "No historical configurations found. Unable to perform comparison."},
		},
	})

	assert.Contains(t, buf.String(), "No historical configurations found")
}
