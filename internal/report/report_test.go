package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/metailurini/skipmap/internal/workload"
)

func TestExpectedShareSumsToOne(t *testing.T) {
	for _, p := range []float64{0.25, 0.5, 0.9} {
		sum := 0.0
		for h := 1; h <= 8; h++ {
			sum += ExpectedShare(h, 8, p)
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "p=%v", p)
	}
	assert.Zero(t, ExpectedShare(0, 8, 0.5))
	assert.Zero(t, ExpectedShare(9, 8, 0.5))
	assert.InDelta(t, 0.25, ExpectedShare(2, 8, 0.5), 1e-12)
}

func TestResults(t *testing.T) {
	var buf bytes.Buffer
	Results(&buf, []workload.Result{{
		Name:     "uniform",
		Ops:      1000,
		Hits:     600,
		Misses:   400,
		Elapsed:  2 * time.Millisecond,
		Len:      321,
		Level:    9,
		MaxLevel: 32,
	}})

	out := buf.String()
	assert.Contains(t, out, "OPS/S")
	assert.Contains(t, out, "uniform")
	assert.Contains(t, out, "500000")
	assert.Contains(t, out, "9/32")
}

func TestHistogramOmitsEmptyTopLevels(t *testing.T) {
	var buf bytes.Buffer
	Histogram(&buf, []int{4, 2, 1, 0, 0, 0}, 0.5)

	out := buf.String()
	assert.Contains(t, out, "0.5714")
	assert.Contains(t, out, "7")
	// Height 4 would carry an expected share of 0.0625.
	assert.NotContains(t, out, "0.0625")
}

func TestSettings(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	Settings(&buf, "Configuration items", [][2]interface{}{{"max-level", 32}, {"probability", 0.5}})

	out := buf.String()
	assert.Contains(t, out, "==> Configuration items:")
	assert.Contains(t, out, "max-level: 32")

	buf.Reset()
	Settings(&buf, "empty", nil)
	assert.Empty(t, buf.String())
}
