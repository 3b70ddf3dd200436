// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/verte-zerg/typr/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Below this elapsed time WPM is reported as zero to avoid meaningless
// spikes from the first few keystrokes.
const minElapsed = time.Second

// Counts tallies the resolved positions of a state array.
func Counts(states []model.CharState) (correct, corrected, incorrect int) {
	for _, st := range states {
		switch st {
		case model.Correct:
			correct++
		case model.Corrected:
			corrected++
		case model.Incorrect:
			incorrect++
		}
	}
	return correct, corrected, incorrect
}

// Elapsed returns the time since the first keystroke in the log, zero when
// nothing has been typed yet. Idle time before the first keystroke never
// counts.
func Elapsed(keys []model.Keystroke, now time.Time) time.Duration {
	if len(keys) == 0 {
		return 0
	}
	return now.Sub(keys[0].At)
}

// WPM computes words per minute at the given instant using the standard
// five-characters-per-word convention. Characters the user eventually
// produced correctly (Correct and Corrected) count toward throughput.
// Recomputable idempotently from the log and state array at any time.
func WPM(states []model.CharState, keys []model.Keystroke, now time.Time) float64 {
	elapsed := Elapsed(keys, now)
	if elapsed < minElapsed {
		return 0
	}
	correct, corrected, _ := Counts(states)
	minutes := elapsed.Minutes()
	return (float64(correct+corrected) / 5.0) / minutes
}

// Accuracy is the ratio of positions resolved cleanly Correct over all
// resolved positions, in [0, 1]. A Corrected position keeps its original
// mistake, so it lowers accuracy. Before anything is typed the ratio is
// defined as 1.0.
func Accuracy(states []model.CharState) float64 {
	correct, corrected, incorrect := Counts(states)
	total := correct + corrected + incorrect
	if total == 0 {
		return 1.0
	}
	return float64(correct) / float64(total)
}

// SessionMetrics computes WPM, CPM, and accuracy for a stored session.
func SessionMetrics(correct, incorrect int, durationMs int64) (wpm, cpm, accuracy float64) {
	if durationMs <= 0 {
		return 0, 0, 0
	}
	minutes := float64(durationMs) / 60000.0
	if minutes <= 0 {
		return 0, 0, 0
	}
	wpm = (float64(correct) / 5.0) / minutes
	cpm = float64(correct) / minutes
	den := float64(correct + incorrect)
	if den > 0 {
		accuracy = float64(correct) / den
	}
	return wpm, cpm, accuracy
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
