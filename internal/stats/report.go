// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/typr/internal/model"
)

// RecordMetrics derives WPM and accuracy from a stored session record,
// using the same accounting as the live engine: Corrected counts toward
// throughput but against accuracy.
func RecordMetrics(rec model.SessionRecord) (wpm, accuracy float64) {
	wpm, _, _ = SessionMetrics(rec.Correct+rec.Corrected, rec.Incorrect, rec.DurationMs)
	total := rec.Correct + rec.Corrected + rec.Incorrect
	if total > 0 {
		accuracy = float64(rec.Correct) / float64(total)
	}
	return wpm, accuracy
}

// RenderHistory prints a summary, WPM/accuracy sparklines, and a table of
// recent sessions. width bounds the sparkline length; zero means no bound.
func RenderHistory(w io.Writer, sessions []model.SessionRecord, width, curveWindow int) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions recorded yet.")
		return err
	}

	wpms := make([]float64, len(sessions))
	accs := make([]float64, len(sessions))
	var totalWPM, totalAcc, bestWPM float64
	for i, rec := range sessions {
		wpm, acc := RecordMetrics(rec)
		wpms[i] = wpm
		accs[i] = acc * 100
		totalWPM += wpm
		totalAcc += acc
		if wpm > bestWPM {
			bestWPM = wpm
		}
	}
	count := float64(len(sessions))

	if _, err := fmt.Fprintf(w, "Sessions: %d\n", len(sessions)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.2f\n", totalWPM/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %.2f\n", bestWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", (totalAcc/count)*100); err != nil {
		return err
	}

	smoothWPM := MovingAverage(wpms, curveWindow)
	smoothAcc := MovingAverage(accs, curveWindow)
	if width > 0 && len(smoothWPM) > width {
		smoothWPM = smoothWPM[len(smoothWPM)-width:]
		smoothAcc = smoothAcc[len(smoothAcc)-width:]
	}
	if _, err := fmt.Fprintf(w, "WPM      [%s]\n", Sparkline(smoothWPM)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy [%s]\n", Sparkline(smoothAcc)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	headers := []string{"Ended", "Mode", "Length", "WPM", "Accuracy"}
	rows := make([][]string, 0, len(sessions))
	for _, rec := range sessions {
		wpm, acc := RecordMetrics(rec)
		rows = append(rows, []string{
			rec.EndedAt.Format("2006-01-02 15:04"),
			rec.Mode,
			fmt.Sprintf("%d", rec.TargetLen),
			fmt.Sprintf("%.1f", wpm),
			fmt.Sprintf("%.1f%%", acc*100),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderMistakes prints the mistake histogram as a table. Entries are
// expected already ordered (ledger TopN order).
func RenderMistakes(w io.Writer, entries []model.MistakeCount) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No mistakes recorded.")
		return err
	}
	headers := []string{"Char", "Mistakes"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		label := string(e.Char)
		if e.Char == ' ' {
			label = "<space>"
		}
		rows = append(rows, []string{label, fmt.Sprintf("%d", e.Count)})
	}
	rightAlign := map[int]bool{1: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
