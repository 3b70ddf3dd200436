package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/typr/internal/model"
)

func TestRecordMetrics(t *testing.T) {
	rec := model.SessionRecord{
		Correct:    45,
		Corrected:  5,
		Incorrect:  10,
		DurationMs: 60000,
	}
	wpm, acc := RecordMetrics(rec)
	if math.Abs(wpm-10) > 1e-9 {
		t.Fatalf("expected 10 WPM from 50 produced chars, got %f", wpm)
	}
	if math.Abs(acc-45.0/60.0) > 1e-9 {
		t.Fatalf("unexpected accuracy %f", acc)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, nil, 80, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions") {
		t.Fatalf("expected empty-history message, got %q", buf.String())
	}
}

func TestRenderHistory(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sessions := []model.SessionRecord{
		{
			StartedAt: start, EndedAt: start.Add(time.Minute),
			Mode: "ascii", TargetLen: 150,
			Correct: 140, Corrected: 5, Incorrect: 5, DurationMs: 60000,
		},
		{
			StartedAt: start.Add(time.Hour), EndedAt: start.Add(time.Hour + time.Minute),
			Mode: "words", TargetLen: 150,
			Correct: 150, DurationMs: 60000,
		},
	}
	var buf bytes.Buffer
	if err := RenderHistory(&buf, sessions, 80, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Sessions: 2", "Avg WPM", "Best WPM", "WPM      [", "ascii", "words"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRenderMistakes(t *testing.T) {
	entries := []model.MistakeCount{
		{Char: 'b', Count: 3},
		{Char: ' ', Count: 1},
	}
	var buf bytes.Buffer
	if err := RenderMistakes(&buf, entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "b") || !strings.Contains(out, "<space>") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRenderMistakesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderMistakes(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No mistakes") {
		t.Fatalf("expected empty-ledger message, got %q", buf.String())
	}
}
