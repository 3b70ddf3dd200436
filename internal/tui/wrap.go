// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typr/internal/model"
)

// lineRange is a half-open [Start, End) slice of target indices making up
// one display line.
type lineRange struct {
	start int
	end   int
}

// layoutLines word-wraps the target into display lines of at most width
// cells. Layout depends only on the target and width, never on typing
// state, so it is computed once per session or resize. Breaks happen at
// spaces when possible; a word wider than the line is split hard. The
// space a line breaks on is consumed by the break and belongs to no line.
func layoutLines(target []rune, width int) []lineRange {
	if width <= 0 {
		return []lineRange{{start: 0, end: len(target)}}
	}
	var lines []lineRange
	start := 0
	lineWidth := 0
	lastSpace := -1
	for i := 0; i < len(target); i++ {
		w := runewidth.RuneWidth(target[i])
		if lineWidth+w > width && i > start {
			if target[i] == ' ' {
				// The overflowing rune is the break itself.
				lines = append(lines, lineRange{start: start, end: i})
				start = i + 1
				lineWidth = 0
				lastSpace = -1
				continue
			}
			if lastSpace >= start {
				lines = append(lines, lineRange{start: start, end: lastSpace})
				start = lastSpace + 1
			} else {
				lines = append(lines, lineRange{start: start, end: i})
				start = i
			}
			lineWidth = widthOf(target[start : i+1])
			lastSpace = -1
			continue
		}
		lineWidth += w
		if target[i] == ' ' {
			lastSpace = i
		}
	}
	if start <= len(target) {
		lines = append(lines, lineRange{start: start, end: len(target)})
	}
	return lines
}

func widthOf(runes []rune) int {
	total := 0
	for _, r := range runes {
		total += runewidth.RuneWidth(r)
	}
	return total
}

// renderLine styles one display line from the per-position states. The
// target rune is always shown, also on a mistype; a mistyped space is
// drawn as a dot so the error is visible. The cursor cell is underlined.
func renderLine(target []rune, snap model.Snapshot, lr lineRange) string {
	var b strings.Builder
	for i := lr.start; i < lr.end; i++ {
		displayed := target[i]
		var style = untypedStyle
		switch snap.States[i] {
		case model.Correct:
			style = correctStyle
		case model.Corrected:
			style = correctedStyle
		case model.Incorrect:
			style = incorrectStyle
			if target[i] == ' ' {
				displayed = '·'
			}
		}
		if i == snap.Cursor {
			style = style.Underline(true)
		}
		b.WriteString(style.Render(string(displayed)))
	}
	return b.String()
}

// lineIndexFor returns the index of the line containing the target
// position, or the last line when the position is past the end.
func lineIndexFor(lines []lineRange, pos int) int {
	for i, lr := range lines {
		if pos >= lr.start && pos < lr.end {
			return i
		}
	}
	if len(lines) == 0 {
		return 0
	}
	return len(lines) - 1
}

// overlaps reports whether any dirty span intersects the line, counting
// the break position consumed by the line's trailing space.
func overlaps(lr lineRange, spans []model.Span) bool {
	for _, sp := range spans {
		if sp.Start <= lr.end && sp.End > lr.start {
			return true
		}
	}
	return false
}
