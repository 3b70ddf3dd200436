// Package textsource builds the target text for a typing session.
package textsource

import (
	"errors"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/verte-zerg/typr/internal/model"
)

// ErrEmptyInput reports that a mode has no usable content to generate from.
var ErrEmptyInput = errors.New("no usable target content")

// Pool of printable ASCII characters for ascii mode.
const asciiPool = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"~`!@#$%^&*()-_+={}[]|\\:;\"'<>,.?/"

// Params carries the per-mode inputs for Generate.
type Params struct {
	// Chars is the target length for ascii mode.
	Chars int
	// TargetLen bounds the total rune length for words mode.
	TargetLen int
	// Words is the word list for words mode.
	Words []string
	// Text is the verbatim user content for text mode.
	Text string
}

// Source produces randomized target text. A Source is not safe for
// concurrent use; the session engine is single-threaded.
type Source struct {
	rnd *rand.Rand
}

// New returns a Source seeded with the current time.
func New() *Source {
	return &Source{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Generate builds the target text for the given mode. The returned runes
// stay fixed for the lifetime of one session; callers must not regenerate
// mid-session.
func (s *Source) Generate(mode model.Mode, p Params) ([]rune, error) {
	switch mode {
	case model.ModeWords:
		return s.Words(p.Words, p.TargetLen)
	case model.ModeText:
		return s.Text(p.Text)
	default:
		return s.Ascii(p.Chars), nil
	}
}

// Ascii draws Chars characters uniformly from the printable-ASCII pool.
func (s *Source) Ascii(chars int) []rune {
	pool := []rune(asciiPool)
	out := make([]rune, 0, chars)
	for i := 0; i < chars; i++ {
		out = append(out, pool[s.rnd.Intn(len(pool))])
	}
	return out
}

// Words concatenates randomly selected words, space-separated, keeping the
// total rune length within targetLen. At least one word is always emitted
// so a tiny targetLen cannot produce an empty target.
func (s *Source) Words(words []string, targetLen int) ([]rune, error) {
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}
	var b strings.Builder
	total := 0
	for {
		word := words[s.rnd.Intn(len(words))]
		wordLen := len([]rune(word))
		if total > 0 {
			if total+1+wordLen > targetLen {
				break
			}
			b.WriteByte(' ')
			total++
		}
		b.WriteString(word)
		total += wordLen
		if total >= targetLen {
			break
		}
	}
	return []rune(b.String()), nil
}

// Text normalizes verbatim user content: control characters are dropped and
// whitespace runs collapse to single spaces. Empty content is an error.
func (s *Source) Text(content string) ([]rune, error) {
	fields := strings.FieldsFunc(content, unicode.IsSpace)
	cleaned := make([]string, 0, len(fields))
	for _, f := range fields {
		var b strings.Builder
		for _, r := range f {
			if unicode.IsControl(r) {
				continue
			}
			b.WriteRune(r)
		}
		if b.Len() > 0 {
			cleaned = append(cleaned, b.String())
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrEmptyInput
	}
	return []rune(strings.Join(cleaned, " ")), nil
}
