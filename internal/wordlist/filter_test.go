package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilterTypableDropsControlAndSpaceRunes(t *testing.T) {
	in := []string{"hello", "wor\tld", "at\x07om", "naïve", "two words"}
	got := FilterTypable(in)
	want := []string{"hello", "naïve"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFilterTypableEmpty(t *testing.T) {
	if got := FilterTypable(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestDefaultWordsAreTypable(t *testing.T) {
	words := Default()
	if len(words) == 0 {
		t.Fatalf("expected non-empty default word list")
	}
	if got := FilterTypable(words); len(got) != len(words) {
		t.Fatalf("expected every default word to be typable, %d dropped", len(words)-len(got))
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	first := Default()
	first[0] = "mutated"
	if second := Default(); second[0] == "mutated" {
		t.Fatalf("expected Default to return an independent copy")
	}
}

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("alpha beta\ngamma\n"), 0o644); err != nil {
		t.Fatalf("write words file: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(words) != len(want) {
		t.Fatalf("expected %v, got %v", want, words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, words)
		}
	}
}

func TestLoadWordsEmptyFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("  \n\t\n"), 0o644); err != nil {
		t.Fatalf("write words file: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(path, []byte("some sample text\n"), 0o644); err != nil {
		t.Fatalf("write text file: %v", err)
	}
	content, err := LoadText(path)
	if err != nil {
		t.Fatalf("load text: %v", err)
	}
	if content != "some sample text\n" {
		t.Fatalf("expected raw content, got %q", content)
	}
}
