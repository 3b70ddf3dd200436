// Package wordlist loads practice word and text content.
package wordlist

import (
	"fmt"
	"os"
	"strings"
)

// LoadWords reads whitespace-separated words from the provided file path.
func LoadWords(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	words := strings.Fields(string(content))
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty: %s", path)
	}
	return words, nil
}

// LoadText reads the full contents of a user text file. Normalization is
// the text source's concern; this returns the raw content.
func LoadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
