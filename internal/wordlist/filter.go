package wordlist

import "unicode"

// FilterTypable drops words containing control or spacing characters, which
// cannot appear inside a space-separated target.
func FilterTypable(words []string) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		if typable(word) {
			out = append(out, word)
		}
	}
	return out
}

func typable(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
