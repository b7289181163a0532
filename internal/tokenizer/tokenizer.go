// Package tokenizer converts raw text into normalized terms. A term is a
// maximal run of Unicode letters, lowercased; everything else is a
// delimiter and never appears in the output. Stopwords are dropped,
// duplicates are kept in document order.
package tokenizer

import (
	"strings"
	"unicode"

	"docsearch/internal/stopwords"
)

// Tokenize extracts the normalized, stopword-filtered term sequence from
// text. The returned slice may contain duplicates; callers counting term
// frequency depend on that.
func Tokenize(text string, stop stopwords.Set) []string {
	var words []string
	var sb strings.Builder

	flush := func() {
		if sb.Len() == 0 {
			return
		}
		word := strings.ToLower(sb.String())
		sb.Reset()
		if !stop.Contains(word) {
			words = append(words, word)
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return words
}
