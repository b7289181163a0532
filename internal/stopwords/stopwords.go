// Package stopwords provides the stopword set filtered out during
// tokenization. The set is built once at startup and passed to the
// components that need it; nothing here is process-global.
package stopwords

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Set is a lookup set of lowercase stopwords.
type Set map[string]struct{}

// Contains reports whether word is a stopword.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s) }

// FromWords builds a Set from a word list, lowercasing each entry.
func FromWords(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

// LoadFile reads a stopword list from path, one word per line.
// Blank lines and lines starting with '#' are skipped.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords file: %w", err)
	}
	defer f.Close()

	s := make(Set)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords file %s: %w", path, err)
	}
	return s, nil
}

// Default returns the builtin English stopword set.
func Default() Set {
	return FromWords([]string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	})
}
