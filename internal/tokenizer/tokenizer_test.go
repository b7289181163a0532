package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"docsearch/internal/stopwords"
)

func TestTokenizeSplitsOnNonLetters(t *testing.T) {
	words := Tokenize("Hello, world! 42 times.", stopwords.Set{})
	assert.Equal(t, []string{"hello", "world", "times"}, words)
}

func TestTokenizeKeepsDuplicates(t *testing.T) {
	// Duplicates are the term-frequency signal and must survive.
	words := Tokenize("cat dog cat", stopwords.Set{})
	assert.Equal(t, []string{"cat", "dog", "cat"}, words)
}

func TestTokenizeFiltersStopwords(t *testing.T) {
	stop := stopwords.FromWords([]string{"the", "a"})
	words := Tokenize("The cat and a dog", stop)
	assert.Equal(t, []string{"cat", "and", "dog"}, words)
}

func TestTokenizeDigitsBreakWords(t *testing.T) {
	words := Tokenize("abc123def", stopwords.Set{})
	assert.Equal(t, []string{"abc", "def"}, words)
}

func TestTokenizeUnicodeLetters(t *testing.T) {
	words := Tokenize("Čičak über naïve", stopwords.Set{})
	assert.Equal(t, []string{"čičak", "über", "naïve"}, words)
}

func TestTokenizeTrailingWord(t *testing.T) {
	// A word at end of input has no closing delimiter in the text.
	words := Tokenize("cat", stopwords.Set{})
	assert.Equal(t, []string{"cat"}, words)
}

func TestTokenizeNothingSurvives(t *testing.T) {
	assert.Empty(t, Tokenize("", stopwords.Set{}))
	assert.Empty(t, Tokenize("123 !!! ...", stopwords.Set{}))
	assert.Empty(t, Tokenize("the the", stopwords.FromWords([]string{"the"})))
}
