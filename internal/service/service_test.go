package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/index"
	"docsearch/internal/search"
	"docsearch/internal/stopwords"
)

func newService(stop stopwords.Set) *SearchService {
	return New(stop, search.NewScorer(0, 0), nil)
}

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestQueryWithoutCorpus(t *testing.T) {
	svc := newService(stopwords.Set{})
	_, _, err := svc.Query("cat")
	assert.ErrorIs(t, err, ErrNoCorpus)

	_, err = svc.Stats()
	assert.ErrorIs(t, err, ErrNoCorpus)
}

func TestLoadAndQuery(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt": "cat dog cat",
		"b.txt": "dog bird",
	})
	svc := newService(stopwords.Set{})

	stats, err := svc.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Documents)
	assert.Equal(t, 3, stats.VocabularySize)

	terms, results, err := svc.Query("cat")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, terms)
	require.Len(t, results, 1)
	assert.Equal(t, "a.txt", filepath.Base(results[0].Path))
}

func TestQueryNarrowingKeepsDuplicates(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt": "cat dog cat",
		"b.txt": "dog bird",
	})
	stop := stopwords.FromWords([]string{"the"})
	svc := newService(stop)
	_, err := svc.Load(dir)
	require.NoError(t, err)

	terms, _, err := svc.Query("the cat, cat... unicorn!")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cat"}, terms)
}

func TestQueryEmptyAfterNarrowing(t *testing.T) {
	dir := writeCorpus(t, map[string]string{"a.txt": "cat dog"})
	stop := stopwords.FromWords([]string{"the"})
	svc := newService(stop)
	_, err := svc.Load(dir)
	require.NoError(t, err)

	_, _, err = svc.Query("the the")
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, _, err = svc.Query("unicorn dragon")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestResultsBeforeQuery(t *testing.T) {
	dir := writeCorpus(t, map[string]string{"a.txt": "cat"})
	svc := newService(stopwords.Set{})
	_, err := svc.Load(dir)
	require.NoError(t, err)

	_, err = svc.Results()
	assert.ErrorIs(t, err, ErrNoResults)
	_, err = svc.Result(0)
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestResultBounds(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt": "cat dog cat",
		"b.txt": "dog bird",
	})
	svc := newService(stopwords.Set{})
	_, err := svc.Load(dir)
	require.NoError(t, err)
	_, results, err := svc.Query("cat")
	require.NoError(t, err)
	require.Len(t, results, 1)

	got, err := svc.Result(0)
	require.NoError(t, err)
	assert.Equal(t, results[0], got)

	_, err = svc.Result(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = svc.Result(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestResultAfterEmptyQueryResults(t *testing.T) {
	// A single-document corpus has idf 0 everywhere, so every match
	// falls below the floor and the result list is empty.
	dir := writeCorpus(t, map[string]string{"a.txt": "cat"})
	svc := newService(stopwords.Set{})
	_, err := svc.Load(dir)
	require.NoError(t, err)
	_, results, err := svc.Query("cat")
	require.NoError(t, err)
	require.Empty(t, results)

	_, err = svc.Result(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorContains(t, err, "no results")
	assert.NotContains(t, err.Error(), "-1")
}

func TestFailedReloadKeepsActiveCorpus(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.txt": "cat dog cat",
		"b.txt": "dog bird",
	})
	svc := newService(stopwords.Set{})
	_, err := svc.Load(dir)
	require.NoError(t, err)
	_, _, err = svc.Query("cat")
	require.NoError(t, err)

	_, err = svc.Load(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, index.ErrNotDirectory)

	// The previous snapshot and its results are untouched.
	_, results, err := svc.Query("cat")
	require.NoError(t, err)
	assert.Len(t, results, 1)
	prior, err := svc.Results()
	require.NoError(t, err)
	assert.Len(t, prior, 1)
}

func TestReloadSwapsSnapshot(t *testing.T) {
	first := writeCorpus(t, map[string]string{"a.txt": "cat"})
	second := writeCorpus(t, map[string]string{
		"b.txt": "bird wing",
		"c.txt": "worm",
	})
	svc := newService(stopwords.Set{})

	_, err := svc.Load(first)
	require.NoError(t, err)
	_, _, err = svc.Query("cat")
	require.NoError(t, err)

	_, err = svc.Load(second)
	require.NoError(t, err)

	// Stale results are discarded with the old corpus.
	_, err = svc.Results()
	assert.ErrorIs(t, err, ErrNoResults)

	_, _, err = svc.Query("cat")
	assert.ErrorIs(t, err, ErrEmptyQuery)
	_, results, err := svc.Query("bird")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
