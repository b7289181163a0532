// Package index builds and owns the in-memory corpus: the vocabulary,
// the IDF vector and one TF-IDF vector per loaded document. A Corpus is
// immutable once built; reloading a directory means building a new one.
package index

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"docsearch/internal/domain"
	"docsearch/internal/stopwords"
	"docsearch/internal/tokenizer"
)

// ErrNotDirectory is returned by Load when the path does not resolve to
// an existing directory.
var ErrNotDirectory = errors.New("not a directory")

// Corpus is a fully built, queryable index over one directory of text
// files. Vector component i always corresponds to vocabulary term i.
type Corpus struct {
	vocabulary []string
	positions  map[string]int
	idf        []float64
	docs       []domain.Document
	vectors    [][]float64
}

// Load reads every regular file under dir recursively, tokenizes it with
// the given stopword set and builds the full index. The load is
// all-or-nothing: any unreadable file fails the whole operation.
func Load(dir string, stop stopwords.Set, log *logrus.Entry) (*Corpus, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	c := &Corpus{positions: make(map[string]int)}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read file %s: %w", path, err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve path %s: %w", path, err)
		}
		words := tokenizer.Tokenize(string(data), stop)
		c.docs = append(c.docs, domain.Document{
			Key:   len(c.docs),
			Path:  filepath.Clean(abs),
			Words: words,
		})
		for _, w := range words {
			if _, ok := c.positions[w]; !ok {
				c.positions[w] = len(c.vocabulary)
				c.vocabulary = append(c.vocabulary, w)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.fillIDF()
	c.vectors = make([][]float64, len(c.docs))
	for i, doc := range c.docs {
		c.vectors[i] = c.GenerateVector(doc.Words)
	}

	log.WithFields(logrus.Fields{
		"dir":        dir,
		"documents":  len(c.docs),
		"vocabulary": len(c.vocabulary),
	}).Info("corpus loaded")

	return c, nil
}

// fillIDF computes idf[i] = ln(N/df_i). Document frequency is counted
// against each document's distinct-term set, not its raw token list, so
// the cost scales with distinct terms rather than total tokens.
func (c *Corpus) fillIDF() {
	df := make(map[string]int, len(c.vocabulary))
	for _, doc := range c.docs {
		seen := make(map[string]struct{}, len(doc.Words))
		for _, w := range doc.Words {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			df[w]++
		}
	}

	n := float64(len(c.docs))
	c.idf = make([]float64, len(c.vocabulary))
	for i, term := range c.vocabulary {
		c.idf[i] = math.Log(n / float64(df[term]))
	}
}

// GenerateVector builds a TF-IDF vector aligned to the vocabulary from
// an arbitrary term list. Term frequency is the raw occurrence count;
// terms outside the vocabulary contribute nothing and do not extend it.
func (c *Corpus) GenerateVector(words []string) []float64 {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	vec := make([]float64, len(c.vocabulary))
	for term, tf := range counts {
		if i, ok := c.positions[term]; ok {
			vec[i] = float64(tf) * c.idf[i]
		}
	}
	return vec
}

// FilterKnown returns the words present in the vocabulary, preserving
// order and duplicates.
func (c *Corpus) FilterKnown(words []string) []string {
	var known []string
	for _, w := range words {
		if _, ok := c.positions[w]; ok {
			known = append(known, w)
		}
	}
	return known
}

// Contains reports whether term is part of the vocabulary.
func (c *Corpus) Contains(term string) bool {
	_, ok := c.positions[term]
	return ok
}

// Vocabulary returns the term list in its stable index order. Callers
// must not modify it.
func (c *Corpus) Vocabulary() []string { return c.vocabulary }

// IDF returns the IDF vector aligned to the vocabulary. Callers must not
// modify it.
func (c *Corpus) IDF() []float64 { return c.idf }

// Documents returns the loaded documents in key order.
func (c *Corpus) Documents() []domain.Document { return c.docs }

// DocumentVector returns the TF-IDF vector of the document with the
// given key.
func (c *Corpus) DocumentVector(key int) []float64 { return c.vectors[key] }

// NumDocuments returns the number of loaded documents.
func (c *Corpus) NumDocuments() int { return len(c.docs) }

// Stats returns the load summary used by the shell banner.
func (c *Corpus) Stats() domain.LoadStats {
	return domain.LoadStats{
		Documents:      len(c.docs),
		VocabularySize: len(c.vocabulary),
	}
}
