// Package sentiment scores the affect of short texts against a word lexicon.
package sentiment

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

const (
	minValence = -5
	maxValence = 5
)

var (
	ErrEmptyLexicon   = errors.New("empty lexicon")
	ErrInvalidValence = errors.New("valence out of range")
	ErrInvalidWord    = errors.New("lexicon word is not a single token")
)

// Lexicon maps a single lower-case token to its integer valence.
type Lexicon map[string]int

type lexiconFile struct {
	Words Lexicon `yaml:"words"`
}

// Result is the sentiment of one text.
type Result struct {
	Text        string
	Score       int
	Comparative float64
	Positive    []string
	Negative    []string
}

// Scorer is an immutable lexicon-based scorer.
type Scorer struct {
	lexicon Lexicon
}

// DefaultLexicon returns the built-in lexicon.
func DefaultLexicon() (Lexicon, error) {
	return ParseLexicon(defaultLexicon)
}

// LoadLexicon reads a YAML lexicon from path, or the built-in one when path is empty.
func LoadLexicon(path string) (Lexicon, error) {
	if path == "" {
		return DefaultLexicon()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return ParseLexicon(data)
}

// ParseLexicon decodes a YAML lexicon document with a top-level "words" map.
func ParseLexicon(data []byte) (Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	return f.Words, nil
}

// New validates the lexicon and builds a scorer over a private copy of it.
func New(lexicon Lexicon) (*Scorer, error) {
	if len(lexicon) == 0 {
		return nil, ErrEmptyLexicon
	}

	own := make(Lexicon, len(lexicon))
	for word, valence := range lexicon {
		if valence < minValence || valence > maxValence {
			return nil, fmt.Errorf("%w: %q=%d", ErrInvalidValence, word, valence)
		}
		tokens := nlp.Tokenize(word)
		if len(tokens) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, word)
		}
		own[tokens[0]] = valence
	}
	return &Scorer{lexicon: own}, nil
}

// Analyze sums the valence of every token of text. Tokens missing from the
// lexicon count as zero.
func (s *Scorer) Analyze(text string) Result {
	res := Result{Text: text}

	tokens := nlp.Tokenize(text)
	for _, tok := range tokens {
		v, ok := s.lexicon[tok]
		if !ok {
			continue
		}
		res.Score += v
		switch {
		case v > 0:
			res.Positive = append(res.Positive, tok)
		case v < 0:
			res.Negative = append(res.Negative, tok)
		}
	}
	if len(tokens) > 0 {
		res.Comparative = float64(res.Score) / float64(len(tokens))
	}
	return res
}

// Score returns only the integer score of text.
func (s *Scorer) Score(text string) int {
	return s.Analyze(text).Score
}
