// Package intent implements a multinomial naive Bayes text classifier that
// maps free text onto a small closed set of conversational intents.
package intent

import (
	"errors"
	"fmt"
	"math"

	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp"
)

var (
	ErrEmptyCorpus  = errors.New("empty corpus")
	ErrEmptyExample = errors.New("example has no tokens")
	ErrUnknownLabel = errors.New("unknown label")
)

// Score is the classification score of one label.
type Score struct {
	Label Label
	Value float64
}

// Classifier is an immutable trained model. It is safe for concurrent use.
type Classifier struct {
	labels      []Label
	tokenCounts map[Label]map[string]int
	tokenTotals map[Label]int
	docCounts   map[Label]int
	docs        int
	vocab       map[string]struct{}
}

// Train builds a classifier from the corpus. Labels keep the order in which
// they first appear.
func Train(corpus Corpus) (*Classifier, error) {
	if len(corpus.Examples) == 0 {
		return nil, ErrEmptyCorpus
	}

	c := &Classifier{
		tokenCounts: make(map[Label]map[string]int),
		tokenTotals: make(map[Label]int),
		docCounts:   make(map[Label]int),
		vocab:       make(map[string]struct{}),
	}

	for i, ex := range corpus.Examples {
		label, err := ParseLabel(ex.Label)
		if err != nil {
			return nil, fmt.Errorf("example %d: %w", i, err)
		}
		if label == LabelUnknown {
			return nil, fmt.Errorf("example %d: %w: %q is reserved", i, ErrUnknownLabel, label)
		}
		tokens := nlp.Tokenize(ex.Text)
		if len(tokens) == 0 {
			return nil, fmt.Errorf("example %d (%q): %w", i, ex.Text, ErrEmptyExample)
		}

		counts, seen := c.tokenCounts[label]
		if !seen {
			counts = make(map[string]int)
			c.tokenCounts[label] = counts
			c.labels = append(c.labels, label)
		}
		for _, tok := range tokens {
			counts[tok]++
			c.vocab[tok] = struct{}{}
		}
		c.tokenTotals[label] += len(tokens)
		c.docCounts[label]++
		c.docs++
	}

	return c, nil
}

// Labels returns the trained labels in training order.
func (c *Classifier) Labels() []Label {
	out := make([]Label, len(c.labels))
	copy(out, c.labels)
	return out
}

// Scores returns one score per trained label, in training order. It returns
// nil when no token of text is in the vocabulary.
func (c *Classifier) Scores(text string) []Score {
	tokens := nlp.Tokenize(text)
	if !c.anyKnown(tokens) {
		return nil
	}

	vocabSize := float64(len(c.vocab))
	scores := make([]Score, 0, len(c.labels))
	for _, label := range c.labels {
		counts := c.tokenCounts[label]
		denom := float64(c.tokenTotals[label]) + vocabSize

		var sum float64
		for _, tok := range tokens {
			sum += math.Log((float64(counts[tok]) + 1) / denom)
		}
		// Prior weight is the label's relative document frequency.
		sum += float64(c.docCounts[label]) / float64(c.docs)

		scores = append(scores, Score{Label: label, Value: sum})
	}
	return scores
}

// Classify returns the highest scoring label. Ties go to the label trained
// first. Text sharing no token with the corpus is LabelUnknown.
func (c *Classifier) Classify(text string) Label {
	scores := c.Scores(text)
	if len(scores) == 0 {
		return LabelUnknown
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.Value > best.Value {
			best = s
		}
	}
	return best.Label
}

func (c *Classifier) anyKnown(tokens []string) bool {
	for _, tok := range tokens {
		if _, ok := c.vocab[tok]; ok {
			return true
		}
	}
	return false
}
