// Package smartreply suggests canned replies for texts that exactly match a
// known prompt after normalization.
package smartreply

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp"
)

//go:embed replies.yaml
var defaultTable []byte

var (
	ErrEmptyTable   = errors.New("empty reply table")
	ErrEmptyReplies = errors.New("prompt has no replies")
	ErrDuplicateKey = errors.New("duplicate prompt after normalization")
)

// Table maps a prompt to its ordered replies.
type Table map[string][]string

type tableFile struct {
	Replies Table `yaml:"replies"`
}

// Suggester is an immutable exact-match reply table.
type Suggester struct {
	table Table
}

// DefaultTable returns the built-in reply table.
func DefaultTable() (Table, error) {
	return ParseTable(defaultTable)
}

// LoadTable reads a YAML reply table from path, or the built-in one when path is empty.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return DefaultTable()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reply table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes a YAML document with a top-level "replies" map.
func ParseTable(data []byte) (Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode reply table: %w", err)
	}
	return f.Replies, nil
}

// New normalizes every prompt and builds a suggester.
func New(table Table) (*Suggester, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}

	own := make(Table, len(table))
	for prompt, replies := range table {
		if len(replies) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyReplies, prompt)
		}
		key := nlp.Normalize(prompt)
		if _, dup := own[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, prompt)
		}
		own[key] = append([]string(nil), replies...)
	}
	return &Suggester{table: own}, nil
}

// Suggest returns the replies for text, or false when there is no exact match.
func (s *Suggester) Suggest(text string) ([]string, bool) {
	replies, ok := s.table[nlp.Normalize(text)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), replies...), true
}
