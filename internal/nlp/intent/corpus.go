package intent

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var defaultCorpus []byte

// Example is one labeled training text.
type Example struct {
	Text  string `yaml:"text"`
	Label string `yaml:"label"`
}

// Corpus is an ordered list of training examples. Order matters: it decides
// how ties between labels are broken.
type Corpus struct {
	Examples []Example `yaml:"examples"`
}

// DefaultCorpus returns the built-in training corpus.
func DefaultCorpus() (Corpus, error) {
	return ParseCorpus(defaultCorpus)
}

// LoadCorpus reads a YAML corpus from path, or the built-in corpus when path is empty.
func LoadCorpus(path string) (Corpus, error) {
	if path == "" {
		return DefaultCorpus()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("read corpus: %w", err)
	}
	return ParseCorpus(data)
}

// ParseCorpus decodes a YAML corpus document.
func ParseCorpus(data []byte) (Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Corpus{}, fmt.Errorf("decode corpus: %w", err)
	}
	return c, nil
}
