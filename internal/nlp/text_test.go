package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "punctuation only", in: "?!...", want: []string{}},
		{name: "question", in: "How are you?", want: []string{"how", "are", "you"}},
		{name: "apostrophe splits", in: "You're GREAT", want: []string{"you", "re", "great"}},
		{name: "digits kept", in: "room 42, now", want: []string{"room", "42", "now"}},
		{name: "extra whitespace", in: "  thank\tyou \n", want: []string{"thank", "you"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "thanks", Normalize("  THANKS "))
	assert.Equal(t, "thanks!", Normalize("Thanks!"))
	assert.Equal(t, "how are you?", Normalize("How Are You?"))
	assert.Equal(t, "", Normalize("   "))
}
