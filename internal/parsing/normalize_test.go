package parsing

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\r\n ", ""},
		{"lowercases", "Senior React Developer", "senior react developer"},
		{"keeps tech punctuation", "C++, C#, Node.js!", "c++ c# node.js"},
		{"collapses newlines", "Python\r\n\r\nSQL\nGo", "python sql go"},
		{"replaces symbols", "CI/CD & (AWS)", "ci cd aws"},
		{"hyphen splits tokens", "scikit-learn", "scikit learn"},
		{"underscore is a word character", "snake_case", "snake_case"},
		{"non-ascii letters become spaces", "café résumé", "caf r sum"},
		{"tabs collapse", "go\t\tlang", "go lang"},
		{"email", "Email: a@b.com", "email a b.com"},
		{"non-breaking space", "react native", "react native"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestNormalizer_FoldAccents(t *testing.T) {
	n := Normalizer{FoldAccents: true}

	assert.Equal(t, "cafe resume", n.Normalize("Café Résumé"))
	assert.Equal(t, "naive", n.Normalize("naïve"))
	assert.Equal(t, "node.js", n.Normalize("Node.js"))
	assert.Equal(t, "", n.Normalize(""))
}

var normalizedAlphabet = regexp.MustCompile(`^[a-z0-9_ .#+]*$`)

func TestNormalizeText_Properties(t *testing.T) {
	inputs := []string{
		"Hello,   World!!",
		"  leading and trailing  ",
		"ÄÖÜ straße İstanbul",
		"emoji 🚀 rocket",
		"mixed\r\n\tC# .NET　stack",
		"\xff\xfe invalid utf8",
		"KK kelvin",
		"a..b##c++",
	}

	r := rand.New(rand.NewSource(42))
	pool := []rune("abcXYZ019 .#+-/_,;:!?\t\r\né Kİ🚀")
	for i := 0; i < 200; i++ {
		var sb strings.Builder
		for j := 0; j < r.Intn(40); j++ {
			sb.WriteRune(pool[r.Intn(len(pool))])
		}
		inputs = append(inputs, sb.String())
	}

	for _, input := range inputs {
		out := NormalizeText(input)
		assert.Regexp(t, normalizedAlphabet, out, "input %q", input)
		assert.NotContains(t, out, "  ", "input %q", input)
		assert.Equal(t, strings.TrimSpace(out), out, "input %q", input)
		assert.Equal(t, out, NormalizeText(out), "not idempotent for %q", input)
	}
}
