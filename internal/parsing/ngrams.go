package parsing

import "strings"

// MaxNGram is the longest phrase, in tokens, produced by GenerateNGrams.
const MaxNGram = 3

// Tokenize splits normalized text on single spaces.
func Tokenize(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// GenerateNGrams returns every contiguous 1-, 2- and 3-token phrase of normalized text.
// Phrases are emitted per start index: unigram, then bigram, then trigram.
func GenerateNGrams(normalized string) []string {
	tokens := Tokenize(normalized)
	if len(tokens) == 0 {
		return nil
	}

	ngrams := make([]string, 0, len(tokens)*MaxNGram)
	for i := range tokens {
		for n := 1; n <= MaxNGram && i+n <= len(tokens); n++ {
			ngrams = append(ngrams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return ngrams
}
