package ingest

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer normalizes raw query text into analysis tokens: split on
// non-alphanumeric boundaries, lowercase, drop stopwords, and
// transliterate to 7-bit ASCII. Tokens that cannot be represented in
// ASCII after transliteration are dropped entirely rather than
// replaced, and never produce an error.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a tokenizer with the given stopword list. Each
// stopword is indexed under both its raw lowercase form and its
// transliterated form, so accented stopwords match either way.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		lower := strings.ToLower(w)
		stops[lower] = struct{}{}
		if ascii := transliterate(lower); ascii != "" {
			stops[ascii] = struct{}{}
		}
	}
	return &Tokenizer{stopwords: stops}
}

// stripMarks decomposes runes and removes their combining marks, so
// accented forms fold onto their ASCII base characters.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Tokenize splits text into normalized tokens. Already-normalized
// input is a fixed point: tokenizing the output again returns it
// unchanged.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		if word := t.processToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// processToken applies stopword filtering, then transliteration. The
// stopword check runs on both the surface form and the transliterated
// form: that keeps normalization a fixed point (an accented token that
// folds onto a stopword is dropped, not emitted to be dropped on a
// second pass).
func (t *Tokenizer) processToken(token string) string {
	if token == "" {
		return ""
	}
	if _, stop := t.stopwords[token]; stop {
		return ""
	}
	out := transliterate(token)
	if out == "" {
		return ""
	}
	if _, stop := t.stopwords[out]; stop {
		return ""
	}
	return out
}

// transliterate maps a token onto 7-bit ASCII. A token that still
// carries non-ASCII runes after mark stripping is unrepresentable and
// dropped (empty return); counts are never renormalized for drops.
func transliterate(token string) string {
	out, _, err := transform.String(stripMarks, token)
	if err != nil {
		return ""
	}
	for _, r := range out {
		if r > unicode.MaxASCII {
			return ""
		}
	}
	return out
}

// AddStopword adds a word to the stopword list.
func (t *Tokenizer) AddStopword(word string) {
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list.
func (t *Tokenizer) RemoveStopword(word string) {
	delete(t.stopwords, strings.ToLower(word))
}
