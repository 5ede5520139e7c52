package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// clitics are split off the end of a word chunk before filtering, so "don't"
// yields "do" and "holmes's" yields "holmes".
var clitics = []string{"n't", "'s", "'ll", "'re", "'ve", "'d", "'m"}

// Tokenizer splits prose into lowercase alphabetic word tokens.
type Tokenizer struct{}

// NewTokenizer creates a tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// abbreviations are dotted words that never end a sentence, even before a capital.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "messrs": {}, "dr": {}, "prof": {}, "rev": {},
	"st": {}, "capt": {}, "col": {}, "gen": {}, "lt": {}, "sgt": {}, "jr": {},
	"sr": {}, "esq": {}, "mme": {}, "mlle": {}, "etc": {}, "vs": {}, "viz": {},
}

// Tokenize splits text into word chunks, lowercases them, and keeps only chunks made
// entirely of letters. Numbers, hyphenated compounds and dotted abbreviations are
// dropped. A run of two or more dashes or periods ends the chunk, so "hound--a" and
// "paused...and" keep both words.
func (t *Tokenizer) Tokenize(text string) []string {
	runes := []rune(text)
	var tokens []string
	var current []rune

	flush := func(next int) {
		if len(current) == 0 {
			return
		}
		if word := t.processChunk(string(current), sentenceEnds(runes, next)); word != "" {
			tokens = append(tokens, word)
		}
		current = current[:0]
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if isBreakMark(r) {
			j := i + 1
			for j < len(runes) && isBreakMark(runes[j]) {
				j++
			}
			if j-i > 1 {
				flush(j)
				i = j - 1
				continue
			}
		}
		if isWordRune(r) {
			if r == '’' {
				r = '\''
			}
			current = append(current, unicode.ToLower(r))
			continue
		}
		flush(i)
	}
	flush(len(runes))

	return tokens
}

// processChunk trims quote and dash marks, resolves a trailing period, splits
// clitics, and filters non-words. A trailing period is kept off the word only at a
// sentence end; otherwise the chunk is an abbreviation and is dropped.
func (t *Tokenizer) processChunk(chunk string, sentenceEnd bool) string {
	word := strings.TrimLeft(chunk, "'-.")
	word = strings.TrimRight(word, "'-")

	if stem, ok := strings.CutSuffix(word, "."); ok {
		if !sentenceEnd || isAbbreviation(stem) {
			return ""
		}
		word = strings.TrimRight(stem, "'-")
	}
	if word == "" {
		return ""
	}

	for _, c := range clitics {
		if len(word) > len(c) && strings.HasSuffix(word, c) {
			word = word[:len(word)-len(c)]
			break
		}
	}

	if !isAlphabetic(word) {
		return ""
	}
	return word
}

// sentenceEnds reports whether a period just before runes[i] closes a sentence: the
// next letter or digit is not lower-case, or the text ends.
func sentenceEnds(runes []rune, i int) bool {
	for ; i < len(runes); i++ {
		r := runes[i]
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return !unicode.IsLower(r)
		}
	}
	return true
}

// isAbbreviation reports whether stem, a chunk without its final period, is an
// abbreviation: dotted ("u.s"), a single-letter initial, or a known title.
func isAbbreviation(stem string) bool {
	if strings.Contains(stem, ".") {
		return true
	}
	if utf8.RuneCountInString(stem) == 1 {
		return stem != "a" && stem != "i"
	}
	_, ok := abbreviations[stem]
	return ok
}

func isBreakMark(r rune) bool {
	return r == '-' || r == '.'
}

// isWordRune reports whether r may appear inside a word chunk.
func isWordRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return true
	}
	switch r {
	case '-', '\'', '’', '.':
		return true
	}
	return false
}

// isAlphabetic returns true if s is non-empty and contains only letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
