package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases s, folds accents and turns every non-alphanumeric
// rune into a single separating space.
func Normalize(s string) string {
	// transform chains carry state, so one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokens returns the normalized words of s.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// Text is a tokenized utterance ready for phrase matching.
type Text struct {
	tokens []string
}

func NewText(s string) Text {
	return Text{tokens: Tokens(s)}
}

func (t Text) Tokens() []string { return t.tokens }

func (t Text) Len() int { return len(t.tokens) }

// Count returns how many times phrase occurs as a contiguous token run.
func (t Text) Count(phrase string) int {
	p := Tokens(phrase)
	if len(p) == 0 || len(p) > len(t.tokens) {
		return 0
	}
	n := 0
	for i := 0; i+len(p) <= len(t.tokens); i++ {
		match := true
		for j := range p {
			if t.tokens[i+j] != p[j] {
				match = false
				break
			}
		}
		if match {
			n++
		}
	}
	return n
}

func (t Text) Has(phrase string) bool { return t.Count(phrase) > 0 }

// CountAll sums the occurrences of every phrase in the list.
func (t Text) CountAll(phrases []string) int {
	n := 0
	for _, p := range phrases {
		n += t.Count(p)
	}
	return n
}

func (t Text) HasAny(phrases []string) bool {
	for _, p := range phrases {
		if t.Has(p) {
			return true
		}
	}
	return false
}

// Distinct returns the number of different phrases that occur at least once.
// Phrases that normalize to the same token run are counted once.
func (t Text) Distinct(phrases []string) int {
	seen := map[string]bool{}
	n := 0
	for _, p := range phrases {
		key := Normalize(p)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if t.Has(p) {
			n++
		}
	}
	return n
}
