package lexicon

import (
	"errors"
	"strings"
)

// POS is a WordNet part-of-speech tag.
type POS byte

const (
	Noun      POS = 'n'
	Verb      POS = 'v'
	Adjective POS = 'a'
	Satellite POS = 's'
	Adverb    POS = 'r'
)

// posOrder is the order in which parts of speech are consulted on lookup.
var posOrder = []POS{Noun, Verb, Adjective, Adverb}

var (
	ErrUnavailable = errors.New("synonym database unavailable")
	ErrEmpty       = errors.New("synonym database has no synsets")
	ErrUnknownPOS  = errors.New("unknown part of speech")
)

// ILexicon is the read-only synonym database consulted during expansion.
// Lookup never fails; an unknown word yields an empty result.
type ILexicon interface {
	Lookup(word string) []string
}

// ParsePOS accepts single-letter WordNet tags and their long names.
func ParsePOS(s string) (POS, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "noun":
		return Noun, nil
	case "v", "verb":
		return Verb, nil
	case "a", "adj", "adjective":
		return Adjective, nil
	case "s", "satellite":
		return Adjective, nil
	case "r", "adv", "adverb":
		return Adverb, nil
	}
	return 0, ErrUnknownPOS
}

func (p POS) String() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective, Satellite:
		return "adj"
	case Adverb:
		return "adv"
	}
	return "unknown"
}

// canonical folds adjective satellites into adjectives.
func (p POS) canonical() POS {
	if p == Satellite {
		return Adjective
	}
	return p
}
