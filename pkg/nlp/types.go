package nlp

import "sort"

// TokenSet is a set of lowercase words taken from a single utterance.
type TokenSet map[string]struct{}

func NewTokenSet(words ...string) TokenSet {
	s := make(TokenSet, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

func (s TokenSet) Add(word string) {
	if word == "" {
		return
	}
	s[word] = struct{}{}
}

func (s TokenSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

func (s TokenSet) Len() int {
	return len(s)
}

func (s TokenSet) Clone() TokenSet {
	c := make(TokenSet, len(s))
	for w := range s {
		c[w] = struct{}{}
	}
	return c
}

// Intersect returns |s ∩ other|.
func (s TokenSet) Intersect(other TokenSet) int {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}

	n := 0
	for w := range small {
		if large.Has(w) {
			n++
		}
	}
	return n
}

// Sorted returns the members in lexical order.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// ScoreMap holds the keyword overlap count per intent name.
type ScoreMap map[string]int

type IntentScore struct {
	Intent string `json:"intent"`
	Score  int    `json:"score"`
}

type Result struct {
	Intent         string        `json:"intent"`
	Score          int           `json:"score"`
	Matched        bool          `json:"matched"`
	Response       string        `json:"response"`
	Scores         []IntentScore `json:"scores"`
	Tokens         []string      `json:"tokens"`
	ExpandedTokens []string      `json:"expanded_tokens"`
	ProcessingTime string        `json:"processing_time"`
}

type IResponder interface {
	Respond(text string) string
	Classify(text string) *Result
	Catalog() *Catalog
}
