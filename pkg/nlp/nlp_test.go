package nlp

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"RuleChatbot/pkg/lexicon"
)

type mapLexicon map[string][]string

func (m mapLexicon) Lookup(word string) []string {
	return m[word]
}

func newTestResponder(t *testing.T, lex lexicon.ILexicon) IResponder {
	t.Helper()
	r, err := NewResponder(DefaultCatalog(), lex)
	if err != nil {
		t.Fatalf("NewResponder: %v", err)
	}
	return r
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: []string{}},
		{name: "punctuation only", input: "?!.,;", expected: []string{}},
		{name: "case folded and deduplicated", input: "Hello, Hello!!", expected: []string{"hello"}},
		{name: "digits removed inside words", input: "xyz123!!!", expected: []string{"xyz"}},
		{name: "apostrophe joins word", input: "I couldn't", expected: []string{"couldnt", "i"}},
		{name: "accented letters dropped", input: "café résumé", expected: []string{"caf", "rsum"}},
		{name: "whitespace runs", input: "  lost \t\n my   card ", expected: []string{"card", "lost", "my"}},
		{name: "non latin script", input: "привет", expected: []string{}},
		{name: "ascii separators split words", input: "hello\x1cmorning\x1fbye", expected: []string{"bye", "hello", "morning"}},
		{name: "unicode spaces split words", input: "lost\u00a0my\u2028card", expected: []string{"card", "lost", "my"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input).Sorted()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Normalize(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"Hello, Hello!!", "I LOST my Card... 42 times", "Good   evening?"}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(strings.Join(once.Sorted(), " "))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("re-normalizing %q changed %v to %v", input, once.Sorted(), twice.Sorted())
		}
	}
}

func TestExpand(t *testing.T) {
	lex := mapLexicon{
		"purloined": {"purloined", "Stolen"},
		"howdy":     {"hello", "hi", "howdy"},
	}

	tokens := NewTokenSet("purloined", "howdy", "xyz")
	expanded := Expand(tokens, lex)

	expected := []string{"hello", "hi", "howdy", "purloined", "stolen", "xyz"}
	if got := expanded.Sorted(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expand = %v, expected %v", got, expected)
	}
	if tokens.Len() != 3 {
		t.Errorf("input set was modified: %v", tokens.Sorted())
	}

	if got := Expand(NewTokenSet(), lex); got.Len() != 0 {
		t.Errorf("expected empty expansion, got %v", got.Sorted())
	}
}

func TestRespond(t *testing.T) {
	lex := mapLexicon{
		"purloined": {"purloined", "stolen"},
		"farewell":  {"farewell", "adieu", "bye", "goodbye"},
	}
	r := newTestResponder(t, lex)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tie between lost_item and lost_card goes to first defined",
			input:    "I lost my card",
			expected: "Please report the lost item and check the nearest lost-and-found.",
		},
		{
			name:     "tie between greeting and time_query goes to greeting",
			input:    "morning",
			expected: "Hello! How can I help you today?",
		},
		{
			name:     "higher score beats earlier intent",
			input:    "what is the best time in the morning",
			expected: "Early morning or evening is the best time.",
		},
		{
			name:     "record separator between words",
			input:    "hello\x1emorning",
			expected: "Hello! How can I help you today?",
		},
		{
			name:     "card only",
			input:    "My CREDIT card!",
			expected: "Please block your card immediately and request a new one.",
		},
		{
			name:     "synonym reaches keyword",
			input:    "my bag was purloined",
			expected: "Please report the lost item and check the nearest lost-and-found.",
		},
		{
			name:     "synonym expansion scores twice",
			input:    "farewell",
			expected: "Thank you! Have a great day.",
		},
		{
			name:     "digits and punctuation fall back",
			input:    "xyz123!!!",
			expected: Fallback,
		},
		{
			name:     "empty input falls back",
			input:    "",
			expected: Fallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Respond(tt.input); got != tt.expected {
				t.Errorf("Respond(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRespondAlwaysReturnsKnownText(t *testing.T) {
	r := newTestResponder(t, mapLexicon{})

	known := map[string]bool{Fallback: true}
	for _, intent := range DefaultCatalog().Intents() {
		known[intent.Response] = true
	}

	inputs := []string{"", " ", "\x00\xff", "🤖🤖", "hi bye", "night night", "QUIT", "found it", strings.Repeat("a ", 1000)}
	for _, input := range inputs {
		got := r.Respond(input)
		if got == "" || !known[got] {
			t.Errorf("Respond(%q) returned unexpected %q", input, got)
		}
	}
}

func TestClassify(t *testing.T) {
	r := newTestResponder(t, mapLexicon{})

	result := r.Classify("I lost my card")
	if result.Intent != "lost_item" || result.Score != 1 || !result.Matched {
		t.Errorf("unexpected result: %+v", result)
	}

	expectedScores := []IntentScore{
		{Intent: "lost_item", Score: 1},
		{Intent: "lost_card", Score: 1},
		{Intent: "greeting", Score: 0},
		{Intent: "time_query", Score: 0},
		{Intent: "goodbye", Score: 0},
	}
	if !reflect.DeepEqual(result.Scores, expectedScores) {
		t.Errorf("scores = %v, expected %v", result.Scores, expectedScores)
	}
	if !reflect.DeepEqual(result.Tokens, []string{"card", "i", "lost", "my"}) {
		t.Errorf("tokens = %v", result.Tokens)
	}

	miss := r.Classify("xyz")
	if miss.Matched || miss.Intent != "" || miss.Response != Fallback {
		t.Errorf("expected fallback result, got %+v", miss)
	}
}

func TestRespondWithThesaurus(t *testing.T) {
	th, err := lexicon.LoadYAML(filepath.Join("..", "lexicon", "testdata", "thesaurus.yaml"))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	r := newTestResponder(t, th)

	if got := r.Respond("Someone purloined my wallet"); got != "Please report the lost item and check the nearest lost-and-found." {
		t.Errorf("unexpected response %q", got)
	}
	if got := r.Respond("howdy"); got != "Hello! How can I help you today?" {
		t.Errorf("unexpected response %q", got)
	}
	if got := r.Respond("so long"); got != Fallback {
		t.Errorf("multi-word lemma should not match split words, got %q", got)
	}
}

func TestNewCatalog(t *testing.T) {
	tests := []struct {
		name    string
		intents []Intent
		want    error
	}{
		{name: "empty", want: ErrEmptyCatalog},
		{name: "no keywords", intents: []Intent{NewIntent("a", "resp")}, want: ErrInvalidIntent},
		{name: "no response", intents: []Intent{NewIntent("a", "", "k")}, want: ErrInvalidIntent},
		{name: "no name", intents: []Intent{NewIntent("", "resp", "k")}, want: ErrInvalidIntent},
		{
			name:    "duplicate",
			intents: []Intent{NewIntent("a", "r1", "k"), NewIntent("a", "r2", "j")},
			want:    ErrDuplicateIntent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.intents...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDefaultCatalogOrder(t *testing.T) {
	var names []string
	for _, intent := range DefaultCatalog().Intents() {
		names = append(names, intent.Name)
	}

	expected := []string{"lost_item", "lost_card", "greeting", "time_query", "goodbye"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("catalog order = %v, expected %v", names, expected)
	}
}

func TestNewResponderRequiresLexicon(t *testing.T) {
	if _, err := NewResponder(DefaultCatalog(), nil); err == nil {
		t.Error("expected error without lexicon")
	}
	if _, err := NewResponder(nil, mapLexicon{}); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}
