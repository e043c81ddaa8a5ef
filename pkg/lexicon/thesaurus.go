package lexicon

import (
	"fmt"
	"strings"
)

// Thesaurus is an immutable in-memory WordNet-style synonym database.
// It is safe for concurrent use once built.
type Thesaurus struct {
	index      map[POS]map[string][]string
	synsets    map[string][]string
	exceptions map[POS]map[string][]string
}

// Builder accumulates synsets and morphological exceptions before freezing
// them into a Thesaurus.
type Builder struct {
	t     *Thesaurus
	built bool
}

func NewBuilder() *Builder {
	t := &Thesaurus{
		index:      make(map[POS]map[string][]string),
		synsets:    make(map[string][]string),
		exceptions: make(map[POS]map[string][]string),
	}
	for _, pos := range posOrder {
		t.index[pos] = make(map[string][]string)
		t.exceptions[pos] = make(map[string][]string)
	}
	return &Builder{t: t}
}

// AddSynset registers the lemmas of one synset. The id only needs to be
// unique within its part of speech.
func (b *Builder) AddSynset(pos POS, id string, lemmas ...string) {
	pos = pos.canonical()
	if _, ok := b.t.index[pos]; !ok {
		return
	}

	key := fmt.Sprintf("%c:%s", pos, id)
	for _, lemma := range lemmas {
		lemma = strings.ToLower(strings.TrimSpace(lemma))
		if lemma == "" {
			continue
		}
		if !contains(b.t.synsets[key], lemma) {
			b.t.synsets[key] = append(b.t.synsets[key], lemma)
		}
		if !contains(b.t.index[pos][lemma], key) {
			b.t.index[pos][lemma] = append(b.t.index[pos][lemma], key)
		}
	}
}

// AddException maps an irregular inflected form to its base forms.
func (b *Builder) AddException(pos POS, form string, bases ...string) {
	pos = pos.canonical()
	exc, ok := b.t.exceptions[pos]
	if !ok {
		return
	}

	form = strings.ToLower(strings.TrimSpace(form))
	if form == "" {
		return
	}
	for _, base := range bases {
		base = strings.ToLower(strings.TrimSpace(base))
		if base != "" && !contains(exc[form], base) {
			exc[form] = append(exc[form], base)
		}
	}
}

func (b *Builder) Build() (*Thesaurus, error) {
	if b.built {
		return nil, fmt.Errorf("thesaurus builder already used")
	}
	if len(b.t.synsets) == 0 {
		return nil, ErrEmpty
	}
	b.built = true
	return b.t, nil
}

// Lookup returns every lemma of every synset reachable from word, consulting
// nouns, verbs, adjectives and adverbs in that order. Multi-word lemmas keep
// their underscores.
func (t *Thesaurus) Lookup(word string) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	for _, pos := range posOrder {
		for _, form := range t.morphy(word, pos) {
			for _, key := range t.index[pos][form] {
				for _, lemma := range t.synsets[key] {
					if _, ok := seen[lemma]; ok {
						continue
					}
					seen[lemma] = struct{}{}
					out = append(out, lemma)
				}
			}
		}
	}
	return out
}

// Synsets reports how many synsets were loaded.
func (t *Thesaurus) Synsets() int {
	return len(t.synsets)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
