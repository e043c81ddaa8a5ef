package nlp

import (
	"errors"
	"fmt"
	"strings"
)

const Fallback = "Sorry, I couldn't understand your request. Please rephrase."

var (
	ErrEmptyCatalog    = errors.New("intent catalog is empty")
	ErrInvalidIntent   = errors.New("invalid intent")
	ErrDuplicateIntent = errors.New("duplicate intent name")
)

type Intent struct {
	Name     string
	Keywords TokenSet
	Response string
}

func NewIntent(name, response string, keywords ...string) Intent {
	kw := NewTokenSet()
	for _, k := range keywords {
		kw.Add(strings.ToLower(strings.TrimSpace(k)))
	}
	return Intent{Name: name, Keywords: kw, Response: response}
}

// Catalog is the ordered, read-only list of intents. Order decides ties.
type Catalog struct {
	intents []Intent
	byName  map[string]int
}

func NewCatalog(intents ...Intent) (*Catalog, error) {
	if len(intents) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		intents: make([]Intent, 0, len(intents)),
		byName:  make(map[string]int, len(intents)),
	}
	for i, intent := range intents {
		switch {
		case intent.Name == "":
			return nil, fmt.Errorf("%w: intent %d has no name", ErrInvalidIntent, i)
		case intent.Keywords.Len() == 0:
			return nil, fmt.Errorf("%w: %s has no keywords", ErrInvalidIntent, intent.Name)
		case intent.Response == "":
			return nil, fmt.Errorf("%w: %s has no response", ErrInvalidIntent, intent.Name)
		}
		if _, ok := c.byName[intent.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIntent, intent.Name)
		}

		c.byName[intent.Name] = len(c.intents)
		c.intents = append(c.intents, Intent{
			Name:     intent.Name,
			Keywords: intent.Keywords.Clone(),
			Response: intent.Response,
		})
	}

	return c, nil
}

// Intents returns the intents in definition order.
func (c *Catalog) Intents() []Intent {
	out := make([]Intent, len(c.intents))
	copy(out, c.intents)
	return out
}

func (c *Catalog) Get(name string) (Intent, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Intent{}, false
	}
	return c.intents[i], true
}

func (c *Catalog) Len() int {
	return len(c.intents)
}

func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(defaultIntents()...)
	if err != nil {
		panic(err)
	}
	return catalog
}

func defaultIntents() []Intent {
	return []Intent{
		NewIntent("lost_item",
			"Please report the lost item and check the nearest lost-and-found.",
			"lost", "missing", "misplaced", "stolen", "found"),
		NewIntent("lost_card",
			"Please block your card immediately and request a new one.",
			"card", "credit", "debit"),
		NewIntent("greeting",
			"Hello! How can I help you today?",
			"hello", "hi", "hey", "morning", "evening"),
		NewIntent("time_query",
			"Early morning or evening is the best time.",
			"time", "best", "morning", "evening", "night"),
		NewIntent("goodbye",
			"Thank you! Have a great day.",
			"bye", "exit", "quit", "goodbye"),
	}
}
