package nlp

import (
	"errors"
	"time"

	"RuleChatbot/pkg/lexicon"
)

// Score counts, for every intent, how many of its keywords appear in the
// expanded tokens.
func Score(expanded TokenSet, catalog *Catalog) ScoreMap {
	scores := make(ScoreMap, catalog.Len())
	for _, intent := range catalog.intents {
		scores[intent.Name] = expanded.Intersect(intent.Keywords)
	}
	return scores
}

// Best scans the catalog in order and keeps the first intent holding the
// maximum score. ok is false when every score is zero.
func Best(scores ScoreMap, catalog *Catalog) (best Intent, score int, ok bool) {
	for _, intent := range catalog.intents {
		if s := scores[intent.Name]; s > score {
			best, score = intent, s
		}
	}
	return best, score, score > 0
}

// Match returns the response of the best intent or Fallback.
func Match(expanded TokenSet, catalog *Catalog) string {
	best, _, ok := Best(Score(expanded, catalog), catalog)
	if !ok {
		return Fallback
	}
	return best.Response
}

type Responder struct {
	catalog *Catalog
	lexicon lexicon.ILexicon
}

func NewResponder(catalog *Catalog, lex lexicon.ILexicon) (IResponder, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if lex == nil {
		return nil, errors.New("responder requires a lexicon")
	}

	return &Responder{
		catalog: catalog,
		lexicon: lex,
	}, nil
}

func (r *Responder) Respond(text string) string {
	return Match(Expand(Normalize(text), r.lexicon), r.catalog)
}

func (r *Responder) Classify(text string) *Result {
	startTime := time.Now()

	tokens := Normalize(text)
	expanded := Expand(tokens, r.lexicon)
	scores := Score(expanded, r.catalog)
	best, score, ok := Best(scores, r.catalog)

	result := &Result{
		Score:          score,
		Matched:        ok,
		Response:       Fallback,
		Scores:         make([]IntentScore, 0, r.catalog.Len()),
		Tokens:         tokens.Sorted(),
		ExpandedTokens: expanded.Sorted(),
	}
	if ok {
		result.Intent = best.Name
		result.Response = best.Response
	}
	for _, intent := range r.catalog.intents {
		result.Scores = append(result.Scores, IntentScore{
			Intent: intent.Name,
			Score:  scores[intent.Name],
		})
	}

	result.ProcessingTime = time.Since(startTime).String()
	return result
}

func (r *Responder) Catalog() *Catalog {
	return r.catalog
}
