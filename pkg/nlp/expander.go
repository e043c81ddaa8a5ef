package nlp

import (
	"strings"

	"RuleChatbot/pkg/lexicon"
)

// Expand returns tokens plus every synonym the lexicon knows for each token.
// The input set is left untouched.
func Expand(tokens TokenSet, lex lexicon.ILexicon) TokenSet {
	expanded := tokens.Clone()
	if lex == nil {
		return expanded
	}

	for token := range tokens {
		for _, synonym := range lex.Lookup(token) {
			expanded.Add(strings.ToLower(synonym))
		}
	}
	return expanded
}
