package lexicon

import "strings"

type substitution struct {
	suffix  string
	replace string
}

var detachmentRules = map[POS][]substitution{
	Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
	Adverb: nil,
}

// morphy returns the base forms of word for pos that exist in the index.
// An exception list entry short-circuits the detachment rules.
func (t *Thesaurus) morphy(word string, pos POS) []string {
	if bases, ok := t.exceptions[pos][word]; ok {
		return t.filterForms(pos, append([]string{word}, bases...))
	}

	forms := applyRules(pos, []string{word})
	if found := t.filterForms(pos, append([]string{word}, forms...)); len(found) > 0 {
		return found
	}

	for len(forms) > 0 {
		forms = applyRules(pos, forms)
		if found := t.filterForms(pos, forms); len(found) > 0 {
			return found
		}
	}
	return nil
}

func applyRules(pos POS, forms []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, form := range forms {
		for _, rule := range detachmentRules[pos] {
			if !strings.HasSuffix(form, rule.suffix) {
				continue
			}
			base := strings.TrimSuffix(form, rule.suffix) + rule.replace
			if _, ok := seen[base]; ok {
				continue
			}
			seen[base] = struct{}{}
			out = append(out, base)
		}
	}
	return out
}

func (t *Thesaurus) filterForms(pos POS, forms []string) []string {
	var out []string
	for _, form := range forms {
		if _, ok := t.index[pos][form]; !ok {
			continue
		}
		if !contains(out, form) {
			out = append(out, form)
		}
	}
	return out
}
