package lexicon

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type yamlSynset struct {
	ID     string   `yaml:"id"`
	POS    string   `yaml:"pos"`
	Lemmas []string `yaml:"lemmas"`
}

type yamlThesaurus struct {
	Synsets    []yamlSynset                   `yaml:"synsets"`
	Exceptions map[string]map[string][]string `yaml:"exceptions"`
}

// LoadYAML reads a thesaurus file of the form
//
//	synsets:
//	  - pos: v
//	    lemmas: [steal]
//	exceptions:
//	  v:
//	    stolen: [steal]
func LoadYAML(path string) (*Thesaurus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return ParseYAML(data)
}

func ParseYAML(data []byte) (*Thesaurus, error) {
	var doc yamlThesaurus
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrUnavailable, err)
	}

	b := NewBuilder()
	for i, s := range doc.Synsets {
		pos, err := ParsePOS(s.POS)
		if err != nil {
			return nil, fmt.Errorf("synset %d: %w %q", i, err, s.POS)
		}
		id := s.ID
		if id == "" {
			id = "yaml-" + strconv.Itoa(i)
		}
		b.AddSynset(pos, id, s.Lemmas...)
	}

	for tag, forms := range doc.Exceptions {
		pos, err := ParsePOS(tag)
		if err != nil {
			return nil, fmt.Errorf("exceptions: %w %q", err, tag)
		}
		for form, bases := range forms {
			b.AddException(pos, form, bases...)
		}
	}

	return b.Build()
}
