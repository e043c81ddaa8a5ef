package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"RuleChatbot/pkg/lexicon"

	"github.com/sirupsen/logrus"
)

// NewLexicon loads the synonym database selected by LEXICON_SOURCE. Every
// failure wraps lexicon.ErrUnavailable.
func NewLexicon(ctx context.Context, env *Env, log *logrus.Logger) (*lexicon.Thesaurus, error) {
	start := time.Now()

	var (
		thesaurus *lexicon.Thesaurus
		location  string
		err       error
	)

	switch env.LexiconSource {
	case LexiconWordNet:
		location = env.WordNetDir
		if location == "" {
			return nil, fmt.Errorf("%w: WORDNET_DIR is not set", lexicon.ErrUnavailable)
		}
		thesaurus, err = lexicon.LoadWordNet(location)

	case LexiconSQL:
		location = env.LexiconSQLDriver
		if env.LexiconSQLDSN == "" {
			return nil, fmt.Errorf("%w: LEXICON_SQL_DSN is not set", lexicon.ErrUnavailable)
		}
		thesaurus, err = lexicon.OpenSQL(ctx, env.LexiconSQLDriver, env.LexiconSQLDSN)

	case LexiconYAML:
		location = env.LexiconYAMLPath
		if location == "" {
			return nil, fmt.Errorf("%w: LEXICON_YAML_PATH is not set", lexicon.ErrUnavailable)
		}
		thesaurus, err = lexicon.LoadYAML(location)

	case "":
		return nil, fmt.Errorf("%w: LEXICON_SOURCE is not set", lexicon.ErrUnavailable)

	default:
		return nil, fmt.Errorf("%w: unknown LEXICON_SOURCE %q", lexicon.ErrUnavailable, env.LexiconSource)
	}

	if err != nil {
		if !errors.Is(err, lexicon.ErrUnavailable) {
			err = fmt.Errorf("%w: %w", lexicon.ErrUnavailable, err)
		}
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"source":   env.LexiconSource,
		"location": location,
		"synsets":  thesaurus.Synsets(),
		"took_ms":  time.Since(start).Milliseconds(),
	}).Info("Synonym database loaded")

	return thesaurus, nil
}
