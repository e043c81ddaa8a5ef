package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"RuleChatbot/internal/config"
	"RuleChatbot/pkg/lexicon"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const loadTimeout = 2 * time.Minute

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "intentctl",
		Short: "Query the rule-based chatbot from the terminal",
		Long: `intentctl runs the same normalize, synonym expansion and intent matching
pipeline as the chat server, against the synonym database configured in
the environment or on the command line.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("source", "", "synonym database: wordnet, sql or yaml (or set LEXICON_SOURCE)")
	flags.String("wordnet-dir", "", "WordNet dict directory (or set WORDNET_DIR)")
	flags.String("sql-driver", "", "postgres or sqlite (or set LEXICON_SQL_DRIVER)")
	flags.String("sql-dsn", "", "WordNet SQL connection string (or set LEXICON_SQL_DSN)")
	flags.String("yaml-path", "", "YAML thesaurus file (or set LEXICON_YAML_PATH)")
	flags.Bool("debug", false, "log lexicon loading details")

	for key, flag := range map[string]string{
		"lexicon_source":     "source",
		"wordnet_dir":        "wordnet-dir",
		"lexicon_sql_driver": "sql-driver",
		"lexicon_sql_dsn":    "sql-dsn",
		"lexicon_yaml_path":  "yaml-path",
		"debug":              "debug",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
	v.SetDefault("lexicon_sql_driver", "postgres")
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newMatchCmd(v),
		newIntentsCmd(),
		newSynonymsCmd(v),
	)

	return rootCmd
}

func newLogger(v *viper.Viper) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&formatter.Formatter{
		TimestampFormat: "15:04:05",
		NoColors:        true,
	})

	logger.SetLevel(logrus.WarnLevel)
	if v.GetBool("debug") {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func loadLexicon(ctx context.Context, v *viper.Viper) (*lexicon.Thesaurus, error) {
	env := &config.Env{
		LexiconSource:    v.GetString("lexicon_source"),
		WordNetDir:       v.GetString("wordnet_dir"),
		LexiconSQLDriver: v.GetString("lexicon_sql_driver"),
		LexiconSQLDSN:    v.GetString("lexicon_sql_dsn"),
		LexiconYAMLPath:  v.GetString("lexicon_yaml_path"),
	}

	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	thesaurus, err := config.NewLexicon(ctx, env, newLogger(v))
	if err != nil {
		return nil, fmt.Errorf("load synonym database: %w", err)
	}
	return thesaurus, nil
}
