package lexicon

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	querySynsetLemmas = `
		SELECT s.synsetid, y.pos, w.lemma
		FROM senses s
		JOIN words w ON w.wordid = s.wordid
		JOIN synsets y ON y.synsetid = s.synsetid
		ORDER BY s.synsetid, w.lemma
	`

	queryMorphExceptions = `
		SELECT m.morph, mm.pos, w.lemma
		FROM morphmaps mm
		JOIN morphs m ON m.morphid = mm.morphid
		JOIN words w ON w.wordid = mm.wordid
		ORDER BY m.morph, w.lemma
	`
)

type synsetLemmaRow struct {
	SynsetID int64  `db:"synsetid"`
	POS      string `db:"pos"`
	Lemma    string `db:"lemma"`
}

type morphRow struct {
	Morph string `db:"morph"`
	POS   string `db:"pos"`
	Lemma string `db:"lemma"`
}

// OpenSQL connects to a WordNet SQL build, reads it fully into memory and
// closes the connection. Supported drivers are "postgres" and "sqlite".
func OpenSQL(ctx context.Context, driver, dsn string) (*Thesaurus, error) {
	switch driver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("%w: unsupported sql driver %q", ErrUnavailable, driver)
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer db.Close()

	return LoadSQL(ctx, db)
}

// LoadSQL builds a Thesaurus from an open connection. The caller keeps
// ownership of db.
func LoadSQL(ctx context.Context, db *sqlx.DB) (*Thesaurus, error) {
	var lemmas []synsetLemmaRow
	if err := db.SelectContext(ctx, &lemmas, querySynsetLemmas); err != nil {
		return nil, fmt.Errorf("%w: select synsets: %v", ErrUnavailable, err)
	}

	var morphs []morphRow
	if err := db.SelectContext(ctx, &morphs, queryMorphExceptions); err != nil {
		return nil, fmt.Errorf("%w: select morphs: %v", ErrUnavailable, err)
	}

	b := NewBuilder()
	for _, row := range lemmas {
		pos, err := ParsePOS(row.POS)
		if err != nil {
			continue
		}
		b.AddSynset(pos, strconv.FormatInt(row.SynsetID, 10), row.Lemma)
	}
	for _, row := range morphs {
		pos, err := ParsePOS(row.POS)
		if err != nil {
			continue
		}
		b.AddException(pos, row.Morph, row.Lemma)
	}

	return b.Build()
}
