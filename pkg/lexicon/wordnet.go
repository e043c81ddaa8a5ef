package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var wordnetFiles = []struct {
	pos  POS
	data string
	exc  string
}{
	{Noun, "data.noun", "noun.exc"},
	{Verb, "data.verb", "verb.exc"},
	{Adjective, "data.adj", "adj.exc"},
	{Adverb, "data.adv", "adv.exc"},
}

// LoadWordNet reads a WordNet dict directory. Every data file must exist;
// exception lists are optional.
func LoadWordNet(dir string) (*Thesaurus, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrUnavailable, dir)
	}

	b := NewBuilder()
	for _, f := range wordnetFiles {
		if err := readFile(filepath.Join(dir, f.data), func(r io.Reader) error {
			return parseDataFile(b, r)
		}); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, f.data, err)
		}

		err := readFile(filepath.Join(dir, f.exc), func(r io.Reader) error {
			return parseExceptionFile(b, f.pos, r)
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, f.exc, err)
		}
	}

	return b.Build()
}

func readFile(path string, parse func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return parse(f)
}

// parseDataFile handles lines of the form
//
//	synset_offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] ...
//
// where w_cnt is a two digit hexadecimal number.
func parseDataFile(b *Builder, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "  ") {
			continue
		}
		if i := strings.Index(line, " | "); i >= 0 {
			line = line[:i]
		}

		fields := strings.Fields(line)
		if len(fields) < 4 {
			return fmt.Errorf("line %d: too few fields", lineNo)
		}

		pos, err := ParsePOS(fields[2])
		if err != nil {
			return fmt.Errorf("line %d: %w %q", lineNo, err, fields[2])
		}

		count, err := strconv.ParseUint(fields[3], 16, 8)
		if err != nil {
			return fmt.Errorf("line %d: bad word count %q", lineNo, fields[3])
		}
		if len(fields) < 4+2*int(count) {
			return fmt.Errorf("line %d: expected %d words", lineNo, count)
		}

		lemmas := make([]string, 0, count)
		for i := 0; i < int(count); i++ {
			lemmas = append(lemmas, stripMarker(fields[4+2*i]))
		}
		b.AddSynset(pos, fields[0], lemmas...)
	}

	return scanner.Err()
}

// parseExceptionFile handles "inflected base [base...]" lines.
func parseExceptionFile(b *Builder, pos POS, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		b.AddException(pos, fields[0], fields[1:]...)
	}
	return scanner.Err()
}

// stripMarker removes adjective syntactic markers such as "(a)" or "(ip)".
func stripMarker(word string) string {
	if !strings.HasSuffix(word, ")") {
		return word
	}
	if i := strings.LastIndexByte(word, '('); i > 0 {
		return word[:i]
	}
	return word
}
