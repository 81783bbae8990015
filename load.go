package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeWord trims a raw wordlist line, strips combining marks and
// lowercases it, so accented entries collapse onto the plain alphabet the
// tree compares byte-wise. Blank lines come back empty.
func normalizeWord(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if normal, _, err := transform.String(transformer, line); err == nil {
		line = normal
	}
	return strings.ToLower(line)
}

// ReadWords reads one word per line from r, normalized and with blank
// lines dropped, without touching any lexicon.
func ReadWords(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var words []string
	for scanner.Scan() {
		if w := normalizeWord(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return words, nil
}

// AddReader feeds every line of r through the same normalization as
// ReadWords and inserts it, returning how many words were newly added.
// Lines processed before a read error keep their effect on the lexicon;
// the returned count covers them.
func (lx *Lexicon) AddReader(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	added := 0
	for scanner.Scan() {
		w := normalizeWord(scanner.Text())
		if w == "" {
			continue
		}
		if lx.Add(w) {
			added++
		}
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("read words: %w", err)
	}
	return added, nil
}

// AddFile loads the wordlist at path, one word per line, and returns the
// number of words not previously present. A file that cannot be opened or
// read reports a non-nil error; a readable file contributing zero new
// words does not.
func (lx *Lexicon) AddFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open wordlist: %w", err)
	}
	defer f.Close()
	return lx.AddReader(f)
}
