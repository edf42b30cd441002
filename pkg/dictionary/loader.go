// Package dictionary reads word lists from disk and feeds them to a
// completion engine, one normalized token at a time.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// WordSink receives tokens produced by a Loader. suggest.Completer
// satisfies it.
type WordSink interface {
	AddWord(word string)
}

// Loader tokenizes a dictionary file: tokens are whitespace separated and
// trailing ASCII punctuation is stripped from each one. Leading and
// internal punctuation is preserved, so "don't" stays intact while "end."
// becomes "end".
type Loader struct {
	path       string
	stripPunct bool
}

// NewLoader returns a loader for path. stripPunct disables the trailing
// punctuation trim when false, which keeps raw tokens for debugging.
func NewLoader(path string, stripPunct bool) *Loader {
	return &Loader{path: path, stripPunct: stripPunct}
}

// Load opens the file and streams every token into sink. It returns how
// many tokens were added.
func (l *Loader) Load(sink WordSink) (int, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return 0, fmt.Errorf("open dictionary %s: %w", l.path, err)
	}
	defer file.Close()

	start := time.Now()
	count, err := l.LoadReader(file, sink)
	if err != nil {
		return count, fmt.Errorf("read dictionary %s: %w", l.path, err)
	}
	log.Debugf("Loaded %d words from %s in %v", count, l.path, time.Since(start))
	return count, nil
}

// LoadReader tokenizes r line by line. A token that is entirely
// punctuation trims down to the empty string and is still handed to the
// sink; the trie records it at the root where no prediction can reach it.
func (l *Loader) LoadReader(r io.Reader, sink WordSink) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	for scanner.Scan() {
		for _, token := range strings.Fields(scanner.Text()) {
			if l.stripPunct {
				token = strings.TrimRightFunc(token, isASCIIPunct)
			}
			sink.AddWord(token)
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return count, err
	}
	return count, nil
}

// isASCIIPunct reports whether r is one of the 32 ASCII punctuation
// characters: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
func isASCIIPunct(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
	case r >= ':' && r <= '@':
	case r >= '[' && r <= '`':
	case r >= '{' && r <= '~':
	default:
		return false
	}
	return true
}
