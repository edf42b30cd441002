package suggest

import (
	"sort"

	"github.com/charmbracelet/log"
)

const (
	// minPrefixLen is the shortest prefix a prediction will accept.
	minPrefixLen = 1
	// maxResults caps every prediction.
	maxResults = 10

	cacheCapacity = 4096
)

// Suggestion is a single ranked completion.
type Suggestion struct {
	Word      string
	Frequency int
}

// Completer sits above the trie and turns raw subtree matches into a
// ranked top list. It holds no state of its own beyond the trie and the
// prediction cache.
type Completer struct {
	trie  *Trie
	cache *predictionCache
}

// NewCompleter returns an empty completion engine.
func NewCompleter() *Completer {
	return &Completer{
		trie:  NewTrie(),
		cache: newPredictionCache(cacheCapacity),
	}
}

// AddWord records one occurrence of word. No normalization happens here;
// callers hand in already-tokenized strings.
func (c *Completer) AddWord(word string) {
	c.trie.Insert(word)
	c.cache.invalidate(word)
}

// WordCount reports the number of distinct words added so far.
func (c *Completer) WordCount() int {
	return c.trie.Len()
}

// Predict returns up to ten completions for prefix, most frequent first
// and ties broken alphabetically. An empty prefix or one that matches no
// path in the trie yields an empty result, never an error.
func (c *Completer) Predict(prefix string) []string {
	suggestions := c.Complete(prefix)
	words := make([]string, len(suggestions))
	for i, s := range suggestions {
		words[i] = s.Word
	}
	return words
}

// Complete is Predict with frequencies attached, for callers that display
// or serialize rank information.
func (c *Completer) Complete(prefix string) []Suggestion {
	if len(prefix) < minPrefixLen {
		return nil
	}
	if hit, ok := c.cache.lookup(prefix); ok {
		log.Debugf("cache hit for prefix %q", prefix)
		return hit
	}

	anchor := c.trie.descend(prefix)
	if anchor == nil {
		return nil
	}
	suggestions := collect(anchor, nil)

	// Alphabetical pass first, then a stable pass on frequency: words tied
	// on frequency keep their ascending alphabetical order.
	sort.Slice(suggestions, func(i, j int) bool {
		return suggestions[i].Word < suggestions[j].Word
	})
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Frequency > suggestions[j].Frequency
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}
	c.cache.store(prefix, suggestions)
	return suggestions
}

// Stats returns counters about the engine, for diagnostics.
func (c *Completer) Stats() map[string]int {
	stats := map[string]int{
		"words": c.trie.Len(),
	}
	for k, v := range c.cache.stats() {
		stats[k] = v
	}
	return stats
}

// collect appends one Suggestion per terminal node in the subtree rooted
// at n, anchor included. Traversal order is irrelevant since the caller
// re-sorts the result.
func collect(n *node, acc []Suggestion) []Suggestion {
	if n.terminal {
		acc = append(acc, Suggestion{Word: n.word, Frequency: n.freq})
	}
	for _, child := range n.children {
		acc = collect(child, acc)
	}
	return acc
}
