package suggest

import (
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"
)

// predictionCache memoizes ranked results per queried prefix. Entries are
// keyed in a patricia trie so that an insert can drop exactly the cached
// prefixes of the new word -- the only queries whose results can change.
type predictionCache struct {
	trie       *patricia.Trie
	entries    int
	maxEntries int
	mu         sync.Mutex
}

func newPredictionCache(maxEntries int) *predictionCache {
	return &predictionCache{
		trie:       patricia.NewTrie(),
		maxEntries: maxEntries,
	}
}

func (pc *predictionCache) lookup(prefix string) ([]Suggestion, bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	item := pc.trie.Get(patricia.Prefix(prefix))
	if item == nil {
		return nil, false
	}
	return item.([]Suggestion), true
}

func (pc *predictionCache) store(prefix string, results []Suggestion) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.entries >= pc.maxEntries {
		// Entries are cheap to recompute, a full reset beats tracking LRU.
		pc.trie = patricia.NewTrie()
		pc.entries = 0
	}
	if pc.trie.Insert(patricia.Prefix(prefix), results) {
		pc.entries++
	}
}

// invalidate drops every cached prefix of word, the word itself included.
// Cached results for any other prefix cannot observe the insert and stay
// valid.
func (pc *predictionCache) invalidate(word string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	var stale []patricia.Prefix
	pc.trie.VisitPrefixes(patricia.Prefix(word), func(p patricia.Prefix, _ patricia.Item) error {
		stale = append(stale, append(patricia.Prefix(nil), p...))
		return nil
	})
	for _, p := range stale {
		if pc.trie.Delete(p) {
			pc.entries--
		}
	}
}

func (pc *predictionCache) stats() map[string]int {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	return map[string]int{
		"cacheEntries":  pc.entries,
		"cacheCapacity": pc.maxEntries,
	}
}
