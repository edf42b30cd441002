// Package suggest is the core: a character-indexed word trie with per-word
// insert counts, and the completion engine that ranks subtree matches by
// frequency with alphabetical tie-breaks.
package suggest

// ICompleter defines the surface the CLI and server consume.
type ICompleter interface {
	// Predict returns up to ten completions for a prefix, ranked.
	Predict(prefix string) []string

	// Complete is Predict with frequency information attached.
	Complete(prefix string) []Suggestion

	// AddWord records one occurrence of an already-tokenized word.
	AddWord(word string)

	// WordCount reports the number of distinct words added.
	WordCount() int

	// Stats returns diagnostic counters.
	Stats() map[string]int
}
