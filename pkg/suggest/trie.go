package suggest

// node is one character position along some set of inserted words.
// A node is terminal when the root-to-node path spells a word that was
// explicitly inserted; word and freq are only meaningful then.
type node struct {
	terminal bool
	word     string
	freq     int
	children map[rune]*node
}

// newNode always populates the children map so a recorded child rune can
// never point at a missing node.
func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a character-indexed word trie that counts how many times each
// word was inserted. Every node is exclusively owned by its parent; the
// root represents the empty prefix. The zero value is not usable, use
// NewTrie.
type Trie struct {
	root *node
	size int
}

// NewTrie returns an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Insert records one occurrence of word, creating nodes along its path as
// needed. Re-inserting a word only bumps its count; it never creates a
// second terminal record. Inserting "" marks the root itself terminal --
// such a record is never reachable through a prediction, which requires a
// prefix of at least one character.
func (t *Trie) Insert(word string) {
	cur := t.root
	for _, r := range word {
		child, ok := cur.children[r]
		if !ok {
			child = newNode()
			cur.children[r] = child
		}
		cur = child
	}
	if !cur.terminal {
		cur.terminal = true
		cur.word = word
		t.size++
	}
	cur.freq++
}

// descend walks the trie along prefix and returns the node it ends on, or
// nil when some character of prefix has no child. Read only.
func (t *Trie) descend(prefix string) *node {
	cur := t.root
	for _, r := range prefix {
		next, ok := cur.children[r]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// Len reports the number of distinct words inserted so far.
func (t *Trie) Len() int {
	return t.size
}
