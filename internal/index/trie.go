package index

import "strings"

// DefaultSuggestionLimit caps prefix collection when callers pass no limit.
const DefaultSuggestionLimit = 10

type trieNode struct {
	children map[rune]*trieNode
	terminal bool
	word     string // original casing, kept for display
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Trie is a prefix tree over lowercase-folded strings. Terminal nodes keep
// the first-seen original casing, so inserting "FOOD" after "Food" is a
// no-op rather than a duplicate.
type Trie struct {
	root  *trieNode
	count int
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert adds a word, folded for matching. O(len(word)).
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	node := t.root
	for _, r := range strings.ToLower(word) {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
		}
		node = child
	}
	if !node.terminal {
		node.terminal = true
		node.word = word
		t.count++
	}
}

// Search reports whether word was inserted, case-insensitively.
func (t *Trie) Search(word string) bool {
	node := t.descend(word)
	return node != nil && node.terminal
}

// StartsWith reports whether any word begins with prefix.
func (t *Trie) StartsWith(prefix string) bool {
	return t.descend(prefix) != nil
}

// WordsWithPrefix collects up to limit words beginning with prefix.
// Collection is an unordered depth-first walk; the result order depends on
// child traversal and must not be assumed sorted. limit <= 0 applies
// DefaultSuggestionLimit.
func (t *Trie) WordsWithPrefix(prefix string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	node := t.descend(prefix)
	if node == nil {
		return nil
	}
	var result []string
	collectWords(node, limit, &result)
	return result
}

// All returns every inserted word in unspecified order.
func (t *Trie) All() []string {
	result := make([]string, 0, t.count)
	collectWords(t.root, t.count, &result)
	return result
}

// Remove unmarks a word; the nodes stay for any words sharing the prefix.
func (t *Trie) Remove(word string) bool {
	node := t.descend(word)
	if node == nil || !node.terminal {
		return false
	}
	node.terminal = false
	node.word = ""
	t.count--
	return true
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.count
}

func (t *Trie) descend(s string) *trieNode {
	node := t.root
	for _, r := range strings.ToLower(s) {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

func collectWords(node *trieNode, limit int, result *[]string) {
	if len(*result) >= limit {
		return
	}
	if node.terminal {
		*result = append(*result, node.word)
	}
	for _, child := range node.children {
		if len(*result) >= limit {
			return
		}
		collectWords(child, limit, result)
	}
}
