package index

import (
	"sort"
	"testing"
)

func TestTrie_WordsWithPrefix(t *testing.T) {
	trie := NewTrie()
	for _, w := range []string{"Food", "Fitness", "Transport"} {
		trie.Insert(w)
	}

	if got := trie.WordsWithPrefix("Fi", 0); len(got) != 1 || got[0] != "Fitness" {
		t.Fatalf(`WordsWithPrefix("Fi") = %v, want [Fitness]`, got)
	}
	if got := trie.WordsWithPrefix("Fo", 0); len(got) != 1 || got[0] != "Food" {
		t.Fatalf(`WordsWithPrefix("Fo") = %v, want [Food]`, got)
	}

	got := trie.WordsWithPrefix("F", 0)
	sort.Strings(got)
	if len(got) != 2 || got[0] != "Fitness" || got[1] != "Food" {
		t.Fatalf(`WordsWithPrefix("F") = %v, want [Fitness Food]`, got)
	}

	if got := trie.WordsWithPrefix("X", 0); got != nil {
		t.Fatalf("expected nil for unmatched prefix, got %v", got)
	}
}

func TestTrie_CaseInsensitiveDuplicate(t *testing.T) {
	trie := NewTrie()
	trie.Insert("Food")
	trie.Insert("FOOD")
	trie.Insert("food")

	if trie.Len() != 1 {
		t.Fatalf("expected 1 distinct word, got %d", trie.Len())
	}

	// First-seen casing is what comes back out.
	got := trie.WordsWithPrefix("fo", 0)
	if len(got) != 1 || got[0] != "Food" {
		t.Fatalf("expected [Food], got %v", got)
	}

	if !trie.Search("fOoD") {
		t.Fatal("search must be case-insensitive")
	}
}

func TestTrie_StartsWith(t *testing.T) {
	trie := NewTrie()
	trie.Insert("Transport")

	if !trie.StartsWith("Tran") {
		t.Fatal("expected prefix match")
	}
	if trie.StartsWith("Trap") {
		t.Fatal("expected no match for wrong prefix")
	}
	if trie.Search("Tran") {
		t.Fatal("a bare prefix is not a word")
	}
}

func TestTrie_Limit(t *testing.T) {
	trie := NewTrie()
	for _, w := range []string{"aa", "ab", "ac", "ad", "ae"} {
		trie.Insert(w)
	}

	if got := trie.WordsWithPrefix("a", 3); len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}

	// limit <= 0 falls back to the default cap.
	for _, w := range []string{"af", "ag", "ah", "ai", "aj", "ak", "al"} {
		trie.Insert(w)
	}
	if got := trie.WordsWithPrefix("a", 0); len(got) != DefaultSuggestionLimit {
		t.Fatalf("expected %d suggestions, got %d", DefaultSuggestionLimit, len(got))
	}
}

func TestTrie_Remove(t *testing.T) {
	trie := NewTrie()
	trie.Insert("Food")
	trie.Insert("Foodie")

	if !trie.Remove("food") {
		t.Fatal("expected remove to succeed")
	}
	if trie.Remove("food") {
		t.Fatal("second remove must fail")
	}
	if trie.Search("Food") {
		t.Fatal("removed word must not be found")
	}

	// Words sharing the prefix survive.
	if got := trie.WordsWithPrefix("foo", 0); len(got) != 1 || got[0] != "Foodie" {
		t.Fatalf("expected [Foodie], got %v", got)
	}
}

func TestTrie_EmptyWordIgnored(t *testing.T) {
	trie := NewTrie()
	trie.Insert("")
	if trie.Len() != 0 {
		t.Fatalf("empty insert must be ignored, len %d", trie.Len())
	}
}
