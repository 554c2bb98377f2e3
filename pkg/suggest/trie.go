// Package suggest provides the prefix autocomplete index for the search box:
// a patricia trie keyed by normalized words, answering prefix queries with
// the original-form words in sub-millisecond time for realistic dictionary
// sizes (tens of thousands of entries).
package suggest

import (
	"sort"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// DefaultLimit caps a search when the caller passes no usable limit.
const DefaultLimit = 8

// minWordLen drops one-rune words at insert time; they make useless prefixes
// and only bloat the trie with noise tokens.
const minWordLen = 2

// wordSet keeps the original-case spellings sharing one normalized key.
type wordSet map[string]struct{}

// Trie is the autocomplete index. It is not safe for concurrent writers;
// reload is done by building a replacement off to the side and swapping the
// reference (see dict.Holder), so readers never observe a partial build.
type Trie struct {
	trie *patricia.Trie
	size int
}

// NewTrie builds an index, bulk-inserting any initial dictionary words.
func NewTrie(words ...string) *Trie {
	t := &Trie{trie: patricia.NewTrie()}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds one dictionary word. The word is stored under its normalized
// form but returned from searches in its original spelling. Words shorter
// than two runes, or empty after normalization, are skipped.
func (t *Trie) Insert(word string) {
	if utf8.RuneCountInString(word) < minWordLen {
		return
	}
	key := Normalize(word)
	if key == "" {
		return
	}
	prefix := patricia.Prefix(key)
	if item := t.trie.Get(prefix); item != nil {
		item.(wordSet)[word] = struct{}{}
	} else {
		t.trie.Insert(prefix, wordSet{word: {}})
	}
	t.size++
}

// Size reports how many Insert calls took effect, duplicates included.
func (t *Trie) Size() int {
	return t.size
}

// Search returns up to limit original-form words whose normalized form starts
// with the normalized prefix, shortest first. An empty or unknown prefix
// yields an empty result; Search never panics on any input.
func (t *Trie) Search(prefix string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	key := Normalize(prefix)
	if key == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var words []string
	err := t.trie.VisitSubtree(patricia.Prefix(key), func(p patricia.Prefix, item patricia.Item) error {
		for w := range item.(wordSet) {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
		}
		return nil
	})
	if err != nil {
		log.Errorf("visiting trie subtree: %v", err)
		return nil
	}

	// Shorter completions surface first; ties break lexicographically so
	// results are deterministic.
	sort.Slice(words, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(words[i]), utf8.RuneCountInString(words[j])
		if li != lj {
			return li < lj
		}
		return words[i] < words[j]
	})
	if len(words) > limit {
		words = words[:limit]
	}
	return words
}
