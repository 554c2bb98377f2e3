package dict

import (
	"sync/atomic"

	"github.com/filebox/searchkit/pkg/suggest"
)

// Holder owns the live trie instance and replaces it atomically on reload.
// Readers take whatever instance Trie returned and keep using it; they never
// see a partially built index.
type Holder struct {
	current atomic.Pointer[suggest.Trie]
}

// NewHolder starts with an empty index so searches before the first reload
// simply find nothing.
func NewHolder() *Holder {
	h := &Holder{}
	h.current.Store(suggest.NewTrie())
	return h
}

// Rebuild constructs a fresh trie from words off to the side, then swaps it
// in with a single reference store. Returns the new instance.
func (h *Holder) Rebuild(words []string) *suggest.Trie {
	t := suggest.NewTrie(words...)
	h.current.Store(t)
	return t
}

// Trie returns the current index instance.
func (h *Holder) Trie() *suggest.Trie {
	return h.current.Load()
}
