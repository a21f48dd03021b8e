// Package index provides a prebuilt prefix index over an icon corpus for
// sub-linear candidate retrieval without a full scan.
//
// Every indexable term of an icon (name, keywords, tags, aliases and
// category) is inserted into a patricia trie, so a subtree visit of a
// query prefix yields exactly the icons owning a term that extends it —
// the same buckets an explicit prefix→icons map would hold, without
// materializing a key per prefix.
//
// An Index is immutable once Build returns and safe for unlimited
// concurrent Lookup calls. There is no incremental update: when the
// corpus changes, build a new Index and swap the reference.
package index

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/icona/iconserve/pkg/icons"
	"github.com/icona/iconserve/pkg/metadata"
)

// DefaultLimit caps Lookup results when the caller passes no positive limit.
const DefaultLimit = 20

// Index maps term prefixes to the icons containing that term. It holds a
// snapshot of the corpus taken at Build time.
type Index struct {
	trie  *patricia.Trie
	icons []icons.IconData
}

// Build constructs the index from a snapshot of the corpus, synthesizing
// metadata for icons that carry none.
func Build(corpus []icons.IconData) *Index {
	idx := &Index{
		trie:  patricia.NewTrie(),
		icons: append([]icons.IconData(nil), corpus...),
	}

	terms := 0
	for ord, icon := range idx.icons {
		for _, term := range indexableTerms(icon) {
			idx.insert(term, ord)
			terms++
		}
	}
	log.Debugf("Indexed %d icons (%d terms)", len(idx.icons), terms)
	return idx
}

// indexableTerms collects the lowercase searchable terms of one icon.
func indexableTerms(icon icons.IconData) []string {
	meta := metadata.Resolve(icon)

	seen := make(map[string]struct{})
	var terms []string
	add := func(term string) {
		term = strings.ToLower(term)
		if term == "" {
			return
		}
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	add(icon.Name)
	for _, kw := range meta.Keywords {
		add(kw)
	}
	for _, tag := range meta.Tags {
		add(tag)
	}
	for _, alias := range meta.Aliases {
		add(alias)
	}
	add(icon.Category)
	return terms
}

func (idx *Index) insert(term string, ord int) {
	key := patricia.Prefix(term)
	if item := idx.trie.Get(key); item != nil {
		ords := item.([]int)
		for _, existing := range ords {
			if existing == ord {
				return
			}
		}
		idx.trie.Set(key, append(ords, ord))
		return
	}
	idx.trie.Insert(key, []int{ord})
}

// Lookup returns up to limit icons owning a term that starts with the
// query. When the full query's bucket holds fewer than limit icons, the
// query is shortened one rune at a time from the end and new candidates
// are unioned in — a recall-widening fallback that trades precision for
// non-empty results on overly specific prefixes.
//
// Candidate order is widening order (full-length prefix matches first),
// not relevance order; callers wanting ranked autocomplete re-score the
// candidates with the search scorer.
func (idx *Index) Lookup(query string, limit int) []icons.IconData {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	runes := []rune(normalized)
	seen := make(map[string]struct{})
	var out []icons.IconData

	// First pass covers the full query; shorter passes are the widening
	// fallback.
	for length := len(runes); length >= 1 && len(out) < limit; length-- {
		prefix := patricia.Prefix(string(runes[:length]))

		err := idx.trie.VisitSubtree(prefix, func(_ patricia.Prefix, item patricia.Item) error {
			for _, ord := range item.([]int) {
				icon := idx.icons[ord]
				if _, ok := seen[icon.Name]; ok {
					continue
				}
				seen[icon.Name] = struct{}{}
				out = append(out, icon)
				if len(out) >= limit {
					return errLimitReached
				}
			}
			return nil
		})
		if err != nil && err != errLimitReached {
			log.Errorf("Visiting index subtree: %v", err)
		}
	}
	return out
}

// Size returns the number of icons in the index snapshot.
func (idx *Index) Size() int {
	return len(idx.icons)
}

// errLimitReached stops a subtree visit early once enough candidates are
// collected.
var errLimitReached = errors.New("limit reached")
