// Package search ranks icons against free-text queries.
//
// It combines a multi-signal additive scorer with category/tag filtering,
// a minimum-score threshold and a stable sort, plus an autocomplete entry
// point that falls back to popularity ranking on empty input. Every
// operation is a pure function over the caller's corpus: nothing here
// blocks, mutates shared state or fails.
package search

import (
	"sort"
	"strings"

	"github.com/icona/iconserve/pkg/icons"
	"github.com/icona/iconserve/pkg/metadata"
)

// Defaults used when a Query leaves the corresponding field zero.
const (
	DefaultLimit    = 20
	DefaultMinScore = 0.1

	// SuggestLimit and SuggestMinScore apply to the autocomplete path;
	// the threshold is relaxed so short partial input still surfaces
	// plausible candidates.
	SuggestLimit    = 10
	SuggestMinScore = 0.05
)

// Query describes one search invocation. Zero-valued Limit and MinScore
// fall back to DefaultLimit and DefaultMinScore. Empty Categories/Tags
// mean no filtering; Tags use any-match semantics.
type Query struct {
	Query      string
	Limit      int
	Categories []string
	Tags       []string
	MinScore   float64
}

// Result is one ranked hit. Optional fields are only populated when the
// underlying metadata carries them.
type Result struct {
	Name        string   `json:"name" msgpack:"name"`
	Component   string   `json:"component" msgpack:"component"`
	Description string   `json:"description,omitempty" msgpack:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty" msgpack:"keywords,omitempty"`
	Tags        []string `json:"tags,omitempty" msgpack:"tags,omitempty"`
	Category    string   `json:"category,omitempty" msgpack:"category,omitempty"`
	Score       float64  `json:"score" msgpack:"score"`
}

// Search scores the corpus against the query and returns the ranked,
// filtered, truncated results. An empty or whitespace-only query yields
// nothing; use Suggest for cold-start listing.
func Search(corpus []icons.IconData, query Query) []Result {
	normalized := strings.ToLower(strings.TrimSpace(query.Query))
	if normalized == "" {
		return nil
	}

	limit := query.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	minScore := query.MinScore
	if minScore == 0 {
		minScore = DefaultMinScore
	}

	var results []Result
	for _, icon := range corpus {
		if len(query.Categories) > 0 {
			if icon.Category == "" || !contains(query.Categories, icon.Category) {
				continue
			}
		}

		meta := metadata.Resolve(icon)

		if len(query.Tags) > 0 && !anyOverlap(query.Tags, meta.Tags) {
			continue
		}

		score := Score(normalized, icon, meta)
		if score >= minScore {
			results = append(results, makeResult(icon, meta, score))
		}
	}

	// Stable: ties keep their relative corpus order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Suggest is the autocomplete entry point. Empty partial input returns
// the most popular icons with score = popularity/100 (40 when unset);
// otherwise it delegates to Search with the relaxed SuggestMinScore.
func Suggest(corpus []icons.IconData, partial string, limit int) []Result {
	if limit <= 0 {
		limit = SuggestLimit
	}

	if strings.TrimSpace(partial) == "" {
		results := make([]Result, 0, len(corpus))
		for _, icon := range corpus {
			meta := metadata.Resolve(icon)
			pop := meta.Popularity
			if pop == 0 {
				pop = 40
			}
			results = append(results, makeResult(icon, meta, float64(pop)/100))
		}
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
		if len(results) > limit {
			results = results[:limit]
		}
		return results
	}

	return Search(corpus, Query{
		Query:    partial,
		Limit:    limit,
		MinScore: SuggestMinScore,
	})
}

// AllTags returns every distinct tag across the corpus, sorted,
// synthesizing metadata for icons that lack it.
func AllTags(corpus []icons.IconData) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, icon := range corpus {
		for _, tag := range metadata.Resolve(icon).Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}

// MetadataFor returns the resolved metadata of a named icon, or false if
// the corpus has no icon with that name.
func MetadataFor(corpus []icons.IconData, name string) (icons.IconMetadata, bool) {
	for _, icon := range corpus {
		if icon.Name == name {
			return metadata.Resolve(icon), true
		}
	}
	return icons.IconMetadata{}, false
}

func makeResult(icon icons.IconData, meta icons.IconMetadata, score float64) Result {
	return Result{
		Name:        icon.Name,
		Component:   icon.Component,
		Description: meta.Description,
		Keywords:    meta.Keywords,
		Tags:        meta.Tags,
		Category:    icon.Category,
		Score:       score,
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func anyOverlap(want, have []string) bool {
	for _, w := range want {
		for _, h := range have {
			if w == h {
				return true
			}
		}
	}
	return false
}
