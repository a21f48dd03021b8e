package search

import (
	"strings"

	"github.com/icona/iconserve/pkg/icons"
)

// Weights for the additive relevance signals. Contributions accumulate
// across every keyword, tag and alias; only an exact name match
// short-circuits. The raw sum is clamped to 1.0 at the end.
const (
	weightNamePrefix    = 0.9
	weightNameSubstring = 0.7
	weightNameFuzzy     = 0.6

	weightKeywordExact     = 0.8
	weightKeywordPrefix    = 0.6
	weightKeywordSubstring = 0.4
	weightKeywordFuzzy     = 0.3

	weightTagExact     = 0.5
	weightTagPrefix    = 0.4
	weightTagSubstring = 0.3

	weightAliasExact     = 0.7
	weightAliasPrefix    = 0.5
	weightAliasSubstring = 0.3

	weightDescription = 0.2
	weightPopularity  = 0.1

	weightWordExact  = 0.3
	weightWordPrefix = 0.2
)

// Score computes the relevance of one icon for an already lowercased,
// trimmed query. The result is always within [0, 1].
//
// This is an intentionally simple heuristic scorer rather than a
// normalized probabilistic model; ties are common and left to the
// ranking pipeline's stable sort.
func Score(query string, icon icons.IconData, meta icons.IconMetadata) float64 {
	name := strings.ToLower(icon.Name)

	if name == query {
		return 1.0
	}

	var score float64

	if strings.HasPrefix(name, query) {
		score += weightNamePrefix
	}
	if strings.Contains(name, query) {
		score += weightNameSubstring
	}
	score += FuzzyScore(query, name) * weightNameFuzzy

	for _, keyword := range meta.Keywords {
		kw := strings.ToLower(keyword)
		switch {
		case kw == query:
			score += weightKeywordExact
		case strings.HasPrefix(kw, query):
			score += weightKeywordPrefix
		case strings.Contains(kw, query):
			score += weightKeywordSubstring
		default:
			score += FuzzyScore(query, kw) * weightKeywordFuzzy
		}
	}

	for _, tag := range meta.Tags {
		t := strings.ToLower(tag)
		switch {
		case t == query:
			score += weightTagExact
		case strings.HasPrefix(t, query):
			score += weightTagPrefix
		case strings.Contains(t, query):
			score += weightTagSubstring
		}
	}

	for _, alias := range meta.Aliases {
		a := strings.ToLower(alias)
		switch {
		case a == query:
			score += weightAliasExact
		case strings.HasPrefix(a, query):
			score += weightAliasPrefix
		case strings.Contains(a, query):
			score += weightAliasSubstring
		}
	}

	if meta.Description != "" && strings.Contains(strings.ToLower(meta.Description), query) {
		score += weightDescription
	}

	if meta.Popularity != 0 {
		score += float64(meta.Popularity) / 100 * weightPopularity
	}

	// Word-level bonus for multi-word queries against the name's tokens.
	queryWords := strings.Fields(query)
	nameWords := splitNameWords(name)
	for _, qw := range queryWords {
		for _, nw := range nameWords {
			if nw == qw {
				score += weightWordExact
			} else if strings.HasPrefix(nw, qw) {
				score += weightWordPrefix
			}
		}
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

// splitNameWords tokenizes an icon name on hyphen, underscore and
// whitespace boundaries.
func splitNameWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '\t'
	})
}
