// Package icons defines the icon corpus records consumed by the search
// engine and basic read-only operations over a corpus.
//
// A corpus is an ordered, caller-owned slice of IconData. The engine never
// mutates it; all operations here are pure reads, so any number of
// goroutines may share one corpus as long as it is not modified after
// being handed over.
package icons

import "sort"

// IconMetadata holds the searchable attributes of one icon. Zero values
// mean "absent": an empty Description or a zero Popularity is treated the
// same as the field never having been supplied.
type IconMetadata struct {
	Description string   `json:"description,omitempty" msgpack:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty" msgpack:"keywords,omitempty"`
	Tags        []string `json:"tags,omitempty" msgpack:"tags,omitempty"`
	Aliases     []string `json:"aliases,omitempty" msgpack:"aliases,omitempty"`
	Popularity  int      `json:"popularity,omitempty" msgpack:"popularity,omitempty"`
}

// IconData is one corpus record. Name is the unique lowercase identifier,
// Component the display name used by component emitters. Metadata is nil
// when no metadata was supplied upfront; consumers synthesize it on demand.
type IconData struct {
	Name      string        `json:"name" msgpack:"name"`
	Component string        `json:"component" msgpack:"component"`
	Category  string        `json:"category,omitempty" msgpack:"category,omitempty"`
	Metadata  *IconMetadata `json:"metadata,omitempty" msgpack:"metadata,omitempty"`
}

// ByCategory returns the icons whose category equals the given one.
func ByCategory(corpus []IconData, category string) []IconData {
	var out []IconData
	for _, icon := range corpus {
		if icon.Category == category {
			out = append(out, icon)
		}
	}
	return out
}

// Categories returns the distinct categories present in the corpus, sorted.
func Categories(corpus []IconData) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, icon := range corpus {
		if icon.Category == "" {
			continue
		}
		if _, ok := seen[icon.Category]; ok {
			continue
		}
		seen[icon.Category] = struct{}{}
		out = append(out, icon.Category)
	}
	sort.Strings(out)
	return out
}

// Names returns every icon name in corpus order.
func Names(corpus []IconData) []string {
	out := make([]string, len(corpus))
	for i, icon := range corpus {
		out[i] = icon.Name
	}
	return out
}
