package metadata

import (
	"reflect"
	"testing"

	"github.com/icona/iconserve/pkg/icons"
)

// Synthesis must be pure: repeated calls with the same inputs return
// identical output, so callers can memoize freely.
func TestSynthesizeDeterminism(t *testing.T) {
	inputs := []struct {
		name     string
		category string
	}{
		{"chevron-right", "Linear"},
		{"home", "Hicon"},
		{"message-square", ""},
		{"", ""},
		{"msg", "Bold"},
	}

	for _, in := range inputs {
		first := Synthesize(in.name, in.category)
		second := Synthesize(in.name, in.category)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Synthesize(%q, %q) not deterministic:\n%+v\n%+v", in.name, in.category, first, second)
		}
	}
}

func TestDescription(t *testing.T) {
	testCases := []struct {
		name        string
		category    string
		expected    string
		description string
	}{
		{"search", "", "Search icon", "single word"},
		{"message-square", "", "Message Square icon", "hyphenated name"},
		{"user_profile", "", "User Profile icon", "underscored name"},
		{"home", "Hicon", "Home icon from Hicon collection", "with category"},
		{"chevron-right", "Linear", "Chevron Right icon from Linear collection", "hyphenated with category"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			meta := Synthesize(tc.name, tc.category)
			if meta.Description != tc.expected {
				t.Errorf("description for %q: expected %q, got %q", tc.name, tc.expected, meta.Description)
			}
		})
	}
}

func TestPopularity(t *testing.T) {
	testCases := []struct {
		name        string
		category    string
		expected    int
		description string
	}{
		{"home", "", 95, "top concept"},
		{"search", "", 90, "search concept"},
		{"home-2", "Linear", 95, "concept beats category baseline"},
		{"chevron-right", "Linear", 65, "chevron concept"},
		{"message-square", "Hicon", 80, "message concept"},
		{"blob", "Linear", 60, "category baseline linear"},
		{"blob", "Hicon", 50, "category baseline hicon"},
		{"blob", "WaveIcons", 45, "category baseline is case-insensitive"},
		{"blob", "Unknown", 40, "unknown category falls to default"},
		{"blob", "", 40, "no category falls to default"},
		{"", "", 40, "empty name is safe"},
		// "user" is checked before "heart" and "star" in the table.
		{"user-heart-star", "", 85, "first concept in table order wins"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			meta := Synthesize(tc.name, tc.category)
			if meta.Popularity != tc.expected {
				t.Errorf("popularity for (%q, %q): expected %d, got %d", tc.name, tc.category, tc.expected, meta.Popularity)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	testCases := []struct {
		name        string
		category    string
		expected    []string
		description string
	}{
		{"search", "", []string{"search", "find", "lookup"}, "semantic search cluster, name deduped"},
		{"home", "Hicon", []string{"home", "hicon"}, "no cluster match, category included"},
		{"chevron-right", "Linear",
			[]string{"chevron-right", "chevron", "right", "linear", "navigation", "direction", "arrow"},
			"name, tokens, category, navigation cluster"},
		{"message-square", "",
			[]string{"message-square", "message", "square", "communication", "contact"},
			"communication cluster accumulates after tokens"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			meta := Synthesize(tc.name, tc.category)
			if !reflect.DeepEqual(meta.Keywords, tc.expected) {
				t.Errorf("keywords for %q: expected %v, got %v", tc.name, tc.expected, meta.Keywords)
			}
		})
	}
}

func TestTags(t *testing.T) {
	testCases := []struct {
		name        string
		category    string
		expected    []string
		description string
	}{
		{"chevron-right", "Linear", []string{"linear", "navigation"}, "category is the primary tag"},
		{"message-square", "Hicon", []string{"hicon", "communication"}, "communication tag"},
		{"home", "", []string{"interface"}, "no category, semantic tag only"},
		{"lock", "", []string{"security"}, "security tag"},
		{"blob", "", nil, "nothing recognized"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			meta := Synthesize(tc.name, tc.category)
			if !reflect.DeepEqual(meta.Tags, tc.expected) {
				t.Errorf("tags for %q: expected %v, got %v", tc.name, tc.expected, meta.Tags)
			}
		})
	}
}

func TestAliases(t *testing.T) {
	testCases := []struct {
		name        string
		expected    []string
		description string
	}{
		{"msg", []string{"message"}, "whole-name abbreviation"},
		{"msg-circle", []string{"message-circle"}, "substring replacement"},
		{"pic", []string{"picture", "image"}, "multiple expansions keep dictionary order"},
		{"config", []string{"configuration", "settings"}, "exact pass deduped against substring pass"},
		{"chevron-right", nil, "no abbreviation present"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			meta := Synthesize(tc.name, "")
			if !reflect.DeepEqual(meta.Aliases, tc.expected) {
				t.Errorf("aliases for %q: expected %v, got %v", tc.name, tc.expected, meta.Aliases)
			}
		})
	}
}

// Synthesis must not fail on any input shape.
func TestSynthesizeOddInput(t *testing.T) {
	for _, name := range []string{"", "---", "a//b", "  ", "ICON_Name-3"} {
		meta := Synthesize(name, "")
		if meta.Popularity == 0 {
			t.Errorf("Synthesize(%q) returned zero popularity, fallback missing", name)
		}
	}
}

func TestResolve(t *testing.T) {
	supplied := &icons.IconMetadata{Description: "custom", Popularity: 12}
	icon := icons.IconData{Name: "home", Metadata: supplied}

	got := Resolve(icon)
	if got.Description != "custom" || got.Popularity != 12 {
		t.Errorf("Resolve ignored supplied metadata: %+v", got)
	}

	// Supplied metadata wins wholesale, never merged field-by-field.
	if got.Keywords != nil {
		t.Errorf("Resolve merged synthesized keywords into supplied metadata: %v", got.Keywords)
	}

	bare := icons.IconData{Name: "home", Category: "Hicon"}
	if Resolve(bare).Popularity != 95 {
		t.Error("Resolve did not synthesize for missing metadata")
	}
}

func BenchmarkSynthesize(b *testing.B) {
	names := []string{"chevron-right", "message-square", "user-profile-circle", "home", "cal"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Synthesize(names[i%len(names)], "Linear")
	}
}
