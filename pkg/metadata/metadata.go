// Package metadata synthesizes searchable icon metadata from nothing but
// an icon's name and optional category.
//
// Synthesis is pure and deterministic: the same (name, category) pair
// always yields byte-identical output, so callers may cache results
// freely. It never fails, whatever the input looks like; every code path
// has a fallback.
//
// The derivation is table-driven. Ordered pattern tables map name
// fragments to keyword clusters, coarse tags and popularity scores.
// Keyword and tag rules accumulate across all matches; the popularity
// table is first-match-wins.
package metadata

import (
	"strings"

	"github.com/icona/iconserve/internal/utils"
	"github.com/icona/iconserve/pkg/icons"
)

// fragmentRule maps any-of substring fragments to an output cluster.
type fragmentRule struct {
	fragments []string
	output    []string
}

// keywordRules are the semantic keyword clusters, evaluated in order with
// every matching rule contributing its cluster.
var keywordRules = []fragmentRule{
	{[]string{"arrow", "chevron", "left", "right", "up", "down", "back", "forward", "next", "previous"},
		[]string{"navigation", "direction", "arrow"}},
	{[]string{"add", "plus", "create", "new"}, []string{"action", "add", "create"}},
	{[]string{"delete", "remove", "trash", "close", "cross"}, []string{"action", "delete", "remove"}},
	{[]string{"edit", "pen", "write"}, []string{"action", "edit", "modify"}},
	{[]string{"search", "find", "magnify"}, []string{"search", "find", "lookup"}},
	{[]string{"message", "mail", "envelope", "send", "chat"}, []string{"communication", "message", "contact"}},
	{[]string{"phone", "call", "mobile"}, []string{"communication", "phone", "call"}},
	{[]string{"play", "pause", "stop", "music", "video", "media"}, []string{"media", "player", "control"}},
	{[]string{"camera", "photo", "image", "picture"}, []string{"media", "photo", "image"}},
	{[]string{"volume", "sound", "audio", "speaker"}, []string{"audio", "sound", "volume"}},
	{[]string{"menu", "hamburger", "burger"}, []string{"interface", "menu", "navigation"}},
	{[]string{"settings", "gear", "config"}, []string{"interface", "settings", "configuration"}},
	{[]string{"check", "tick", "done", "success", "complete"}, []string{"status", "success", "complete"}},
	{[]string{"warning", "alert", "danger", "error"}, []string{"status", "warning", "alert"}},
	{[]string{"info", "information", "help", "question"}, []string{"status", "information", "help"}},
}

// tagRules are the coarse UI-category tags.
var tagRules = []fragmentRule{
	{[]string{"arrow", "chevron", "left", "right", "up", "down"}, []string{"navigation"}},
	{[]string{"add", "edit", "delete", "remove", "search"}, []string{"actions"}},
	{[]string{"message", "mail", "phone", "call"}, []string{"communication"}},
	{[]string{"play", "pause", "music", "video", "camera"}, []string{"media"}},
	{[]string{"home", "user", "profile", "settings"}, []string{"interface"}},
	{[]string{"heart", "star", "like", "favorite"}, []string{"social"}},
	{[]string{"calendar", "time", "clock", "date"}, []string{"time"}},
	{[]string{"lock", "unlock", "security", "shield"}, []string{"security"}},
	{[]string{"folder", "file", "document", "paper"}, []string{"files"}},
	{[]string{"bag", "cart", "shop", "buy", "dollar"}, []string{"commerce"}},
}

// popularityRule scores a common icon concept. The table is ordered by
// priority: the first concept contained in the name wins.
type popularityRule struct {
	concept string
	score   int
}

var popularityRules = []popularityRule{
	{"home", 95},
	{"search", 90},
	{"menu", 90},
	{"user", 85},
	{"heart", 85},
	{"star", 85},
	{"message", 80},
	{"mail", 80},
	{"phone", 80},
	{"calendar", 75},
	{"camera", 75},
	{"settings", 75},
	{"edit", 70},
	{"delete", 70},
	{"add", 70},
	{"close", 70},
	{"arrow", 65},
	{"chevron", 65},
	{"play", 60},
	{"pause", 60},
	{"stop", 60},
	{"volume", 55},
	{"lock", 55},
	{"unlock", 55},
}

// categoryPopularity is the per-collection baseline used when no concept
// from the table occurs in the name.
var categoryPopularity = map[string]int{
	"hicon":     50,
	"waveicons": 45,
	"linear":    60,
	"bold":      55,
}

// defaultPopularity applies when neither the name nor the category is
// recognized.
const defaultPopularity = 40

// aliasRule expands one abbreviation into its spelled-out variants.
// Order matters for deterministic alias output.
type aliasRule struct {
	abbrev     string
	expansions []string
}

var aliasRules = []aliasRule{
	{"msg", []string{"message"}},
	{"doc", []string{"document"}},
	{"pic", []string{"picture", "image"}},
	{"vid", []string{"video"}},
	{"tel", []string{"telephone", "phone"}},
	{"cal", []string{"calendar"}},
	{"cam", []string{"camera"}},
	{"mic", []string{"microphone"}},
	{"vol", []string{"volume"}},
	{"info", []string{"information"}},
	{"config", []string{"configuration", "settings"}},
	{"prefs", []string{"preferences", "settings"}},
	{"fav", []string{"favorite", "favourite"}},
	{"del", []string{"delete"}},
	{"rem", []string{"remove"}},
}

// Synthesize derives full metadata for an icon from its name and optional
// category (pass "" for none).
func Synthesize(name, category string) icons.IconMetadata {
	return icons.IconMetadata{
		Description: describe(name, category),
		Keywords:    keywords(name, category),
		Tags:        tags(name, category),
		Aliases:     aliases(name),
		Popularity:  popularity(name, category),
	}
}

// Resolve returns the icon's own metadata when supplied, otherwise a
// freshly synthesized set. Supplied metadata is never partially merged
// with synthesized fields.
func Resolve(icon icons.IconData) icons.IconMetadata {
	if icon.Metadata != nil {
		return *icon.Metadata
	}
	return Synthesize(icon.Name, icon.Category)
}

func describe(name, category string) string {
	title := utils.TitleWords(name)
	if category != "" {
		return title + " icon from " + category + " collection"
	}
	return title + " icon"
}

func keywords(name, category string) []string {
	set := newOrderedSet()
	set.add(strings.ToLower(name))
	for _, word := range utils.SplitWords(name) {
		set.add(word)
	}
	if category != "" {
		set.add(strings.ToLower(category))
	}

	lower := strings.ToLower(name)
	for _, rule := range keywordRules {
		if containsAny(lower, rule.fragments) {
			for _, kw := range rule.output {
				set.add(kw)
			}
		}
	}
	return set.values()
}

func tags(name, category string) []string {
	set := newOrderedSet()
	if category != "" {
		set.add(strings.ToLower(category))
	}

	lower := strings.ToLower(name)
	for _, rule := range tagRules {
		if containsAny(lower, rule.fragments) {
			for _, tag := range rule.output {
				set.add(tag)
			}
		}
	}
	return set.values()
}

func aliases(name string) []string {
	set := newOrderedSet()
	lower := strings.ToLower(name)

	// First pass: the whole name is a known abbreviation.
	for _, rule := range aliasRules {
		if lower == rule.abbrev {
			for _, exp := range rule.expansions {
				set.add(exp)
			}
		}
	}
	// Second pass: the abbreviation occurs inside the name; emit variants
	// with its first occurrence textually replaced.
	for _, rule := range aliasRules {
		if strings.Contains(lower, rule.abbrev) {
			for _, exp := range rule.expansions {
				set.add(strings.Replace(lower, rule.abbrev, exp, 1))
			}
		}
	}
	return set.values()
}

func popularity(name, category string) int {
	lower := strings.ToLower(name)
	for _, rule := range popularityRules {
		if strings.Contains(lower, rule.concept) {
			return rule.score
		}
	}
	if category != "" {
		if score, ok := categoryPopularity[strings.ToLower(category)]; ok {
			return score
		}
	}
	return defaultPopularity
}

func containsAny(s string, fragments []string) bool {
	for _, frag := range fragments {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}

// orderedSet is an insertion-ordered string set. Map iteration never leaks
// into output, which keeps synthesis deterministic.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) values() []string {
	return s.items
}
