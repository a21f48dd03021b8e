package index

import (
	"fmt"
	"sync"
	"testing"

	"github.com/icona/iconserve/pkg/icons"
)

func testCorpus() []icons.IconData {
	return []icons.IconData{
		{Name: "chevron-right", Component: "ChevronRight", Category: "Linear"},
		{Name: "chevron-left", Component: "ChevronLeft", Category: "Linear"},
		{Name: "home", Component: "Home", Category: "Hicon"},
		{Name: "search", Component: "Search", Category: "Hicon"},
		{Name: "message-square", Component: "MessageSquare", Category: "Hicon"},
	}
}

func names(list []icons.IconData) []string {
	out := make([]string, len(list))
	for i, icon := range list {
		out[i] = icon.Name
	}
	return out
}

func TestLookupExactPrefixBucket(t *testing.T) {
	idx := Build(testCorpus())

	// "mess" hits the message/message-square terms directly, no fallback
	// needed; the icon appears once despite owning several matching terms.
	got := idx.Lookup("mess", 5)
	if len(got) != 1 || got[0].Name != "message-square" {
		t.Fatalf("expected [message-square], got %v", names(got))
	}
}

func TestLookupDeduplicates(t *testing.T) {
	idx := Build(testCorpus())

	// Both chevrons share the "chevron" keyword and name prefix.
	got := idx.Lookup("chev", 10)
	seen := make(map[string]int)
	for _, icon := range got {
		seen[icon.Name]++
	}
	for name, count := range seen {
		if count > 1 {
			t.Errorf("icon %s returned %d times", name, count)
		}
	}
	if len(got) != 2 {
		t.Errorf("expected both chevrons, got %v", names(got))
	}
}

func TestLookupWideningFallback(t *testing.T) {
	corpus := []icons.IconData{
		{Name: "cat", Component: "Cat"},
		{Name: "car", Component: "Car"},
		{Name: "card", Component: "Card"},
	}
	idx := Build(corpus)

	// "cardigan" is indexed under no term; the query degrades one rune at
	// a time until enough candidates accumulate. Full-length matches come
	// first, then each shorter prefix's new candidates.
	got := names(idx.Lookup("cardigan", 3))
	expected := []string{"card", "car", "cat"}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}
}

func TestLookupStopsAtLimit(t *testing.T) {
	idx := Build(testCorpus())

	got := idx.Lookup("c", 1)
	if len(got) != 1 {
		t.Errorf("limit 1 returned %d candidates", len(got))
	}
}

func TestLookupEmptyQuery(t *testing.T) {
	idx := Build(testCorpus())
	for _, q := range []string{"", "   "} {
		if got := idx.Lookup(q, 5); got != nil {
			t.Errorf("Lookup(%q) should return nothing, got %v", q, names(got))
		}
	}
}

func TestLookupDefaultLimit(t *testing.T) {
	var corpus []icons.IconData
	for i := 0; i < 30; i++ {
		corpus = append(corpus, icons.IconData{Name: fmt.Sprintf("chevron-%02d", i), Component: "C"})
	}
	idx := Build(corpus)

	if got := idx.Lookup("chevron", 0); len(got) != DefaultLimit {
		t.Errorf("zero limit should fall back to %d, got %d", DefaultLimit, len(got))
	}
}

func TestBuildEmptyCorpus(t *testing.T) {
	idx := Build(nil)
	if idx.Size() != 0 {
		t.Errorf("empty corpus should build an empty index, size %d", idx.Size())
	}
	if got := idx.Lookup("home", 5); got != nil {
		t.Errorf("lookup on empty index should return nothing, got %v", names(got))
	}
}

// The index is immutable after Build, so concurrent lookups need no
// locking.
func TestConcurrentLookup(t *testing.T) {
	idx := Build(testCorpus())
	queries := []string{"che", "mess", "home", "se", "x", "nav"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				q := queries[(offset+j)%len(queries)]
				for _, icon := range idx.Lookup(q, 5) {
					if icon.Name == "" {
						t.Error("lookup returned an empty record")
						return
					}
				}
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkLookup(b *testing.B) {
	var corpus []icons.IconData
	for i := 0; i < 500; i++ {
		corpus = append(corpus, testCorpus()[i%5])
	}
	idx := Build(corpus)
	queries := []string{"che", "mess", "ho", "s"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Lookup(queries[i%len(queries)], 20)
	}
}
