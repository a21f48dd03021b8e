// Package cli handles cmd line input and searches for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/icona/iconserve/internal/logger"
	"github.com/icona/iconserve/internal/utils"
	"github.com/icona/iconserve/pkg/icons"
	"github.com/icona/iconserve/pkg/search"
)

var (
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	scoreStyle = lipgloss.NewStyle().Faint(true)
)

// InputHandler processes user queries from stdin, printing ranked
// results. It accepts flags to control result limits, score thresholds
// and input filtering.
type InputHandler struct {
	corpus      []icons.IconData
	searchLimit int
	minScore    float64
	maxQueryLen int
	noFilter    bool
	log         *log.Logger
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(corpus []icons.IconData, limit int, minScore float64, maxQueryLen int, noFilter bool) *InputHandler {
	return &InputHandler{
		corpus:      corpus,
		searchLimit: limit,
		minScore:    minScore,
		maxQueryLen: maxQueryLen,
		noFilter:    noFilter,
		log:         logger.NewWithConfig("cli", log.GetLevel(), false, false, log.TextFormatter),
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and passes
// the trimmed query to handleInput() for processing. The loop terminates
// if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	h.log.Print("IconServe CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a query and press Enter to see matches (/cat, /tags for listings, Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleInput(query)
	}
}

// handleInput processes a single query and prints ranked results.
func (h *InputHandler) handleInput(query string) {

	switch query {
	case "/cat":
		h.log.Printf("Categories: %s", strings.Join(icons.Categories(h.corpus), ", "))
		return
	case "/tags":
		h.log.Printf("Tags: %s", strings.Join(search.AllTags(h.corpus), ", "))
		return
	}

	if len(query) > h.maxQueryLen {
		h.log.Errorf("Query too long: %s", query)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter {
		if !utils.IsValidInput(query) {
			h.log.Warnf("No results for query: '%s' (filtered out)", query)
			return
		}
	} else {
		h.log.Debug("Input filtering disabled")
	}

	start := time.Now()
	h.log.Debug("Processing request for", "query", query)

	results := search.Search(h.corpus, search.Query{
		Query:    query,
		Limit:    h.searchLimit,
		MinScore: h.minScore,
	})

	elapsed := time.Since(start)
	h.log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(results) == 0 {
		h.log.Warnf("No results found for query: '%s'", query)
		return
	}

	h.log.Printf("Found %d results for query '%s':", len(results), query)
	for i, r := range results {
		label := nameStyle.Render(r.Name)
		detail := r.Category
		if detail == "" {
			detail = "-"
		}
		h.log.Printf("%2d. %-40s %s %s", i+1, label, scoreStyle.Render(fmt.Sprintf("score: %.3f", r.Score)), detail)
	}
}
