/*
Package main implements the icon search server and CLI [DBG] application.

IconServe provides fast icon search and autocomplete over an in-memory
icon corpus using multi-signal relevance scoring with a Patricia-trie
prefix index. It can operate as a MessagePack IPC server for integration
with editor tooling and component generators, or as a CLI application
for testing and debugging.

Icons are described by a JSON manifest. Each entry needs a name;
component names, categories and metadata are optional. Missing metadata
(description, keywords, tags, aliases, popularity) is synthesized
deterministically from the icon name and category, so sparse manifests
still search well.

# Usage

Start the server with a manifest:

	iconserve -manifest icons.json

Enable debug logging:

	iconserve -manifest icons.json -d

Run in CLI mode for interactive testing:

	iconserve -manifest icons.json -c -limit 10

# Configuration

Runtime configuration is managed through a TOML file covering ranking,
autocomplete and server parameters:

	[search]
	default_limit = 20
	min_score = 0.1

	[suggest]
	default_limit = 10
	min_score = 0.05

	[server]
	max_limit = 64
	min_query = 1
	max_query = 60
	enable_filter = true

The config file is automatically created with defaults if it doesn't
exist; a missing or broken file falls back to built-in defaults.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing information included in
responses.

Send a search request:

	{"id": "req1", "action": "search", "q": "chev", "l": 10}

Receive results ranked by relevance score:

	{"id": "req1", "r": [{"name": "chevron-right", "score": 0.97}], "c": 1, "t": 85}

Suggest requests return popularity-ranked icons for empty input, and
lookup requests hit the prefix index directly for cheap candidate
retrieval without scoring the corpus.

# Search Engine

The core functionality is provided by the search, metadata and index
packages: a deterministic metadata synthesizer, an additive weighted
scorer with fuzzy subsequence matching, and an immutable prefix index
for sub-linear candidate lookup.

	corpus, err := icons.LoadManifest("icons.json")
	results := search.Search(corpus, search.Query{Query: "message"})
	idx := index.Build(corpus)
	candidates := idx.Lookup("mess", 5)

All engine operations are pure reads over the caller's corpus and safe
for concurrent use.

# Command Line Flags

The following flags control application behavior:

	-manifest string
	    Path to the JSON icon manifest (required)
	-config string
	    Path to the TOML config file (optional)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of results to return in CLI mode
	-min-score float
	    Minimum relevance score in CLI mode
	-no-filter
	    Disable input filtering for debugging
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/icona/iconserve/internal/cli"
	"github.com/icona/iconserve/pkg/config"
	"github.com/icona/iconserve/pkg/icons"
	"github.com/icona/iconserve/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "iconserve"
	gh      = "https://github.com/icona/iconserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config, corpus loading and the server or CLI mode.
// It does not implement any search logic itself.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	manifestPath := flag.String("manifest", "", "Path to the JSON icon manifest")
	configPath := flag.String("config", "", "Path to the TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.Search.DefaultLimit, "Number of results to return (CLI mode)")
	minScore := flag.Float64("min-score", defaults.Search.MinScore, "Minimum relevance score (CLI mode)")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (DBG only)")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ IconServe ] Serves really fast icon search!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *manifestPath == "" {
		log.Fatal("No manifest specified, use -manifest path/to/icons.json")
	}

	corpus, err := icons.LoadManifest(*manifestPath)
	if err != nil {
		log.Fatalf("Failed to load manifest: %v", err)
	}
	log.Debugf("Corpus loaded: %d icons", len(corpus))

	appConfig, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// CLI is mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"limit", *limit,
			"minScore", *minScore,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(corpus, *limit, *minScore, appConfig.Server.MaxQuery, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(corpus, appConfig)

	showStartupInfo(*manifestPath, len(corpus))

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(manifestPath string, count int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("manifest: ( %s )", manifestPath)
	log.Infof("icons: [ %d ]", count)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
