package server

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/icona/iconserve/internal/logger"
	"github.com/icona/iconserve/internal/utils"
	"github.com/icona/iconserve/pkg/config"
	"github.com/icona/iconserve/pkg/icons"
	"github.com/icona/iconserve/pkg/index"
	"github.com/icona/iconserve/pkg/search"
)

// Server handles the IPC for icon search over stdin/stdout.
type Server struct {
	corpus  []icons.IconData
	idx     *index.Index
	cfg     *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     *log.Logger
}

// NewServer creates a search server for the given corpus. The prefix
// index is built once here; the corpus must not be mutated afterwards.
func NewServer(corpus []icons.IconData, cfg *config.Config) *Server {
	return &Server{
		corpus:  corpus,
		idx:     index.Build(corpus),
		cfg:     cfg,
		decoder: msgpack.NewDecoder(os.Stdin),
		encoder: msgpack.NewEncoder(os.Stdout),
		log:     logger.New("ipc"),
	}
}

// Start begins listening for IPC requests. It returns nil on clean EOF.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	s.send(StatusResponse{Status: "ready", Icons: len(s.corpus)})

	for {
		var req SearchRequest
		if err := s.decoder.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req SearchRequest) {
	switch req.Action {
	case "search":
		s.handleSearch(req)
	case "suggest":
		s.handleSuggest(req)
	case "lookup":
		s.handleLookup(req)
	case "categories":
		cats := icons.Categories(s.corpus)
		s.send(ListResponse{ID: req.ID, Values: cats, Count: len(cats)})
	case "tags":
		tags := search.AllTags(s.corpus)
		s.send(ListResponse{ID: req.ID, Values: tags, Count: len(tags)})
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok", Icons: len(s.corpus)})
	default:
		s.sendError(req.ID, "unknown action: "+req.Action, 400)
	}
}

func (s *Server) handleSearch(req SearchRequest) {
	if !s.validQuery(req) {
		return
	}
	// Filtered-out input is a policy outcome, not an error.
	if s.cfg.Server.EnableFilter && !utils.IsValidInput(req.Query) {
		s.send(SearchResponse{ID: req.ID})
		return
	}

	start := time.Now()
	results := search.Search(s.corpus, search.Query{
		Query:      req.Query,
		Limit:      s.clampLimit(req.Limit, s.cfg.Search.DefaultLimit),
		Categories: req.Categories,
		Tags:       req.Tags,
		MinScore:   s.minScore(req.MinScore, s.cfg.Search.MinScore),
	})
	elapsed := time.Since(start)

	s.send(SearchResponse{
		ID:        req.ID,
		Results:   results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleSuggest(req SearchRequest) {
	// Suggest tolerates empty input: that is the popularity cold start.
	if len(req.Query) > s.cfg.Server.MaxQuery {
		s.sendError(req.ID, "query exceeds maximum length", 400)
		return
	}

	start := time.Now()
	results := search.Suggest(s.corpus, req.Query, s.clampLimit(req.Limit, s.cfg.Suggest.DefaultLimit))
	elapsed := time.Since(start)

	s.send(SearchResponse{
		ID:        req.ID,
		Results:   results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleLookup(req SearchRequest) {
	if !s.validQuery(req) {
		return
	}
	if s.cfg.Server.EnableFilter && !utils.IsValidInput(req.Query) {
		s.send(LookupResponse{ID: req.ID})
		return
	}

	start := time.Now()
	candidates := s.idx.Lookup(req.Query, s.clampLimit(req.Limit, s.cfg.Search.DefaultLimit))
	elapsed := time.Since(start)

	s.send(LookupResponse{
		ID:        req.ID,
		Icons:     candidates,
		Count:     len(candidates),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) validQuery(req SearchRequest) bool {
	if len(req.Query) < s.cfg.Server.MinQuery {
		s.sendError(req.ID, "missing or too short 'q' parameter", 400)
		return false
	}
	if len(req.Query) > s.cfg.Server.MaxQuery {
		s.sendError(req.ID, "query exceeds maximum length", 400)
		return false
	}
	return true
}

func (s *Server) clampLimit(limit, fallback int) int {
	if limit < 1 {
		return fallback
	}
	if limit > s.cfg.Server.MaxLimit {
		return s.cfg.Server.MaxLimit
	}
	return limit
}

func (s *Server) minScore(override, fallback float64) float64 {
	if override > 0 {
		return override
	}
	return fallback
}

func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(SearchError{ID: id, Error: message, Code: code})
}
