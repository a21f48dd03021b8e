/*
Package server implements msgpack IPC for icon search services.

The server package provides a minimal interface for icon search and
autocomplete using msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports ranked search,
autocomplete suggestions, raw prefix-index lookups and corpus listings.
Messages are processed synchronously with timing info included in
responses.

# IPC

The server operates on a request response model where clients send
structured messages via stdin and receive responses through stdout.
Each message contains an ID field, an action and other fields based on
the operation type.

Search requests use mainly this structure:

	{"id": "req_001", "action": "search", "q": "chev", "l": 10}

The server responds with results ranked by score:

	{"id": "req_001", "r": [{"name": "chevron-right", "score": 0.97}], "c": 1, "t": 85}

Suggest requests behave the same but tolerate short or empty partial
input; an empty query returns the most popular icons:

	{"id": "sug_001", "action": "suggest", "q": "", "l": 5}

Lookup requests hit the prebuilt prefix index instead of scoring the
whole corpus. They return candidate icons in recall order, not score
order:

	{"id": "idx_001", "action": "lookup", "q": "mess", "l": 5}

Listing actions "categories" and "tags" return the sorted distinct
values present in the corpus. "health" answers with a status payload.

Error responses carry the request ID, a message and a code; a malformed
request never terminates the loop.

# Message Types

SearchRequest covers every action: q is the query or partial input, l
the result limit, cats/tags optional filter allow-lists and min an
optional score threshold override.

SearchResponse returns ranked ResultEntry values plus count and timing.
LookupResponse returns plain icon records. ListResponse returns string
values for the listing actions.
*/
package server

import (
	"github.com/icona/iconserve/pkg/icons"
	"github.com/icona/iconserve/pkg/search"
)

// SearchRequest - incoming request for any action
type SearchRequest struct {
	ID         string   `msgpack:"id"`
	Action     string   `msgpack:"action"` // "search", "suggest", "lookup", "categories", "tags", "health"
	Query      string   `msgpack:"q,omitempty"`
	Limit      int      `msgpack:"l,omitempty"`
	Categories []string `msgpack:"cats,omitempty"`
	Tags       []string `msgpack:"tags,omitempty"`
	MinScore   float64  `msgpack:"min,omitempty"`
}

// SearchResponse - ranked search/suggest response
type SearchResponse struct {
	ID        string          `msgpack:"id"`
	Results   []search.Result `msgpack:"r"`
	Count     int             `msgpack:"c"`
	TimeTaken int64           `msgpack:"t"`
}

// LookupResponse - prefix-index candidate response
type LookupResponse struct {
	ID        string           `msgpack:"id"`
	Icons     []icons.IconData `msgpack:"icons"`
	Count     int              `msgpack:"c"`
	TimeTaken int64            `msgpack:"t"`
}

// ListResponse - categories/tags listing response
type ListResponse struct {
	ID     string   `msgpack:"id"`
	Values []string `msgpack:"v"`
	Count  int      `msgpack:"c"`
}

// StatusResponse - health and readiness payload
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
	Icons  int    `msgpack:"icons,omitempty"`
}

// SearchError holds basic error information for failed requests
type SearchError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
