// Package api defines the wire types exchanged with clients of the assistant.
package api

import "github.com/avabot/assistant/internal/catalog"

// ChatRequest is the single inbound request type: one free-text query per
// request, no relation to prior queries.
type ChatRequest struct {
	Query string `json:"query" binding:"required"`
}

// ChatResponse is returned for every query. Products is only populated when
// the query was shopping-related and at least one catalog entry matched; the
// records are returned verbatim as loaded from the catalog file.
type ChatResponse struct {
	Response string            `json:"response"`
	Products []catalog.Product `json:"products,omitempty"`
}
