// Package quote fetches random quotes from a remote JSON API.
package quote

import "context"

// DefaultEndpoint is the quotable.io random quote endpoint.
const DefaultEndpoint = "https://api.quotable.io/random"

// Quote is a single quotation. Two quotes are equal when both fields match.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Service fetches one random quote per call.
type Service interface {
	FetchRandomQuote(ctx context.Context) (Quote, error)
}
