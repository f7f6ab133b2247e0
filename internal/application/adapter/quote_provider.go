// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// RawQuote is a single quote row as returned by the market-data feed.
type RawQuote struct {
	Symbol        string
	Price         float64
	ChangePercent float64
}

// QuoteProvider defines the interface for fetching live market quotes.
type QuoteProvider interface {
	// FetchQuotes fetches quotes for the given feed symbols. Any upstream
	// failure (transport error, non-200, malformed payload) is returned as
	// an error so the caller can fall back.
	FetchQuotes(ctx context.Context, symbols []string) ([]RawQuote, error)
}
