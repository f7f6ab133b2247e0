// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pensive/backend/internal/application/adapter"
)

// quoteUserAgent is sent on every feed request; the endpoint rejects
// requests without a browser-ish user agent.
const quoteUserAgent = "Mozilla/5.0 (compatible; PensiveApp/1.0)"

// YahooQuoteClient fetches quotes from the Yahoo Finance v7 quote endpoint.
type YahooQuoteClient struct {
	baseURL string
	client  *http.Client
}

// NewYahooQuoteClient creates a new quote client with a bounded timeout.
func NewYahooQuoteClient(baseURL string, timeout time.Duration) *YahooQuoteClient {
	return &YahooQuoteClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// yahooQuoteResponse mirrors the subset of the feed payload we read.
type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol                     string  `json:"symbol"`
			RegularMarketPrice         float64 `json:"regularMarketPrice"`
			RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// FetchQuotes fetches quotes for the given feed symbols.
func (c *YahooQuoteClient) FetchQuotes(ctx context.Context, symbols []string) ([]adapter.RawQuote, error) {
	reqURL := c.baseURL + "?symbols=" + url.QueryEscape(strings.Join(symbols, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request: %w", err)
	}
	req.Header.Set("User-Agent", quoteUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote endpoint returned status %d", resp.StatusCode)
	}

	var payload yahooQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode quote payload: %w", err)
	}

	if len(payload.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("quote payload contained no results")
	}

	quotes := make([]adapter.RawQuote, len(payload.QuoteResponse.Result))
	for i, r := range payload.QuoteResponse.Result {
		quotes[i] = adapter.RawQuote{
			Symbol:        r.Symbol,
			Price:         r.RegularMarketPrice,
			ChangePercent: r.RegularMarketChangePercent,
		}
	}
	return quotes, nil
}
