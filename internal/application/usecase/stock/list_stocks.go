// Package stock contains stock quote-related use cases.
package stock

import (
	"context"
	"log/slog"
	"math"
	"math/rand"

	"github.com/pensive/backend/internal/application/adapter"
)

// Quote sources reported to the caller.
const (
	SourceLive     = "yahoo"
	SourceFallback = "fallback"
)

// QuoteOutput is one quote row in the response.
type QuoteOutput struct {
	Symbol    string
	Name      string
	Sector    string
	Price     float64
	Change    float64
	PE        float64
	MarketCap string
}

// ListStocksOutput represents the quote list with its provenance tag.
type ListStocksOutput struct {
	Quotes []QuoteOutput
	Source string
}

// ListStocksUseCase serves quotes for the fixed catalog, substituting
// jittered fallback data whenever the live feed is unusable. The fallback
// jitter is deliberately non-deterministic so repeated calls simulate
// market movement.
type ListStocksUseCase struct {
	provider adapter.QuoteProvider
}

// NewListStocksUseCase creates a new ListStocksUseCase instance.
func NewListStocksUseCase(provider adapter.QuoteProvider) *ListStocksUseCase {
	return &ListStocksUseCase{
		provider: provider,
	}
}

// Execute fetches live quotes, falling back to the static table on any failure.
func (uc *ListStocksUseCase) Execute(ctx context.Context) (*ListStocksOutput, error) {
	raw, err := uc.provider.FetchQuotes(ctx, FeedSymbols())
	if err != nil {
		slog.Debug("Live quote fetch failed, serving fallback data", "error", err)
		return uc.fallback(), nil
	}

	bySymbol := make(map[string]adapter.RawQuote, len(raw))
	for _, q := range raw {
		bySymbol[q.Symbol] = q
	}

	quotes := make([]QuoteOutput, 0, len(Catalog))
	for _, m := range Catalog {
		q, ok := bySymbol[m.FeedSymbol]
		if !ok || q.Price <= 0 {
			continue
		}
		quotes = append(quotes, QuoteOutput{
			Symbol:    m.Symbol,
			Name:      m.Name,
			Sector:    m.Sector,
			Price:     round2(q.Price),
			Change:    round2(q.ChangePercent),
			PE:        m.PE,
			MarketCap: m.MarketCap,
		})
	}

	if len(quotes) == 0 {
		return uc.fallback(), nil
	}

	return &ListStocksOutput{Quotes: quotes, Source: SourceLive}, nil
}

// fallback returns the static table with a small random jitter applied:
// roughly ±1% on price and ±0.25 absolute on the change percentage.
func (uc *ListStocksUseCase) fallback() *ListStocksOutput {
	quotes := make([]QuoteOutput, len(Catalog))
	for i, m := range Catalog {
		quotes[i] = QuoteOutput{
			Symbol:    m.Symbol,
			Name:      m.Name,
			Sector:    m.Sector,
			Price:     round2(m.FallbackPrice * (1 + (rand.Float64()-0.5)*0.02)),
			Change:    round2(m.FallbackChange + (rand.Float64()-0.5)*0.5),
			PE:        m.PE,
			MarketCap: m.MarketCap,
		}
	}
	return &ListStocksOutput{Quotes: quotes, Source: SourceFallback}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
