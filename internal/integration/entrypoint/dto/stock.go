// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/pensive/backend/internal/application/usecase/stock"
)

// StockQuoteResponse represents one quote row on the wire.
type StockQuoteResponse struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Sector    string  `json:"sector"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	PE        float64 `json:"pe"`
	MarketCap string  `json:"marketCap"`
}

// StockListResponse wraps the quote list with its provenance tag
// ("yahoo" for live data, "fallback" for the static table).
type StockListResponse struct {
	Data   []StockQuoteResponse `json:"data"`
	Source string               `json:"source"`
}

// ToStockListResponse converts a ListStocksOutput to its wire representation.
func ToStockListResponse(output *stock.ListStocksOutput) StockListResponse {
	quotes := make([]StockQuoteResponse, len(output.Quotes))
	for i, q := range output.Quotes {
		quotes[i] = StockQuoteResponse{
			Symbol:    q.Symbol,
			Name:      q.Name,
			Sector:    q.Sector,
			Price:     q.Price,
			Change:    q.Change,
			PE:        q.PE,
			MarketCap: q.MarketCap,
		}
	}
	return StockListResponse{
		Data:   quotes,
		Source: output.Source,
	}
}
