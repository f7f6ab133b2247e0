// Package stock contains stock quote-related use cases.
package stock

// StockMeta describes one symbol in the fixed NSE catalog, including the
// feed symbol used against the market-data endpoint and the fallback price
// shown when the feed is unreachable.
type StockMeta struct {
	Symbol         string
	FeedSymbol     string
	Name           string
	Sector         string
	PE             float64
	MarketCap      string
	FallbackPrice  float64
	FallbackChange float64
}

// Catalog is the fixed symbol universe served by the stocks endpoint.
var Catalog = []StockMeta{
	{Symbol: "RELIANCE", FeedSymbol: "RELIANCE.NS", Name: "Reliance Industries", Sector: "Energy", PE: 28.5, MarketCap: "19.9L Cr", FallbackPrice: 2945.5, FallbackChange: 1.2},
	{Symbol: "TCS", FeedSymbol: "TCS.NS", Name: "Tata Consultancy Services", Sector: "IT", PE: 32.1, MarketCap: "14.1L Cr", FallbackPrice: 3890.25, FallbackChange: -0.5},
	{Symbol: "HDFCBANK", FeedSymbol: "HDFCBANK.NS", Name: "HDFC Bank", Sector: "Banking", PE: 19.2, MarketCap: "12.8L Cr", FallbackPrice: 1678.9, FallbackChange: 0.8},
	{Symbol: "INFY", FeedSymbol: "INFY.NS", Name: "Infosys", Sector: "IT", PE: 26.8, MarketCap: "6.4L Cr", FallbackPrice: 1545.6, FallbackChange: -1.1},
	{Symbol: "ICICIBANK", FeedSymbol: "ICICIBANK.NS", Name: "ICICI Bank", Sector: "Banking", PE: 17.8, MarketCap: "8.7L Cr", FallbackPrice: 1234.75, FallbackChange: 1.5},
	{Symbol: "HINDUNILVR", FeedSymbol: "HINDUNILVR.NS", Name: "Hindustan Unilever", Sector: "FMCG", PE: 55.2, MarketCap: "5.8L Cr", FallbackPrice: 2456.3, FallbackChange: -0.3},
	{Symbol: "SBIN", FeedSymbol: "SBIN.NS", Name: "State Bank of India", Sector: "Banking", PE: 10.5, MarketCap: "7.0L Cr", FallbackPrice: 789.45, FallbackChange: 2.1},
	{Symbol: "BHARTIARTL", FeedSymbol: "BHARTIARTL.NS", Name: "Bharti Airtel", Sector: "Telecom", PE: 45.3, MarketCap: "8.9L Cr", FallbackPrice: 1567.8, FallbackChange: 0.9},
	{Symbol: "ITC", FeedSymbol: "ITC.NS", Name: "ITC Limited", Sector: "FMCG", PE: 27.1, MarketCap: "5.8L Cr", FallbackPrice: 467.25, FallbackChange: 0.4},
	{Symbol: "KOTAKBANK", FeedSymbol: "KOTAKBANK.NS", Name: "Kotak Mahindra Bank", Sector: "Banking", PE: 21.3, MarketCap: "3.7L Cr", FallbackPrice: 1845.9, FallbackChange: -0.7},
	{Symbol: "LT", FeedSymbol: "LT.NS", Name: "Larsen & Toubro", Sector: "Infrastructure", PE: 34.5, MarketCap: "4.8L Cr", FallbackPrice: 3456.7, FallbackChange: 1.8},
	{Symbol: "WIPRO", FeedSymbol: "WIPRO.NS", Name: "Wipro", Sector: "IT", PE: 22.4, MarketCap: "2.4L Cr", FallbackPrice: 467.85, FallbackChange: -0.2},
	{Symbol: "AXISBANK", FeedSymbol: "AXISBANK.NS", Name: "Axis Bank", Sector: "Banking", PE: 14.8, MarketCap: "3.5L Cr", FallbackPrice: 1123.4, FallbackChange: 1.3},
	{Symbol: "ADANIENT", FeedSymbol: "ADANIENT.NS", Name: "Adani Enterprises", Sector: "Conglomerate", PE: 78.9, MarketCap: "3.3L Cr", FallbackPrice: 2890.15, FallbackChange: 3.2},
	{Symbol: "TATAMOTORS", FeedSymbol: "TATAMOTORS.NS", Name: "Tata Motors", Sector: "Automobile", PE: 8.7, MarketCap: "3.5L Cr", FallbackPrice: 945.6, FallbackChange: 2.5},
}

// FeedSymbols returns the feed symbols of the whole catalog.
func FeedSymbols() []string {
	symbols := make([]string, len(Catalog))
	for i, m := range Catalog {
		symbols[i] = m.FeedSymbol
	}
	return symbols
}
