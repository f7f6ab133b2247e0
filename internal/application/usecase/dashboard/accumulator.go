// Package dashboard contains dashboard-related use cases.
package dashboard

import "github.com/shopspring/decimal"

// bucket is the per-key running total of a grouping dimension.
type bucket struct {
	Count  int
	Amount decimal.Decimal
}

// groupAccumulator is an ordered map from a raw grouping key to its running
// totals. Keys keep their first-seen order, which matters for the stable
// tie-break when topCategories is truncated.
type groupAccumulator struct {
	keys    []string
	buckets map[string]*bucket
}

func newGroupAccumulator() *groupAccumulator {
	return &groupAccumulator{
		buckets: make(map[string]*bucket),
	}
}

// Add records one row under the given key.
func (g *groupAccumulator) Add(key string, amount decimal.Decimal) {
	b, ok := g.buckets[key]
	if !ok {
		b = &bucket{}
		g.buckets[key] = b
		g.keys = append(g.keys, key)
	}
	b.Count++
	b.Amount = b.Amount.Add(amount)
}

// Get returns the bucket for the key, or a zero bucket when absent.
func (g *groupAccumulator) Get(key string) bucket {
	if b, ok := g.buckets[key]; ok {
		return *b
	}
	return bucket{Amount: decimal.Zero}
}

// Keys returns the keys in insertion order.
func (g *groupAccumulator) Keys() []string {
	return g.keys
}

// Len returns the number of distinct keys.
func (g *groupAccumulator) Len() int {
	return len(g.keys)
}
