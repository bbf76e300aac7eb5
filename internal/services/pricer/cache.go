package pricer

import "github.com/shopspring/decimal"

// PriceCache memoizes historical prices by calendar date for the
// lifetime of one run. Owned by the pricer instance, never shared
// across runs.
type PriceCache struct {
	prices map[string]decimal.Decimal
}

// NewPriceCache creates an empty cache.
func NewPriceCache() *PriceCache {
	return &PriceCache{prices: make(map[string]decimal.Decimal)}
}

// Get returns the cached price for date, if any.
func (c *PriceCache) Get(date string) (decimal.Decimal, bool) {
	price, ok := c.prices[date]
	return price, ok
}

// Put stores the price for date.
func (c *PriceCache) Put(date string, price decimal.Decimal) {
	c.prices[date] = price
}

// Len reports the number of cached dates.
func (c *PriceCache) Len() int {
	return len(c.prices)
}
