package cart

// Package cart implements the shopping cart: an ordered collection of line
// items keyed by product id, the four mutation operations, derived totals,
// and a change subscription used by the storage adapter. The service never
// touches storage itself.
