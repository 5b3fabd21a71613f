package storage

// Package storage persists the cart in the app's durable preference store as
// a JSON snapshot under a single key. The cart itself stays ignorant of
// storage: the store subscribes to cart change events and rewrites the
// snapshot after every committed mutation.
