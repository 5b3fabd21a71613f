package catalog

// Package catalog provides read-only access to the static product list. The
// products ship embedded in the binary as a YAML document; the service layers
// search and category filtering on top of the ordered list.
