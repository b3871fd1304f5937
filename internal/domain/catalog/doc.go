// Package catalog derives the ordered list of cheeses to display, and the
// filter facets available, from the raw catalog, reviews and user profile.
//
// Everything here is pure and synchronous: inputs are never mutated and
// every function returns freshly allocated slices.
package catalog
