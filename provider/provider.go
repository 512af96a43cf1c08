package provider

import (
	"errors"
	"fmt"
)

var (
	providers = []Provider{}

	// ErrNoResults signals a search which completed with zero video entries.
	ErrNoResults = errors.New("no video found for the given query")
	// ErrBadResponse signals a response no video identifier could be extracted from.
	ErrBadResponse = errors.New("cannot extract video identifiers from search response")
)

// Result is a single search entry as returned by the platform.
type Result struct {
	ID    string
	Title string
	Owner string
}

// URL returns the canonical watch page address for the result.
func (result Result) URL() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", result.ID)
}

// Provider defines the generic interface every search provider
// should be basing its logic on.
type Provider interface {
	search(query string) ([]*Result, error)
}

// Search issues a single query against the registered provider and returns
// the top entry in the platform's own ranking, untouched: no re-ranking,
// no filtering, no deduplication.
func Search(query string) (*Result, error) {
	for _, provider := range providers {
		results, err := provider.search(query)
		if err != nil {
			return nil, err
		}

		if len(results) > 0 {
			return results[0], nil
		}
	}

	return nil, ErrNoResults
}
