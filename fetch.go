package helparc

import "context"

// Fetcher retrieves raw page HTML from URLs. Implementations own the
// retry policy and the shared network client.
type Fetcher interface {
	// Fetch returns the response body for the URL.
	// Returns ENOTFOUND when the page definitively does not exist (HTTP
	// 404; never retried), EUNAVAILABLE when transient failures exhausted
	// the retry budget, and EINTERNAL for unexpected status codes.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases network resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
