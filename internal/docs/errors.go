package docs

import "fmt"

// FetchError describes a failed live fetch: network error, DNS failure,
// timeout or a non-2xx response. It never escapes the resolver.
type FetchError struct {
	URL        string
	StatusCode int // 0 when the request never produced a response
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractionError describes a body that could not be turned into usable
// text: unparseable markup, a non-HTML payload, or content that is empty
// after normalization.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "extract content: " + e.Reason
}
