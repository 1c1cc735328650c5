package forvo

import "fmt"

// TransportError reports a network failure or a non-success HTTP status on
// either the lookup or the audio fetch call. It is never retried.
type TransportError struct {
	Op         string // "lookup" or "fetch audio"
	URL        string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("forvo: %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("forvo: %s failed with status %d", e.Op, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// LookupError carries the error message the lookup service returned in its
// response body, verbatim.
type LookupError struct {
	Message string
}

func (e *LookupError) Error() string {
	return "forvo: " + e.Message
}
