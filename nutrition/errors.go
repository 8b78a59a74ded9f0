package nutrition

import (
	"fmt"

	"github.com/spetersoncode/nutriagent"
)

// NoResultsError is returned when a search yields no candidate foods.
type NoResultsError struct {
	Query string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no results for query %q", e.Query)
}

// Kind returns nutriagent.KindUpstream.
func (e *NoResultsError) Kind() nutriagent.ErrorKind {
	return nutriagent.KindUpstream
}

// LookupError wraps a transport or decoding failure during a search.
type LookupError struct {
	Query string
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("nutrition lookup for %q failed: %v", e.Query, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Kind returns nutriagent.KindUpstream.
func (e *LookupError) Kind() nutriagent.ErrorKind {
	return nutriagent.KindUpstream
}
