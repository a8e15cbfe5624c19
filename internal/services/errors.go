package services

import "fmt"

// GenerationError is terminal for the request that triggered it. Handlers map
// it to an HTTP 500 with the message as detail.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error { return e.Err }

type SearchErrorKind string

const (
	SearchErrorQuotaExceeded SearchErrorKind = "quota_exceeded"
	SearchErrorProvider      SearchErrorKind = "provider_error"
)

// SearchError aborts the whole multi-keyword search. Quota exhaustion gets
// its own kind so callers can tell "try again later" from "nothing found".
type SearchError struct {
	Kind    SearchErrorKind
	Message string
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("youtube search failed (%s): %s", e.Kind, e.Message)
}
