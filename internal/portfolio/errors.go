package portfolio

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a conversion failure.
type Kind string

const (
	KindBadInput            Kind = "BadInput"
	KindTooLarge            Kind = "TooLarge"
	KindExtractionFailed    Kind = "ExtractionFailed"
	KindUpstreamError       Kind = "UpstreamError"
	KindMalformedCompletion Kind = "MalformedCompletion"
	KindTemplatingDefect    Kind = "TemplatingDefect"
)

// Response summaries shown to callers.
const (
	summaryEmpty     = "Empty PDF file received."
	summaryTooLarge  = "PDF file too large."
	summaryParsing   = "Parsing failed"
	summaryUpstream  = "Completion failed"
	summaryRendering = "Rendering failed"
)

// Error is a classified conversion failure.
type Error struct {
	Kind    Kind
	Summary string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Summary)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Summary, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Details is the message surfaced in the "details" field of the response.
func (e *Error) Details() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Status maps the kind to an HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadInput:
		return http.StatusBadRequest
	case KindTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, err error) *Error {
	summary := summaryParsing
	switch kind {
	case KindBadInput:
		summary = summaryEmpty
	case KindTooLarge:
		summary = summaryTooLarge
	case KindUpstreamError:
		summary = summaryUpstream
	case KindTemplatingDefect:
		summary = summaryRendering
	}
	return &Error{Kind: kind, Summary: summary, Err: err}
}

// KindOf returns the kind of a classified error, or TemplatingDefect for
// anything unclassified.
func KindOf(err error) Kind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return KindTemplatingDefect
}
