package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
)

// ErrorKind is the closed set of failure categories produced by the request
// layer.
type ErrorKind int

const (
	KindUnauthorized ErrorKind = iota + 1
	KindForbidden
	KindNotFound
	KindValidation
	KindServerError
	KindUnknownStatus
	KindConnectionFailure
	KindTimeout
	KindTransport
	KindMalformedResponse
)

// Sentinel errors, one per [ErrorKind]. Every [*APIError] matches the
// sentinel of its kind with [errors.Is].
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrServerError       = errors.New("server error")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrConnectionFailure = errors.New("connection failure")
	ErrTimeout           = errors.New("request timed out")
	ErrTransport         = errors.New("transport error")
	ErrMalformedResponse = errors.New("malformed response")
)

var kindSentinels = map[ErrorKind]error{
	KindUnauthorized:      ErrUnauthorized,
	KindForbidden:         ErrForbidden,
	KindNotFound:          ErrNotFound,
	KindValidation:        ErrValidation,
	KindServerError:       ErrServerError,
	KindUnknownStatus:     ErrUnexpectedStatus,
	KindConnectionFailure: ErrConnectionFailure,
	KindTimeout:           ErrTimeout,
	KindTransport:         ErrTransport,
	KindMalformedResponse: ErrMalformedResponse,
}

// String returns the name of the kind as used in logs.
func (k ErrorKind) String() string {
	if s, ok := kindSentinels[k]; ok {
		return s.Error()
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// APIError is the Failure branch of a request outcome.
type APIError struct {
	Kind ErrorKind

	// Status is the HTTP status code; zero for transport failures.
	Status int

	// Detail is the server-provided explanation or the transport message.
	Detail string

	// Endpoint is the endpoint the request was sent to.
	Endpoint string

	// Issues holds the field errors of a validation failure.
	Issues []models.ValidationIssue

	// Err is the underlying transport or decoding error, if any.
	Err error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Detail, e.Endpoint)
	case KindValidation:
		parts := make([]string, 0, len(e.Issues))
		for _, issue := range e.Issues {
			if issue.Field == "" {
				parts = append(parts, issue.Message)
				continue
			}
			parts = append(parts, issue.Field+": "+issue.Message)
		}
		return fmt.Sprintf("%s: %s", e.Kind, strings.Join(parts, "; "))
	case KindUnknownStatus:
		return fmt.Sprintf("http %d: %s", e.Status, e.Detail)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *APIError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s, ok := kindSentinels[e.Kind]; ok {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// AsAPIError extracts the [*APIError] from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
