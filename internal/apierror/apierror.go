// Package apierror defines the typed failures returned by procedures and their
// mapping onto HTTP responses.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API error.
type Kind int

const (
	Internal Kind = iota
	InvalidInput
	Unauthorized
	Forbidden
	NotFound
	InvalidCredential
	Conflict
	TooManyRequests
	Unavailable
)

var kindCodes = map[Kind]string{
	Internal:          "INTERNAL_SERVER_ERROR",
	InvalidInput:      "BAD_REQUEST",
	Unauthorized:      "UNAUTHORIZED",
	Forbidden:         "FORBIDDEN",
	NotFound:          "NOT_FOUND",
	InvalidCredential: "INVALID_CREDENTIAL",
	Conflict:          "CONFLICT",
	TooManyRequests:   "TOO_MANY_REQUESTS",
	Unavailable:       "SERVICE_UNAVAILABLE",
}

// Code returns the wire code of the kind.
func (k Kind) Code() string {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return kindCodes[Internal]
}

// Error is a failure with a user-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind onto a response status.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case InvalidInput:
		return http.StatusBadRequest
	case Unauthorized, InvalidCredential:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case TooManyRequests:
		return http.StatusTooManyRequests
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Response is the JSON error envelope.
type Response struct {
	Error Body `json:"error"`
}

// Body is the content of the error envelope.
type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToResponse exposes the message only; the cause stays server side.
func (e *Error) ToResponse() Response {
	return Response{Error: Body{Code: e.Kind.Code(), Message: e.Message}}
}

// Write sends the error envelope with the mapped status.
func (e *Error) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.HTTPStatus())
	_ = json.NewEncoder(w).Encode(e.ToResponse())
}

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NewErrInvalidInput(field, reason string) *Error {
	return New(InvalidInput, fmt.Sprintf("invalid input: %s %s", field, reason), nil)
}

func NewErrUnauthorized() *Error {
	return New(Unauthorized, "unauthorized", nil)
}

func NewErrForbidden(resource string) *Error {
	return New(Forbidden, fmt.Sprintf("access to %s denied", resource), nil)
}

func NewErrNotFound(resource string, err error) *Error {
	return New(NotFound, fmt.Sprintf("%s not found", resource), err)
}

func NewErrInvalidCredential() *Error {
	return New(InvalidCredential, "invalid password", nil)
}

func NewErrConflict(message string, err error) *Error {
	return New(Conflict, message, err)
}

func NewErrTooManyRequests() *Error {
	return New(TooManyRequests, "too many requests", nil)
}

func NewErrUnavailable(feature string) *Error {
	return New(Unavailable, fmt.Sprintf("%s is not available", feature), nil)
}

func NewErrInternal(err error) *Error {
	return New(Internal, "internal server error", err)
}

// From returns err as *Error when one is in the chain, otherwise an Internal error wrapping it.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewErrInternal(err)
}

// IsKind reports whether an *Error of the given kind is in the chain.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
