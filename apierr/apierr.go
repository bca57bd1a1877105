// Package apierr defines the error taxonomy shared by all services and
// the lookup table the boundary middleware uses to turn an error kind
// into an HTTP response.
package apierr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindUnauthorized Kind = iota
	KindBadRequest
	KindDuplicateKey
	KindNotFound
	KindInvalidInput
	KindInvalidMimeType
	KindNoPhotoUploaded
	KindInternal
)

var statusByKind = map[Kind]int{
	KindUnauthorized:    http.StatusUnauthorized,
	KindBadRequest:      http.StatusBadRequest,
	KindDuplicateKey:    http.StatusBadRequest,
	KindNotFound:        http.StatusNotFound,
	KindInvalidInput:    http.StatusBadRequest,
	KindInvalidMimeType: http.StatusBadRequest,
	KindNoPhotoUploaded: http.StatusBadRequest,
	KindInternal:        http.StatusInternalServerError,
}

var defaultMessage = map[Kind]string{
	KindUnauthorized:    "Invalid authorization, please login again",
	KindBadRequest:      "Bad request",
	KindDuplicateKey:    "Already exists",
	KindNotFound:        "Not found",
	KindInvalidInput:    "Invalid input",
	KindInvalidMimeType: "Invalid mime type",
	KindNoPhotoUploaded: "No photo uploaded",
	KindInternal:        "Something went wrong, please try again later",
}

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an error of the given kind with the kind's default message.
func New(kind Kind) *Error {
	return &Error{Kind: kind, Message: defaultMessage[kind]}
}

// Newf builds an error of the given kind with an explicit message.
func Newf(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Unauthorized is deliberately generic so credential failures cannot be
// told apart by the caller.
func Unauthorized() *Error { return New(KindUnauthorized) }

func BadRequest() *Error { return New(KindBadRequest) }

// Status resolves an error to the HTTP status code and client-facing
// message the boundary handler should respond with. Untagged errors map
// to a generic 500 so internals never leak.
func Status(err error) (int, string) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if status, ok := statusByKind[apiErr.Kind]; ok {
			return status, apiErr.Message
		}
	}
	return http.StatusInternalServerError, defaultMessage[KindInternal]
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
