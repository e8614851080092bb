package httpx

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the domain layer.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicate          = errors.New("duplicate entry")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUpload             = errors.New("upload failed")
)

type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }

func (e *apiError) Unwrap() error { return e.kind }

// Errorf builds an error that matches kind under errors.Is while carrying a
// client-facing message.
func Errorf(kind error, format string, args ...any) error {
	return &apiError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// RespondError maps domain errors to the portal envelope. The portal keeps
// validation, conflict, credential and not-found failures at 400 so the client
// treats them uniformly; only the auth gate answers 401. Anything unclassified
// surfaces as a generic 500 with no internal detail.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrNotFound):
		Fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthorized):
		Fail(w, http.StatusUnauthorized, err.Error())
	default:
		Fail(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
