package kuadro

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidArgument = errors.New("invalid argument")

type InvalidArgumentError string

func (e InvalidArgumentError) Error() string {
	return string(e)
}

func (e InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// -----------------------------------------------------------------------------

var ErrNotFound = errors.New("not found")

type NotFoundError string

func (e NotFoundError) Error() string {
	return string(e)
}

func (e NotFoundError) Unwrap() error {
	return ErrNotFound
}

// -----------------------------------------------------------------------------

var ErrAlreadyExists = errors.New("already exists")

type AlreadyExistsError string

func (e AlreadyExistsError) Error() string {
	return string(e)
}

func (e AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// -----------------------------------------------------------------------------

// ErrUnauthenticated denotes no authenticated user in context.
var ErrUnauthenticated = errors.New("unauthenticated")

type UnauthenticatedError string

func (e UnauthenticatedError) Error() string {
	return string(e)
}

func (e UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}

// -----------------------------------------------------------------------------

// ErrUpstream denotes a failure talking to the remote asset host.
var ErrUpstream = errors.New("upstream failure")

type UpstreamError string

func (e UpstreamError) Error() string {
	return string(e)
}

func (e UpstreamError) Unwrap() error {
	return ErrUpstream
}

// -----------------------------------------------------------------------------

// ValidationError carries every field level failure of an input,
// not just the first one found.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
