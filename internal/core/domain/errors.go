package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("invalid request")
	ErrStore      = errors.New("store failure")
)

// StoreError wraps a transport, pool or query failure coming from a backing store.
// It matches ErrStore with errors.Is and unwraps to the driver error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

// NewStoreError returns nil for a nil err and leaves not-found and
// already wrapped errors untouched.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStore) {
		return err
	}

	return &StoreError{Op: op, Err: err}
}

func NotFound(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, ErrNotFound)
}

func Invalid(field, message string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, message)
}
