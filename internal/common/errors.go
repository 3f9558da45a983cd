// Package common holds logging, error and retry helpers shared by every package.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageCorrupted marks a stored document that failed to decode or validate.
	ErrStorageCorrupted = errors.New("stored record corrupted")
	// ErrStorageClosed is returned by stores used after Close.
	ErrStorageClosed = errors.New("storage closed")
	// ErrInvalidConfig wraps configuration validation failures.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError carries a message meant for the terminal alongside the cause,
// which only goes to the log.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.UserMessage
	}
	return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError wraps err with a message for the user.
func NewUserError(userMessage string, err error) error {
	return &UserError{UserMessage: userMessage, Err: err}
}

// UserMessage returns the message to print for err: the UserMessage of the
// first UserError in its chain, or err's own text.
func UserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
