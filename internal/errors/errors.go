// Package errors defines the notifier error taxonomy.
//
// Every failure the notifier can surface falls into one of three
// categories: bad hook input (exit 1, nothing attempted), storage
// failure (exit 1, the event is dropped whole), or delivery failure
// (logged and swallowed, never fatal).
package errors

import "fmt"

// Category classifies a notifier error for exit-code and logging decisions.
type Category int

const (
	// Input indicates a malformed or missing hook invocation: absent
	// argument, empty stdin, or JSON that does not parse.
	Input Category = iota
	// Storage indicates the task database was unreachable or a write failed.
	Storage
	// Delivery indicates a notification transport failed or was missing.
	Delivery
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case Input:
		return "Input Error"
	case Storage:
		return "Storage Error"
	case Delivery:
		return "Delivery Error"
	default:
		return "Error"
	}
}

// Error is a categorized notifier error, optionally wrapping a cause.
type Error struct {
	Category Category
	Message  string
	Err      error
}

// Error returns the message, with the wrapped cause appended when present.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewInputError creates an Input-category error with no cause.
func NewInputError(message string) *Error {
	return &Error{Category: Input, Message: message}
}

// NewStorageError creates a Storage-category error wrapping cause.
func NewStorageError(message string, cause error) *Error {
	return &Error{Category: Storage, Message: message, Err: cause}
}

// NewDeliveryError creates a Delivery-category error wrapping cause.
func NewDeliveryError(message string, cause error) *Error {
	return &Error{Category: Delivery, Message: message, Err: cause}
}
