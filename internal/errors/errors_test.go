package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestCategoryString(t *testing.T) {
	tests := map[string]struct {
		category Category
		expected string
	}{
		"Input":    {category: Input, expected: "Input Error"},
		"Storage":  {category: Storage, expected: "Storage Error"},
		"Delivery": {category: Delivery, expected: "Delivery Error"},
		"Unknown":  {category: Category(99), expected: "Error"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			result := test.category.String()
			if result != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, result)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := NewInputError("no event data on stdin")

	if err.Error() != "no event data on stdin" {
		t.Errorf("Expected 'no event data on stdin', got %q", err.Error())
	}
	if err.Category != Input {
		t.Errorf("Expected Input category, got %v", err.Category)
	}
}

func TestErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewStorageError("insert task", cause)

	if err.Error() != "insert task: disk full" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestErrorsAsFindsCategory(t *testing.T) {
	wrapped := fmt.Errorf("handling event: %w", NewDeliveryError("send notification", fmt.Errorf("exit status 1")))

	var notifErr *Error
	if !stderrors.As(wrapped, &notifErr) {
		t.Fatal("expected errors.As to find *Error")
	}
	if notifErr.Category != Delivery {
		t.Errorf("Expected Delivery category, got %v", notifErr.Category)
	}
}
