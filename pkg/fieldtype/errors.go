package fieldtype

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// ValidationError is a user facing problem with a field value. Message and
// Plural hold placeholders such as %url% that are filled from Parameters.
type ValidationError struct {
	Message    string
	Plural     string
	Parameters map[string]string
	Target     string
}

func NewValidationError(message string, parameters map[string]string) ValidationError {
	return ValidationError{Message: message, Parameters: parameters}
}

func (e ValidationError) Error() string {
	if len(e.Parameters) == 0 {
		return e.Message
	}

	placeholders := make([]string, 0, len(e.Parameters))
	for placeholder := range e.Parameters {
		placeholders = append(placeholders, placeholder)
	}

	// Longest first, so a placeholder wins over any placeholder it contains.
	slices.SortFunc(placeholders, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})

	pairs := make([]string, 0, 2*len(placeholders))
	for _, placeholder := range placeholders {
		pairs = append(pairs, placeholder, e.Parameters[placeholder])
	}

	return strings.NewReplacer(pairs...).Replace(e.Message)
}

// InvalidArgumentError is returned when a field type receives input of a shape
// it cannot handle at all.
type InvalidArgumentError struct {
	Argument string
	Value    any
	Reason   string
}

func NewInvalidArgumentError(argument string, value any, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Value: value, Reason: reason}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' is invalid: %s, got %T", e.Argument, e.Reason, e.Value)
}

func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}
