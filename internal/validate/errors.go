package validate

import (
	"errors"
	"fmt"
	"strings"
)

// RootField names errors raised by cross-field rules rather than one field.
const RootField = "__root__"

// ErrInvalidRecord matches every *Error with errors.Is.
var ErrInvalidRecord = errors.New("invalid record")

// FieldError is a single violation located by its dotted JSON path.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Error aggregates every violation found while constructing one record.
type Error struct {
	Model  string       `json:"model"`
	Errors []FieldError `json:"errors"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	n := len(e.Errors)
	fmt.Fprintf(&b, "%d validation error", n)
	if n != 1 {
		b.WriteString("s")
	}
	fmt.Fprintf(&b, " for %s", e.Model)
	for _, fe := range e.Errors {
		fmt.Fprintf(&b, "\n%s\n  %s (rule=%s)", fe.Field, fe.Message, fe.Rule)
	}
	return b.String()
}

// Is reports whether target is ErrInvalidRecord.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidRecord
}

// Fields returns the paths of all violations in reporting order.
func (e *Error) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}
