package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationErrors maps a field name (as seen by API clients) to the ordered
// list of messages describing why its value was rejected.
type ValidationErrors map[string][]string

// Add appends message to the messages of field.
func (e ValidationErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Error joins all messages in field order.
func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed")
	for _, field := range fields {
		b.WriteString("; ")
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(strings.Join(e[field], ", "))
	}

	return b.String()
}

// NewFieldError returns ValidationErrors holding a single message for field.
func NewFieldError(field, message string) ValidationErrors {
	return ValidationErrors{field: {message}}
}
