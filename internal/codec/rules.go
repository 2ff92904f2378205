package codec

import "fmt"

// ValidationError reports a violated serialization invariant. It is raised
// before any network call is attempted and is distinct from the typed
// errors raised for server-reported faults.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation: " + e.Message
}

// Invalidf creates a ValidationError with a formatted message.
func Invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Field is one rule in an entity's serialization table.
type Field struct {
	// Name is the wire key the value is emitted under.
	Name string

	// Required fails serialization when the value is absent.
	Required bool

	// MaxLen caps the length of string values; 0 means no cap.
	MaxLen int

	// Value returns the field value and whether it is present.
	Value func() (any, bool)
}

// Check is a cross-field invariant evaluated before any field is emitted.
// It returns a ValidationError (as error) when violated, nil otherwise.
type Check func() error

// Marshal evaluates the cross-field checks, then walks the field table and
// produces the wire object. Rules are data: validation lives in the table,
// not in per-field control flow.
func Marshal(fields []Field, checks ...Check) (map[string]any, error) {
	for _, check := range checks {
		if err := check(); err != nil {
			return nil, err
		}
	}

	object := make(map[string]any, len(fields))
	for _, field := range fields {
		value, present := field.Value()
		if !present {
			if field.Required {
				return nil, Invalidf("%s is required", field.Name)
			}
			continue
		}
		if field.MaxLen > 0 {
			if s, ok := value.(string); ok && len(s) > field.MaxLen {
				return nil, Invalidf("%s cannot exceed %d characters", field.Name, field.MaxLen)
			}
		}
		object[field.Name] = value
	}
	return object, nil
}
