package pkg

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every input validation failure, so handlers
// can map it to 400 without knowing the concrete field.
var ErrValidation = errors.New("validation failed")

func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ValidationMessage strips the sentinel prefix so the user sees only the field message.
func ValidationMessage(err error) string {
	msg := err.Error()
	prefix := ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
