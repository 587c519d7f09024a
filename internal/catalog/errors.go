package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("invalid esbmc setting")

// ValidationError reports an option value that violates its documented
// contract, or a set of options that cannot be combined.
type ValidationError struct {
	Section string
	Keys    []string
	Message string
}

func (e *ValidationError) Error() string {
	qualified := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		qualified[i] = e.Section + "." + k
	}
	if len(qualified) == 0 {
		return fmt.Sprintf("%s: %s", e.Section, e.Message)
	}
	return fmt.Sprintf("%s: %s", strings.Join(qualified, ", "), e.Message)
}

// Is makes errors.Is(err, ErrValidation) hold for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
