package record

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a local validation failure, detected before any
// network call. It is distinct from the store client's transport errors so
// callers can tell "you sent something broken" from "the store is down".
var ErrInvalidInput = errors.New("invalid input")

// Validate checks that the registration carries both required references.
// A registration without a participant or a course is meaningless and must
// never reach the store.
func (r Registration) Validate() error {
	return ValidateRegistrationFields(map[string]any{
		"participant": r.Participant,
		"course":      r.Course,
	})
}

// ValidateRegistrationFields applies the registration gate to a raw field
// set, as submitted by a form or CLI before encoding to JSON. Both the
// participant and course fields must be present and non-empty.
func ValidateRegistrationFields(fields map[string]any) error {
	var missing []string
	for _, name := range []string{"participant", "course"} {
		v, ok := fields[name]
		if !ok || v == nil || v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: registration requires %v", ErrInvalidInput, missing)
	}
	return nil
}
