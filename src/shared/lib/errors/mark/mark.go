package mark

import "github.com/cockroachdb/errors"

// Wrap marks handledErr with the marking error so callers can
// branch on it with markers.Is, and adds msg as context
func Wrap(handledErr error, newMarkingError error, msg string) error {
	newErr := errors.Mark(handledErr, newMarkingError)
	return errors.Wrap(newErr, msg)
}

func Message(newMarkingError error, msg string) error {
	err := errors.New(msg)
	return errors.Mark(err, newMarkingError)
}
