package polygon

import "github.com/pkg/errors"

// Every rejection wraps one of these kinds. A rejected operation leaves the
// polygon exactly as it was.
var (
	ErrInvalidIndex             = errors.New("invalid index")
	ErrConstraintConflict       = errors.New("constraint conflict")
	ErrMissingContinuityContext = errors.New("missing continuity context")
	ErrInvalidConstraintValue   = errors.New("invalid constraint value")
)

func invalidIndexf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidIndex, format, args...)
}

func conflictf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConstraintConflict, format, args...)
}
