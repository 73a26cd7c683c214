package script

import "github.com/pkg/errors"

// Threading parse errors through every argument conversion would bury the
// command table in error plumbing. Instead, parsing panics with a parseError
// and exec recovers it into an ordinary error. Any other panic is re-raised.

type parseError struct {
	error
}

func fatalf(format string, args ...interface{}) {
	panic(parseError{errors.Errorf(format, args...)})
}

func handleParsePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(parseError); ok {
			return err
		}
		panic(r)
	}
	return nil
}
