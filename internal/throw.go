package internal

import "github.com/pkg/errors"

// Threading errors through every axiom, and through the fused cases which call
// other axioms recursively, would add a lot of noise to the geometry. Instead,
// we use panics, and the public API recovers to convert to an error.

var (
	// The coefficients describe no line, because a and b are both zero (or a
	// line was requested through two coincident points).
	ErrInvalidLine = errors.New("invalid line")
	// The configuration admits infinitely many creases.
	ErrDegenerate = errors.New("degenerate input")
	// No axiom matches the kinds of the operands.
	ErrDispatch = errors.New("no matching axiom")
	// The operation is not defined for the given operand kinds.
	ErrUnsupportedOperand = errors.New("unsupported operand")
)

// FoldError is the panic payload used internally. It is a distinct type so
// that runtime errors (which also implement error) are never mistaken for it.
type FoldError struct {
	err error
}

func (e FoldError) Error() string { return e.err.Error() }
func (e FoldError) Unwrap() error { return e.err }

// Panic with a FoldError wrapping one of the sentinel kinds above.
func fatalf(kind error, format string, args ...interface{}) {
	panic(FoldError{errors.Wrapf(kind, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if foldError, ok := r.(FoldError); ok {
			return foldError.err
		}
		panic(r)
	}
	return nil
}

// Catch runs fn and converts a FoldError panic into an error.
func Catch(fn func()) (err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}
