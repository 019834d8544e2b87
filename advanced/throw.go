package advanced

import "github.com/pkg/errors"

// Precondition failures deep inside the recursive BVH construction are raised
// as panics rather than threaded back up through every call. Public entry
// points recover them and hand back an ordinary error.

// GeometryError marks a panic raised by this package on purpose, as opposed to
// a genuine runtime panic.
type GeometryError struct {
	error
}

func (e GeometryError) Unwrap() error {
	return e.error
}

func (e GeometryError) Cause() error {
	return e.error
}

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError{errors.Errorf(format, args...)})
}

// Convert the result of recover() into an error. A GeometryError is returned
// as is, nil stays nil, and anything else is re-panicked.
func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
