package internal

import "github.com/pkg/errors"

// Threading errors up and down the sweep, the face walk and the search would
// add a ton of complexity to the code. Instead, broken internal invariants
// panic, and the public API recovers to convert to an error.

type PipelineError struct {
	error
}

func (e PipelineError) Cause() error {
	return e.error
}

func (e PipelineError) Unwrap() error {
	return e.error
}

// Panic with a PipelineError.
func fatalf(format string, args ...interface{}) {
	panic(PipelineError{errors.Errorf(format, args...)})
}

// Converts a recovered PipelineError into an error. Any other panic value is
// re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if pipelineError, ok := r.(PipelineError); ok {
			return pipelineError
		}
		panic(r)
	}
	return nil
}
