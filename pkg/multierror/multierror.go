package multierror

import (
	"errors"
	"strings"
)

// MultiError collects errors that are reported together, like every
// option used out of context in one parse.
type MultiError struct {
	errors []error
}

// Error joins the collected messages, one per line.
func (err *MultiError) Error() string {
	msgs := make([]string, 0, len(err.errors))
	for _, e := range err.errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// Add adds an error to the Multierror structure, nil is ignored.
func (err *MultiError) Add(e error) {
	if e == nil {
		return
	}
	err.errors = append(err.errors, e)
}

// Return is used as a wrapper on return on whether to return the
// MultiError Structure if errors exist or nil instead of delivering an empty structure
func (err *MultiError) Return() error {
	if len(err.errors) > 0 {
		return err
	}

	return nil
}

// Errors returns the collected errors in the order they were added.
func (err *MultiError) Errors() []error {
	return err.errors
}

func (err *MultiError) Len() int {
	return len(err.errors)
}

// Unwrap lets errors.Is and errors.As look at every collected error.
func (err *MultiError) Unwrap() []error {
	return err.errors
}

func (err *MultiError) Is(other error) bool {
	for _, e := range err.errors {
		if errors.Is(e, other) {
			return true
		}
	}
	return false
}
