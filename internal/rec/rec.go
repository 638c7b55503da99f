// Package rec provides utilities for recovering from panics as errors.
package rec

import (
	"fmt"
	"runtime/debug"
)

func rec() error {
	if r := recover(); r != nil {
		switch t := r.(type) {
		case error:
			return fmt.Errorf("recovered panic: %w\n%s", t, debug.Stack())
		default:
			return fmt.Errorf("recovered panic: %v\n%s", r, debug.Stack())
		}
	}
	return nil
}

// Error recovers a panic and assigns it to the provided error.
func Error(err *error) {
	if r := rec(); r != nil {
		*err = r
	}
}
