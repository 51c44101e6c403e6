// Package runtimex contains runtime extensions. This package is inspired to
// https://pkg.go.dev/github.com/m-lab/go/rtx, except that it's simpler.
package runtimex

import (
	"errors"
	"fmt"
)

// PanicOnError calls panic() if err is not nil.
func PanicOnError(err error, message string) {
	if err != nil {
		panic(fmt.Errorf("%s: %w", message, err))
	}
}

// Assert calls panic if assertion is false.
func Assert(assertion bool, message string) {
	if !assertion {
		panic(errors.New(message))
	}
}

// Try0 panics if err is not nil.
func Try0(err error) {
	PanicOnError(err, "Try0")
}

// Try1 panics if err is not nil and otherwise returns v1.
func Try1[T1 any](v1 T1, err error) T1 {
	PanicOnError(err, "Try1")
	return v1
}
