package alloc

import (
	"bytes"
	"errors"
	"testing"
)

type exitCalled struct {
	code int
}

// captureFailure makes the failure path observable: exit panics instead of
// terminating and the default diagnostic is written to the returned buffer.
func captureFailure(t *testing.T) *bytes.Buffer {
	t.Helper()

	var out bytes.Buffer
	oldExit, oldStderr := exit, stderr
	exit = func(code int) { panic(exitCalled{code: code}) }
	stderr = &out

	t.Cleanup(func() {
		exit, stderr = oldExit, oldStderr
		failureHook.Store(nil)
	})
	return &out
}

// runExit runs fn and returns the status passed to exit, or -1.
func runExit(fn func()) (code int) {
	code = -1
	defer func() {
		if r := recover(); r != nil {
			ec, ok := r.(exitCalled)
			if !ok {
				panic(r)
			}
			code = ec.code
		}
	}()
	fn()
	return code
}

// panicError runs fn and returns the error it panicked with, or nil.
func panicError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = errors.New("non-error panic")
			}
			err = e
		}
	}()
	fn()
	return nil
}
