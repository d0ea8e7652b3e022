package alloc

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// FailureHook runs synchronously right before the process terminates on an
// allocation failure. It receives the layout that could not be satisfied.
type FailureHook func(Layout)

// exitCode matches the status the Go runtime uses for fatal errors.
const exitCode = 2

var (
	failureHook atomic.Pointer[FailureHook]

	// Swapped out by tests.
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// SetFailureHook installs the process-wide allocation failure hook.
// The hook can be installed once; later calls leave it unchanged and
// return false.
func SetFailureHook(hook FailureHook) bool {
	if hook == nil {
		return false
	}
	return failureHook.CompareAndSwap(nil, &hook)
}

func defaultFailureHook(l Layout) {
	fmt.Fprintf(stderr, "memory allocation of %d bytes failed\n", l.Size)
}

// handleAllocError never returns.
func handleAllocError(l Layout) {
	if hook := failureHook.Load(); hook != nil {
		(*hook)(l)
	} else {
		defaultFailureHook(l)
	}
	exit(exitCode)
}
