package testutil

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

const childEnv = "RUCHDB_TESTUTIL_EXIT_CHILD"

// ExpectExit re-runs the calling top-level test in a child process in which
// fn is executed. It returns the child's exit status and stderr. If fn
// returns, the child exits with status 0.
//
// Use it for paths that terminate the process. A test may call ExpectExit
// only once, from the top-level test function.
func ExpectExit(t *testing.T, fn func()) (int, string) {
	t.Helper()

	if os.Getenv(childEnv) == t.Name() {
		fn()
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^"+regexp.QuoteMeta(t.Name())+"$") //nolint:gosec // re-runs the test binary
	cmd.Env = append(os.Environ(), childEnv+"="+t.Name())

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), stderr.String()
	}
	require.NoError(t, err)
	return 0, stderr.String()
}
