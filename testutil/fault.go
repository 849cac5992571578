package testutil

import (
	"bytes"
	"os"
	"os/exec"
	"regexp"
	"testing"

	"github.com/hupe1980/easyspot/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultEnv names the test a child process should run fn for.
const faultEnv = "EASYSPOT_FAULT_TEST"

// ExpectFault asserts that fn terminates the process through the fault
// reporter and that the report contains want.
//
// In the parent, ExpectFault re-executes the test binary restricted to the
// current test. In that child, ExpectFault calls fn; if fn returns, the
// child exits with status 0 and the parent fails the test.
func ExpectFault(t *testing.T, want string, fn func()) {
	t.Helper()

	if os.Getenv(faultEnv) == t.Name() {
		fn()
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=^"+regexp.QuoteMeta(t.Name())+"$", "-test.count=1") //nolint:gosec // re-running own test binary
	cmd.Env = append(os.Environ(), faultEnv+"="+t.Name())

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "no fault raised; stderr:\n%s", stderr.String())
	assert.Equal(t, diag.ExitCode, exitErr.ExitCode(), "stderr:\n%s", stderr.String())
	assert.Contains(t, stderr.String(), want)
}

// InFaultChild reports whether the current process is a child started by
// ExpectFault.
func InFaultChild() bool {
	return os.Getenv(faultEnv) != ""
}
