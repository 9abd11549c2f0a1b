package gradle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRunner(cfg Config) *Runner {
	return NewRunner(cfg, zap.NewNop().Sugar())
}

func TestRunAppendsFlags(t *testing.T) {
	r := newTestRunner(Config{Command: "echo", Stacktrace: true, Clean: true})

	out, err := r.Run("dependencies")
	require.NoError(t, err)
	require.Equal(t, "--stacktrace --no-daemon dependencies", strings.TrimSpace(out))

	out, err = r.Build("r8", "-Pexclude_deps")
	require.NoError(t, err)
	require.Equal(t, "clean --stacktrace --no-daemon r8 -Pexclude_deps", strings.TrimSpace(out))
}

func TestRunCommandWithArguments(t *testing.T) {
	r := newTestRunner(Config{Command: `echo "tools/gradle.py"`, Daemon: true})
	out, err := r.Run("r8lib")
	require.NoError(t, err)
	require.Equal(t, "tools/gradle.py r8lib", strings.TrimSpace(out))
}

func TestRunEnvironment(t *testing.T) {
	r := newTestRunner(Config{Command: "sh -c 'echo $RELEASE_TEST_VALUE' sh", Daemon: true, Env: []string{"RELEASE_TEST_VALUE=42"}})
	out, err := r.Run()
	require.NoError(t, err)
	require.Equal(t, "42", strings.TrimSpace(out))
}

func TestRunFailureMarker(t *testing.T) {
	r := newTestRunner(Config{Command: "echo", Daemon: true})
	out, err := r.Run("Compilation failed")
	require.Error(t, err)
	require.Contains(t, out, "Compilation failed")
}

func TestRunExitCode(t *testing.T) {
	r := newTestRunner(Config{Command: "false", Daemon: true})
	_, err := r.Run()
	require.Error(t, err)
}

func TestRunEmptyCommand(t *testing.T) {
	r := newTestRunner(Config{Command: "  "})
	_, err := r.Run()
	require.ErrorIs(t, err, ErrEmptyCommand)
}
