package gradle

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
	"mvdan.cc/sh/v3/shell"
)

// failureMarkers are printed by the compiler on failures that do not
// always produce a non-zero exit code.
var failureMarkers = []string{
	"AssertionError:",
	"CompilationError:",
	"CompilationFailedException:",
	"Compilation failed",
}

var ErrEmptyCommand = errors.New("empty build command")

// Config describes how the build tool is invoked.
type Config struct {
	// Command is split with shell rules, e.g. "./gradlew" or
	// "python tools/gradle.py".
	Command string
	// Dir is the working directory, the current one when empty.
	Dir string
	// Env is appended to the current environment.
	Env []string

	Clean      bool
	Stacktrace bool
	Daemon     bool
}

func DefaultConfig() Config {
	return Config{
		Command:    "./gradlew",
		Stacktrace: true,
	}
}

// Runner runs the build tool and returns what it printed.
type Runner struct {
	Config
	Log *zap.SugaredLogger
}

func NewRunner(cfg Config, log *zap.SugaredLogger) *Runner {
	return &Runner{Config: cfg, Log: log}
}

// Run invokes the build tool with args, e.g. Run("dependencies").
func (r *Runner) Run(args ...string) (string, error) {
	return r.run(false, args)
}

// Build is Run preceded by a clean when Clean is set.
func (r *Runner) Build(args ...string) (string, error) {
	return r.run(r.Clean, args)
}

func (r *Runner) run(clean bool, args []string) (string, error) {
	cmd, err := r.buildCmd(clean, args)
	if err != nil {
		return "", err
	}
	r.Log.Debugf("running '%s' in '%s'", strings.Join(cmd.Args, " "), cmd.Dir)

	out, err := cmd.CombinedOutput()
	output := string(out)
	if err != nil {
		return output, fmt.Errorf("running '%s': %w\nThe stderr/stdout were:\n%s", strings.Join(cmd.Args, " "), err, output)
	}
	for _, marker := range failureMarkers {
		if strings.Contains(output, marker) {
			return output, fmt.Errorf("running '%s': output contains '%s'\nThe stderr/stdout were:\n%s", strings.Join(cmd.Args, " "), marker, output)
		}
	}
	return output, nil
}

func (r *Runner) buildCmd(clean bool, args []string) (*exec.Cmd, error) {
	words, err := shell.Fields(r.Command, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("parsing build command '%s': %w", r.Command, err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}
	if clean {
		words = append(words, "clean")
	}
	if r.Stacktrace {
		words = append(words, "--stacktrace")
	}
	if !r.Daemon {
		words = append(words, "--no-daemon")
	}
	words = append(words, args...)

	cmd := exec.Command(words[0], words[1:]...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), r.Env...)
	return cmd, nil
}
