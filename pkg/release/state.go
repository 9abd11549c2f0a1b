package release

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakexks/go-maven-release/pkg/pom"
	"github.com/jakexks/go-maven-release/pkg/version"
)

// Runner invokes the build tool.
type Runner interface {
	// Run returns the output of the build tool, e.g. for Run("dependencies").
	Run(args ...string) (string, error)
	// Build compiles the artifact.
	Build(args ...string) (string, error)
}

// Options describe one release bundle.
type Options struct {
	// Out is the zip file to write.
	Out string
	// Standalone releases the artifact with its dependencies shrunk into
	// it. The descriptor then lists their licenses instead of the
	// dependencies.
	Standalone bool
	// SkipBuild uses the artifact already on disk.
	SkipBuild bool
	// KeepTemp leaves the staging directory behind for inspection.
	KeepTemp bool
	// InstallDir, when set, also receives the staged repository layout,
	// e.g. ~/.m2/repository.
	InstallDir string
	// CheckLicenses fails the release on restricted licenses, unless
	// Force is set.
	CheckLicenses bool
	Force         bool

	Project         pom.Project
	VersionFile     string
	VersionMarker   string
	LicenseManifest string
	Dependencies    pom.DependencyOptions

	Artifact            string
	StandaloneArtifact  string
	BuildArgs           []string
	StandaloneBuildArgs []string
}

// DefaultOptions release D8/R8 from the root of its checkout.
func DefaultOptions() Options {
	return Options{
		Project:             pom.DefaultProject(),
		VersionFile:         version.DefaultFile,
		VersionMarker:       version.DefaultMarker,
		LicenseManifest:     "LIBRARY-LICENSE",
		Dependencies:        pom.DefaultDependencyOptions(),
		Artifact:            "build/libs/r8.jar",
		StandaloneArtifact:  "build/libs/r8lib.jar",
		BuildArgs:           []string{"r8", "-Pexclude_deps"},
		StandaloneBuildArgs: []string{"r8lib", "-Pno_internal"},
	}
}

type State struct {
	Log *zap.SugaredLogger
	Options

	runner Runner
	tmpDir string
}

// NewLogger returns the development logger, at debug level when debug is
// set.
func NewLogger(debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Init prepares the staging directory. Cleanup must be called once the
// state is no longer needed.
func (s *State) Init(log *zap.SugaredLogger, opts Options, runner Runner) error {
	s.Log = log
	s.Options = opts
	s.runner = runner

	tmpDir, err := newTempDir()
	if err != nil {
		return fmt.Errorf("creating the staging directory: %w", err)
	}
	s.tmpDir = tmpDir
	s.Log.Debugf("staging directory is '%s'", tmpDir)
	return nil
}

func (s *State) Cleanup() {
	if s.tmpDir == "" {
		return
	}
	if s.KeepTemp {
		s.Log.Infof("Keeping staging directory %s", s.tmpDir)
		return
	}
	os.RemoveAll(s.tmpDir)
}

func newTempDir() (string, error) {
	tmpDir := filepath.Join(os.TempDir(), "go-maven-release-"+uuid.NewString())
	if err := os.MkdirAll(tmpDir, 0700); err != nil {
		return "", err
	}
	return tmpDir, nil
}
