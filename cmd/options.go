package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jakexks/go-maven-release/pkg/gradle"
	"github.com/jakexks/go-maven-release/pkg/release"
)

// flagsFromEnv allows flags to be set from environment variables, e.g.
// GO_MAVEN_RELEASE_SKIP_BUILD=true.
func flagsFromEnv() {
	viper.SetEnvPrefix("go_maven_release")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// readConfig loads the file given with --config. Project identity, paths
// and the build command are only configurable there.
func readConfig() {
	file := viper.GetString("config")
	if file == "" {
		return
	}
	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Printf("Error: reading config file '%s': %v\n", file, err)
		exit(1)
	}
}

func setString(dst *string, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetString(key)
	}
}

func setStrings(dst *[]string, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetStringSlice(key)
	}
}

func releaseOptions() (release.Options, error) {
	opts := release.DefaultOptions()
	if err := viper.UnmarshalKey("project", &opts.Project); err != nil {
		return opts, fmt.Errorf("reading 'project' from the configuration: %w", err)
	}
	if err := viper.UnmarshalKey("dependencies", &opts.Dependencies); err != nil {
		return opts, fmt.Errorf("reading 'dependencies' from the configuration: %w", err)
	}
	setString(&opts.VersionFile, "version-file")
	setString(&opts.VersionMarker, "version-marker")
	setString(&opts.LicenseManifest, "license-manifest")
	setString(&opts.Artifact, "artifact")
	setString(&opts.StandaloneArtifact, "standalone-artifact")
	setStrings(&opts.BuildArgs, "build-args")
	setStrings(&opts.StandaloneBuildArgs, "standalone-build-args")

	opts.Out = viper.GetString("out")
	opts.Standalone = viper.GetBool("standalone")
	opts.SkipBuild = viper.GetBool("skip-build")
	opts.KeepTemp = viper.GetBool("keep-temp")
	opts.InstallDir = viper.GetString("install-dir")
	opts.CheckLicenses = viper.GetBool("check-licenses")
	opts.Force = viper.GetBool("force")
	return opts, nil
}

func newRunner(log *zap.SugaredLogger) (*gradle.Runner, error) {
	cfg := gradle.DefaultConfig()
	if err := viper.UnmarshalKey("gradle", &cfg); err != nil {
		return nil, fmt.Errorf("reading 'gradle' from the configuration: %w", err)
	}
	return gradle.NewRunner(cfg, log), nil
}

// newState wires the logger, the options and the build tool runner.
// Cleanup must be called on the returned state.
func newState() (*release.State, error) {
	log, err := release.NewLogger(viper.GetBool("debug"))
	if err != nil {
		return nil, err
	}
	opts, err := releaseOptions()
	if err != nil {
		return nil, err
	}
	runner, err := newRunner(log)
	if err != nil {
		return nil, err
	}
	s := new(release.State)
	if err := s.Init(log, opts, runner); err != nil {
		return nil, fmt.Errorf("initializing go-maven-release state: %w", err)
	}
	return s, nil
}
