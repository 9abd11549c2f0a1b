package release

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"

	"github.com/jakexks/go-maven-release/pkg/checksum"
	"github.com/jakexks/go-maven-release/pkg/dirutil"
	"github.com/jakexks/go-maven-release/pkg/license"
	"github.com/jakexks/go-maven-release/pkg/pom"
	"github.com/jakexks/go-maven-release/pkg/version"
)

var ErrNoOutput = errors.New("need to supply an output zip with --out")

// Version reads the version to release from the sources.
func (s *State) Version() (string, error) {
	return version.Determine(s.VersionFile, s.VersionMarker)
}

// Descriptor assembles the POM for version. Outside standalone mode the
// build tool is asked for the dependency report.
func (s *State) Descriptor(version string) (*pom.Descriptor, error) {
	in := pom.Input{
		Project:           s.Project,
		Version:           version,
		Standalone:        s.Standalone,
		DependencyOptions: s.Dependencies,
	}

	if s.Standalone {
		manifest, err := os.ReadFile(s.LicenseManifest)
		if err != nil {
			return nil, fmt.Errorf("reading the license manifest '%s': %w", s.LicenseManifest, err)
		}
		in.LicenseManifest = string(manifest)
	} else {
		s.Log.Info("Listing dependencies")
		report, err := s.runner.Run("dependencies")
		if err != nil {
			return nil, fmt.Errorf("listing dependencies: %w", err)
		}
		in.DependencyReport = report
	}

	d, err := pom.Assemble(in)
	if err != nil {
		return nil, err
	}
	s.Log.Debugf("dependencies: %# v", pretty.Formatter(d.Dependencies))
	s.Log.Debugf("licenses: %# v", pretty.Formatter(d.Licenses))

	if err := s.audit(d.Licenses); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *State) audit(licenses []pom.License) error {
	if !s.CheckLicenses {
		return nil
	}
	findings := license.Audit(licenses)
	for _, f := range findings {
		if f.Type == license.Unknown {
			s.Log.Warnf("license %s (%s): unknown license, check manually", f.License.Name, f.License.URL)
			continue
		}
		s.Log.Infof("license %s: %s (%s)", f.License.Name, f.SPDX, f.Type)
	}
	if err := license.CheckRestricted(findings); err != nil {
		if s.Force {
			s.Log.Infof("%s, continuing because of --force", err)
			return nil
		}
		return fmt.Errorf("%w. Run with --force to ignore.", err)
	}
	return nil
}

// Run builds the artifact and writes the release bundle to Out. It
// returns the path of the bundle.
func (s *State) Run() (string, error) {
	if s.Out == "" {
		return "", ErrNoOutput
	}
	if !strings.HasSuffix(s.Out, ".zip") {
		return "", fmt.Errorf("%w: '%s'", dirutil.ErrNotZip, s.Out)
	}

	artifact, buildArgs := s.Artifact, s.BuildArgs
	if s.Standalone {
		artifact, buildArgs = s.StandaloneArtifact, s.StandaloneBuildArgs
	}
	if s.SkipBuild {
		s.Log.Infof("Skipping build, using %s", artifact)
	} else {
		s.Log.Infof("Building %s", artifact)
		if _, err := s.runner.Build(buildArgs...); err != nil {
			return "", fmt.Errorf("building %s: %w", artifact, err)
		}
	}

	v, err := s.Version()
	if err != nil {
		return "", err
	}
	s.Log.Infof("Releasing %s:%s:%s", s.Project.GroupID, s.Project.ArtifactID, v)

	// The descriptor is assembled before anything is written so that a
	// bad dependency report leaves no partial bundle behind.
	d, err := s.Descriptor(v)
	if err != nil {
		return "", err
	}

	versionDir := filepath.Join(s.tmpDir, filepath.FromSlash(s.Project.MavenPath(v)))
	if err := os.MkdirAll(versionDir, 0755); err != nil {
		return "", fmt.Errorf("mkdir -p %s: %w", versionDir, err)
	}

	pomFile := filepath.Join(versionDir, s.Project.FileName(v, "pom"))
	if err := os.WriteFile(pomFile, []byte(d.Content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", pomFile, err)
	}

	targetJar := filepath.Join(versionDir, s.Project.FileName(v, "jar"))
	if err := dirutil.Copy(artifact, targetJar); err != nil {
		return "", fmt.Errorf("copying %s: %w", artifact, err)
	}

	for _, file := range []string{targetJar, pomFile} {
		if err := checksum.WriteMD5(file); err != nil {
			return "", err
		}
		if err := checksum.WriteSHA1(file); err != nil {
			return "", err
		}
	}

	if err := dirutil.CreateIfNotExists(filepath.Dir(s.Out), 0755); err != nil {
		return "", err
	}
	if err := dirutil.Zip(s.tmpDir, s.Out); err != nil {
		return "", err
	}
	s.Log.Infof("Wrote %s", s.Out)

	if s.InstallDir != "" {
		if err := dirutil.CreateIfNotExists(s.InstallDir, 0755); err != nil {
			return "", err
		}
		if err := dirutil.CopyDirectory(s.tmpDir, s.InstallDir); err != nil {
			return "", fmt.Errorf("installing into '%s': %w", s.InstallDir, err)
		}
		s.Log.Infof("Installed %s into %s", v, s.InstallDir)
	}
	return s.Out, nil
}
