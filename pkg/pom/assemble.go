package pom

import "fmt"

// Input is everything Assemble needs for one descriptor.
type Input struct {
	Project Project
	Version string
	// Standalone selects the shrunk release: dependencies are merged into
	// the artifact, so their licenses are listed instead of the
	// dependencies themselves.
	Standalone bool
	// DependencyReport is the build tool's dependency listing. Ignored
	// when Standalone is set.
	DependencyReport  string
	DependencyOptions DependencyOptions
	// LicenseManifest is only read when Standalone is set.
	LicenseManifest string
}

// Descriptor is a rendered POM together with the entries it lists.
type Descriptor struct {
	Version      string
	Dependencies []Dependency
	Licenses     []License
	Content      string
}

// Assemble extracts the entries for the selected mode and renders them.
// Nothing is rendered when extraction fails.
func Assemble(in Input) (*Descriptor, error) {
	d := &Descriptor{Version: in.Version}

	var err error
	if in.Standalone {
		d.Licenses, err = ParseLicenses(in.LicenseManifest)
		if err != nil {
			return nil, fmt.Errorf("parsing license manifest: %w", err)
		}
	} else {
		d.Dependencies, err = ParseDependencies(in.DependencyReport, in.DependencyOptions)
		if err != nil {
			return nil, fmt.Errorf("parsing dependency report: %w", err)
		}
	}

	d.Content, err = Render(in.Project, in.Version, d.Dependencies, d.Licenses)
	if err != nil {
		return nil, fmt.Errorf("rendering pom: %w", err)
	}
	return d, nil
}
