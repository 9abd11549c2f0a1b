package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jakexks/go-maven-release/pkg/license"
	"github.com/jakexks/go-maven-release/pkg/pom"
	"github.com/jakexks/go-maven-release/pkg/release"
)

type licenseReport struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
	SPDX string `json:"spdx" yaml:"spdx"`
	Type string `json:"type" yaml:"type"`
}

type inspection struct {
	Dependencies []pom.Dependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Licenses     []licenseReport  `json:"licenses,omitempty" yaml:"licenses,omitempty"`
}

func runInspect(stdout io.Writer) error {
	format := viper.GetString("format")
	if format != "yaml" && format != "json" {
		return fmt.Errorf("unknown format '%s', use yaml or json", format)
	}
	opts, err := releaseOptions()
	if err != nil {
		return err
	}

	input := viper.GetString("input")
	var result inspection
	if opts.Standalone {
		if input == "" {
			input = opts.LicenseManifest
		}
		manifest, err := os.ReadFile(input)
		if err != nil {
			return fmt.Errorf("reading the license manifest '%s': %w", input, err)
		}
		licenses, err := pom.ParseLicenses(string(manifest))
		if err != nil {
			return err
		}
		for _, f := range license.Audit(licenses) {
			result.Licenses = append(result.Licenses, licenseReport{
				Name: f.License.Name,
				URL:  f.License.URL,
				SPDX: f.SPDX,
				Type: f.Type,
			})
		}
	} else {
		report, err := dependencyReport(input)
		if err != nil {
			return err
		}
		result.Dependencies, err = pom.ParseDependencies(report, opts.Dependencies)
		if err != nil {
			return err
		}
	}

	if format == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}

// dependencyReport reads the report from file, or asks the build tool for
// it when file is empty.
func dependencyReport(file string) (string, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading the dependency report '%s': %w", file, err)
		}
		return string(b), nil
	}

	log, err := release.NewLogger(viper.GetBool("debug"))
	if err != nil {
		return "", err
	}
	runner, err := newRunner(log)
	if err != nil {
		return "", err
	}
	return runner.Run("dependencies")
}
