package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jakexks/go-maven-release/pkg/license"
	"github.com/jakexks/go-maven-release/pkg/release"
)

var exit = os.Exit

var (
	root = &cobra.Command{
		Use:   "go-maven-release",
		Short: "package a build artifact as a Maven release",
		Long: `Build the artifact, determine its version, write its POM with either its
dependencies or the licenses of the libraries shrunk into it, and zip the
result in the Maven repository layout.`,
	}
	releaseCmd = &cobra.Command{
		Use:   "release",
		Short: "build the artifact and write the release zip",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Cobra-specificity: runE should only return an error if this error
			// is related to the usage of the CLI. Otherwise, the error must be
			// handled and nil must be returned.
			if err := runRelease(); err != nil {
				fmt.Printf("Error: %v\n", err)
				exit(1)
			}
			return nil
		},
	}
	pomCmd = &cobra.Command{
		Use:   "pom",
		Short: "write the POM for the current version",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := runPom(c.OutOrStdout()); err != nil {
				fmt.Printf("Error: %v\n", err)
				exit(1)
			}
			return nil
		},
	}
	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "print the dependencies, or the licenses with --standalone, that go into the POM",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := runInspect(c.OutOrStdout()); err != nil {
				fmt.Printf("Error: %v\n", err)
				exit(1)
			}
			return nil
		},
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "print the version that would be released",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			opts, err := releaseOptions()
			if err != nil {
				return err
			}
			s := release.State{Options: opts}
			v, err := s.Version()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), v)
			return nil
		},
	}
	checkLicenseCmd = &cobra.Command{
		Use:   "check-license <dir>",
		Short: "check that the license found in a directory is the project license",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := runCheckLicense(c.OutOrStdout(), args[0]); err != nil {
				fmt.Printf("Error: %v\n", err)
				exit(1)
			}
			return nil
		},
	}
)

func init() {
	cobra.OnInitialize(flagsFromEnv, readConfig)
	root.PersistentFlags().StringP("config", "c", "", "Config file (YAML or TOML) with the project, paths and build settings")
	root.PersistentFlags().BoolP("force", "f", false, "Ignore license check failures")
	root.PersistentFlags().BoolP("debug", "d", false, "Print the build commands and parsed entries")
	root.PersistentFlags().Bool("standalone", false, "Release the artifact with its dependencies shrunk into it, listing their licenses instead of the dependencies")

	releaseCmd.Flags().StringP("out", "o", "", "The zip file to output")
	releaseCmd.Flags().Bool("skip-build", false, "Use the artifact already built instead of running the build")
	releaseCmd.Flags().Bool("keep-temp", false, "Keep the staging directory")
	releaseCmd.Flags().String("install-dir", "", "Also copy the release into this local Maven repository")
	releaseCmd.Flags().Bool("check-licenses", false, "Fail on restricted licenses in the license manifest")
	pomCmd.Flags().String("output", "", "Write the POM to this file instead of stdout")
	inspectCmd.Flags().String("format", "yaml", "Output format, yaml or json")
	inspectCmd.Flags().String("input", "", "Read the dependency report or license manifest from this file")
	checkLicenseCmd.Flags().String("license-db", "", "Directory of license texts for the deep scan, e.g. the licenses folder of google/licenseclassifier")

	root.AddCommand(releaseCmd, pomCmd, inspectCmd, versionCmd, checkLicenseCmd)
	bindFlags()
}

func bindFlags() {
	viper.BindPFlags(root.PersistentFlags())
	for _, c := range []*cobra.Command{releaseCmd, pomCmd, inspectCmd, checkLicenseCmd} {
		viper.BindPFlags(c.Flags())
	}
}

func Execute() {
	if err := root.Execute(); err != nil {
		exit(1)
	}
}

func runRelease() error {
	s, err := newState()
	if err != nil {
		return err
	}
	defer s.Cleanup()

	if _, err := s.Run(); err != nil {
		return err
	}
	return nil
}

func runPom(stdout io.Writer) error {
	s, err := newState()
	if err != nil {
		return err
	}
	defer s.Cleanup()

	v, err := s.Version()
	if err != nil {
		return err
	}
	d, err := s.Descriptor(v)
	if err != nil {
		return err
	}

	output := viper.GetString("output")
	if output == "" {
		_, err := io.WriteString(stdout, d.Content)
		return err
	}
	if err := os.WriteFile(output, []byte(d.Content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	s.Log.Infof("Wrote %s", output)
	return nil
}

func runCheckLicense(stdout io.Writer, dir string) error {
	opts, err := releaseOptions()
	if err != nil {
		return err
	}
	c, err := license.NewClassifier(viper.GetString("license-db"))
	if err != nil {
		return err
	}

	info, err := license.Classify(dir, c)
	if err != nil {
		return fmt.Errorf("directory '%s': %w", dir, err)
	}
	fmt.Fprintf(stdout, "%s: %s (%s)\n", info.LicenseFile, info.LicenseName, info.LicenseType)

	if want := license.Name(opts.Project.LicenseName); info.LicenseName != want {
		err := fmt.Errorf("directory '%s' is licensed under %s but the POM declares %s", dir, info.LicenseName, want)
		if !opts.Force {
			return fmt.Errorf("%w. Run with --force to ignore.", err)
		}
		fmt.Fprintf(stdout, "%v\n", err)
	}
	return nil
}
