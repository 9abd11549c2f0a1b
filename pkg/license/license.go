// package license classifies licenses, both from license files on disk and
// from the license names declared in a library license manifest
package license

type Info struct {
	// LicenseFile is the path to the LICENSE file on disk, e.g. /src/r8/LICENSE
	LicenseFile string
	// SourceDir is the directory that was searched for a license
	SourceDir string
	// LicenseName is the SPDX license name
	LicenseName string
	// LicenseType is the license category as defined by https://pkg.go.dev/github.com/google/licenseclassifier#LicenseType
	LicenseType string
	// Confidence is the detector's confidence in LicenseName, between 0 and 1
	Confidence float64
}
