package license

import (
	"fmt"
	"strings"

	"github.com/google/licenseclassifier"

	"github.com/jakexks/go-maven-release/pkg/pom"
)

const (
	Restricted = "restricted"
	Unknown    = "unknown"
)

// aliases maps license names commonly found in Maven metadata to their
// SPDX identifier.
var aliases = map[string]string{
	"the apache software license, version 2.0": "Apache-2.0",
	"apache license, version 2.0":              "Apache-2.0",
	"apache license version 2.0":               "Apache-2.0",
	"apache 2.0":                               "Apache-2.0",
	"the mit license":                          "MIT",
	"mit license":                              "MIT",
	"new bsd license":                          "BSD-3-Clause",
	"the bsd license":                          "BSD-2-Clause",
	"eclipse public license 1.0":               "EPL-1.0",
	"eclipse public license - v 1.0":           "EPL-1.0",
}

// Name returns the SPDX identifier for a license name.
func Name(l string) string {
	if spdx, ok := aliases[strings.ToLower(strings.TrimSpace(l))]; ok {
		return spdx
	}
	if strings.HasPrefix(l, "MPL-2.0") {
		return "MPL-2.0"
	}
	if strings.HasPrefix(l, "LGPL-3.0") {
		return "LGPL-3.0"
	}
	if strings.HasPrefix(l, "deprecated_LGPL-3.0") {
		return "LGPL-3.0"
	}

	return l
}

// Type returns the category of a license, e.g. notice or reciprocal, or
// Unknown when the name is not recognised.
func Type(license string) string {
	license = Name(license)
	if strings.HasPrefix(license, "0BSD") {
		return "notice"
	}
	l := licenseclassifier.LicenseType(license)
	if len(l) == 0 {
		return Unknown
	}
	return l
}

// Finding is the category of a license listed in the descriptor.
type Finding struct {
	License pom.License
	SPDX    string
	Type    string
}

// Audit categorizes each license.
func Audit(licenses []pom.License) []Finding {
	findings := make([]Finding, 0, len(licenses))
	for _, l := range licenses {
		findings = append(findings, Finding{License: l, SPDX: Name(l.Name), Type: Type(l.Name)})
	}
	return findings
}

// CheckRestricted fails on the first restricted license that is not LGPL.
// LGPL libraries can be shipped together with their source.
func CheckRestricted(findings []Finding) error {
	for _, f := range findings {
		if f.Type != Restricted || strings.HasPrefix(f.SPDX, "LGPL") {
			continue
		}
		return fmt.Errorf("the license %s (%s) is restricted but is not LGPL", f.License.Name, f.License.URL)
	}
	return nil
}
