package license

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jakexks/go-maven-release/pkg/pom"
)

const mitLicense = `MIT License

Copyright (c) 2020 The Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`

func TestClassify(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "LICENSE"), []byte(mitLicense), 0644))

	info, err := Classify(dir, nil)
	require.NoError(t, err)
	require.Equal(t, "MIT", info.LicenseName)
	require.Equal(t, "notice", info.LicenseType)
	require.Equal(t, filepath.Join(dir, "LICENSE"), info.LicenseFile)
}

func TestClassifyNoLicense(t *testing.T) {
	_, err := Classify(t.TempDir(), nil)
	require.ErrorIs(t, err, ErrNoLicenseFileFound)
}

func TestNewClassifierDisabled(t *testing.T) {
	c, err := NewClassifier("")
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestType(t *testing.T) {
	for name, want := range map[string]string{
		"Apache-2.0":             "notice",
		"MIT":                    "notice",
		"0BSD":                   "notice",
		"EPL-1.0":                "reciprocal",
		"GPL-2.0":                Restricted,
		"Some homegrown license": Unknown,
	} {
		require.Equal(t, want, Type(name), "license %q", name)
	}
	require.Equal(t, "notice", Type("The Apache Software License, Version 2.0"))
}

func TestHighestConfidenceSkipsDocs(t *testing.T) {
	got := highestConfidence([]candidate{
		{path: "/src/LICENSE", license: "MIT", confidence: 0.9},
		{path: "/src/LICENSE.docs", license: "CC-BY-4.0", confidence: 1},
	})
	require.Equal(t, "MIT", got.license)
}

func TestCheckRestricted(t *testing.T) {
	findings := Audit([]pom.License{
		{Name: "Apache License Version 2.0", URL: "http://www.apache.org/licenses/LICENSE-2.0.txt"},
		{Name: "LGPL-2.1", URL: "https://www.gnu.org/licenses/old-licenses/lgpl-2.1.html"},
	})
	require.Equal(t, "Apache-2.0", findings[0].SPDX)
	require.NoError(t, CheckRestricted(findings))

	findings = Audit([]pom.License{{Name: "GPL-2.0", URL: "https://www.gnu.org/licenses/old-licenses/gpl-2.0.html"}})
	require.Error(t, CheckRestricted(findings))
}
