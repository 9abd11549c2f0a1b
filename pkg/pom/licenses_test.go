package pom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const libraryLicense = `- artifact: com.google.guava:guava:+
  name: Guava Google Core Libraries for Java
  copyrightHolder: The Guava Authors
  license: The Apache Software License, Version 2.0
  licenseUrl: http://www.apache.org/licenses/LICENSE-2.0.txt
  url: https://github.com/google/guava
- artifact: it.unimi.dsi:fastutil:+
  name: fastutil
  license: Apache License Version 2.0
  licenseUrl: http://www.apache.org/licenses/LICENSE-2.0.txt
- artifact: org.ow2.asm:asm:+
  name: ASM Core
  licenseUrl: http://asm.ow2.org/license.html
  license: BSD
- artifact: org.ow2.asm:asm-commons:+
  name: ASM Commons
  license: BSD
  licenseUrl: http://asm.ow2.org/license.html
`

func TestParseLicenses(t *testing.T) {
	licenses, err := ParseLicenses(libraryLicense)
	require.NoError(t, err)
	require.Equal(t, []License{
		{"The Apache Software License, Version 2.0", "http://www.apache.org/licenses/LICENSE-2.0.txt"},
		{"Apache License Version 2.0", "http://www.apache.org/licenses/LICENSE-2.0.txt"},
		{"BSD", "http://asm.ow2.org/license.html"},
	}, licenses)
}

func TestParseLicensesSameNameDifferentURL(t *testing.T) {
	manifest := "- artifact: a:b:+\n" +
		"  license: Apache-2.0\n" +
		"  licenseUrl: u1\n" +
		"- artifact: c:d:+\n" +
		"  license: Apache-2.0\n" +
		"  licenseUrl: u2\n"
	licenses, err := ParseLicenses(manifest)
	require.NoError(t, err)
	require.Len(t, licenses, 2)
}

func TestParseLicensesIdenticalPair(t *testing.T) {
	manifest := "- artifact: a:b:+\n" +
		"  license: Apache-2.0\n" +
		"  licenseUrl: u1\n" +
		"- artifact: c:d:+\n" +
		"  licenseUrl: u1\n" +
		"  license: Apache-2.0\n"
	licenses, err := ParseLicenses(manifest)
	require.NoError(t, err)
	require.Equal(t, []License{{"Apache-2.0", "u1"}}, licenses)
}

func TestParseLicensesPendingPairAtArtifact(t *testing.T) {
	manifest := "- artifact: a:b:+\n" +
		"  license: Apache-2.0\n" +
		"- artifact: c:d:+\n"
	licenses, err := ParseLicenses(manifest)
	require.Nil(t, licenses)

	var consistencyErr *ConsistencyError
	require.ErrorAs(t, err, &consistencyErr)
	require.Equal(t, 3, consistencyErr.Line)
}

func TestParseLicensesDropsTrailingIncompleteRecord(t *testing.T) {
	manifest := "- artifact: a:b:+\n" +
		"  license: MIT\n" +
		"  licenseUrl: https://opensource.org/licenses/MIT\n" +
		"- artifact: c:d:+\n" +
		"  licenseUrl: https://example.com/LICENSE\n"
	licenses, err := ParseLicenses(manifest)
	require.NoError(t, err)
	require.Equal(t, []License{{"MIT", "https://opensource.org/licenses/MIT"}}, licenses)
}

func TestParseLicensesEmpty(t *testing.T) {
	licenses, err := ParseLicenses("")
	require.NoError(t, err)
	require.Empty(t, licenses)
}

func TestLicenseTransitions(t *testing.T) {
	var p licenseParser
	require.NoError(t, p.step(1, nameLine, "MIT"))
	require.Equal(t, nameSet, p.state)
	require.NoError(t, p.step(2, nameLine, "BSD"))
	require.Equal(t, nameSet, p.state)
	require.NoError(t, p.step(3, otherLine, ""))
	require.Equal(t, nameSet, p.state)
	require.NoError(t, p.step(4, urlLine, "u"))
	require.Equal(t, awaitingArtifact, p.state)
	require.Equal(t, []string{"BSD"}, p.names)
	require.Equal(t, []string{"u"}, p.urls)
	require.NoError(t, p.step(5, artifactLine, "a:b:+"))
	require.NoError(t, p.step(6, urlLine, "v"))
	require.Equal(t, urlSet, p.state)
	require.Error(t, p.step(7, artifactLine, "c:d:+"))
}
