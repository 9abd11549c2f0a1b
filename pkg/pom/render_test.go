package pom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const emptyPom = `<project
    xmlns="http://maven.apache.org/POM/4.0.0"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
  <modelVersion>4.0.0</modelVersion>
  <groupId>com.android.tools</groupId>
  <artifactId>r8</artifactId>
  <version>1.5.0-dev</version>
  <name>D8 dexer and R8 shrinker</name>
  <description>
  D8 dexer and R8 shrinker.
  </description>
  <url>http://r8.googlesource.com/r8</url>
  <inceptionYear>2016</inceptionYear>
  <licenses>
    <license>
      <name>BSD-3-Clause</name>
      <url>https://opensource.org/licenses/BSD-3-Clause</url>
      <distribution>repo</distribution>
    </license>
  </licenses>
  <dependencies>
  </dependencies>
  <developers>
    <developer>
      <name>The Android Open Source Project</name>
    </developer>
  </developers>
  <scm>
    <connection>
      https://r8.googlesource.com/r8.git
    </connection>
    <url>
      https://r8.googlesource.com/r8
    </url>
  </scm>
</project>
`

func TestRenderEmpty(t *testing.T) {
	got, err := Render(DefaultProject(), "1.5.0-dev", nil, nil)
	require.NoError(t, err)
	require.Equal(t, emptyPom, got)
}

func TestRenderDependencies(t *testing.T) {
	got, err := Render(DefaultProject(), "1.5.0-dev", []Dependency{
		{"com.google.guava", "guava", "23.0"},
		{"org.ow2.asm", "asm", "6.0"},
	}, nil)
	require.NoError(t, err)

	want := strings.Replace(emptyPom, "  <dependencies>\n", `  <dependencies>
    <dependency>
        <groupId>com.google.guava</groupId>
        <artifactId>guava</artifactId>
        <version>23.0</version>
    </dependency>
    <dependency>
        <groupId>org.ow2.asm</groupId>
        <artifactId>asm</artifactId>
        <version>6.0</version>
    </dependency>
`, 1)
	require.Equal(t, want, got)
}

func TestRenderLicenses(t *testing.T) {
	got, err := Render(DefaultProject(), "1.5.0-dev", nil, []License{
		{"The Apache Software License, Version 2.0", "http://www.apache.org/licenses/LICENSE-2.0.txt"},
	})
	require.NoError(t, err)

	want := strings.Replace(emptyPom, "    </license>\n", `    </license>
    <license>
      <name>The Apache Software License, Version 2.0</name>
      <url>http://www.apache.org/licenses/LICENSE-2.0.txt</url>
      <distribution>repo</distribution>
    </license>
`, 1)
	require.Equal(t, want, got)
}

func TestRenderDoesNotEscape(t *testing.T) {
	got, err := Render(DefaultProject(), "1.0", nil, []License{{"A & B", "http://x?a=1&b=2"}})
	require.NoError(t, err)
	require.Contains(t, got, "<name>A & B</name>")
	require.Contains(t, got, "<url>http://x?a=1&b=2</url>")
}

func TestProjectPaths(t *testing.T) {
	p := DefaultProject()
	require.Equal(t, "com/android/tools/r8/1.5.0", p.MavenPath("1.5.0"))
	require.Equal(t, "r8-1.5.0.pom", p.FileName("1.5.0", "pom"))
}
