package pom

import (
	"strings"
	"text/template"
)

// Project holds the fixed fields of the descriptor.
type Project struct {
	GroupID       string `mapstructure:"group-id"`
	ArtifactID    string `mapstructure:"artifact-id"`
	Name          string `mapstructure:"name"`
	Description   string `mapstructure:"description"`
	URL           string `mapstructure:"url"`
	InceptionYear string `mapstructure:"inception-year"`
	LicenseName   string `mapstructure:"license-name"`
	LicenseURL    string `mapstructure:"license-url"`
	Developer     string `mapstructure:"developer"`
	SCMConnection string `mapstructure:"scm-connection"`
	SCMURL        string `mapstructure:"scm-url"`
}

// DefaultProject describes the D8/R8 release.
func DefaultProject() Project {
	return Project{
		GroupID:       "com.android.tools",
		ArtifactID:    "r8",
		Name:          "D8 dexer and R8 shrinker",
		Description:   "D8 dexer and R8 shrinker.",
		URL:           "http://r8.googlesource.com/r8",
		InceptionYear: "2016",
		LicenseName:   "BSD-3-Clause",
		LicenseURL:    "https://opensource.org/licenses/BSD-3-Clause",
		Developer:     "The Android Open Source Project",
		SCMConnection: "https://r8.googlesource.com/r8.git",
		SCMURL:        "https://r8.googlesource.com/r8",
	}
}

// MavenPath is the repository directory of a version, e.g.
// com/android/tools/r8/1.5.0. Elements are separated by '/'.
func (p Project) MavenPath(version string) string {
	return strings.ReplaceAll(p.GroupID, ".", "/") + "/" + p.ArtifactID + "/" + version
}

// FileName is the bundle file name for the given extension, e.g.
// r8-1.5.0.pom.
func (p Project) FileName(version, ext string) string {
	return p.ArtifactID + "-" + version + "." + ext
}

// Values are substituted as-is: names, urls and versions must not contain
// XML markup.
var pomTemplate = template.Must(template.New("pom").Parse(`<project
    xmlns="http://maven.apache.org/POM/4.0.0"
    xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
    xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd">
  <modelVersion>4.0.0</modelVersion>
  <groupId>{{.Project.GroupID}}</groupId>
  <artifactId>{{.Project.ArtifactID}}</artifactId>
  <version>{{.Version}}</version>
  <name>{{.Project.Name}}</name>
  <description>
  {{.Project.Description}}
  </description>
  <url>{{.Project.URL}}</url>
  <inceptionYear>{{.Project.InceptionYear}}</inceptionYear>
  <licenses>
    <license>
      <name>{{.Project.LicenseName}}</name>
      <url>{{.Project.LicenseURL}}</url>
      <distribution>repo</distribution>
    </license>{{range .Licenses}}
    <license>
      <name>{{.Name}}</name>
      <url>{{.URL}}</url>
      <distribution>repo</distribution>
    </license>{{end}}
  </licenses>
  <dependencies>{{range .Dependencies}}
    <dependency>
        <groupId>{{.Group}}</groupId>
        <artifactId>{{.Artifact}}</artifactId>
        <version>{{.Version}}</version>
    </dependency>{{end}}
  </dependencies>
  <developers>
    <developer>
      <name>{{.Project.Developer}}</name>
    </developer>
  </developers>
  <scm>
    <connection>
      {{.Project.SCMConnection}}
    </connection>
    <url>
      {{.Project.SCMURL}}
    </url>
  </scm>
</project>
`))

// Render produces the descriptor document.
func Render(project Project, version string, deps []Dependency, licenses []License) (string, error) {
	var b strings.Builder
	err := pomTemplate.Execute(&b, struct {
		Project      Project
		Version      string
		Dependencies []Dependency
		Licenses     []License
	}{project, version, deps, licenses})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
