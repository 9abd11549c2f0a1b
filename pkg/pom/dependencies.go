package pom

import (
	"bufio"
	"strings"
)

const repeatMarker = "(*)"

// Dependency is a single group:artifact:version coordinate.
type Dependency struct {
	Group    string `json:"group" yaml:"group"`
	Artifact string `json:"artifact" yaml:"artifact"`
	Version  string `json:"version" yaml:"version"`
}

func (d Dependency) String() string {
	return d.Group + ":" + d.Artifact + ":" + d.Version
}

// DependencyOptions select the block of the dependency report to read.
type DependencyOptions struct {
	// Configuration is the classpath name in the block header, e.g.
	// runtimeClasspath.
	Configuration string `mapstructure:"configuration"`
	// SourceSet is the source set name, matched in single quotes.
	SourceSet string `mapstructure:"source-set"`
}

// DefaultDependencyOptions reads the runtime classpath of 'main'.
func DefaultDependencyOptions() DependencyOptions {
	return DependencyOptions{
		Configuration: "runtimeClasspath",
		SourceSet:     "main",
	}
}

// ParseDependencies extracts the dependencies listed in a
// "gradle dependencies" report. The report looks like:
//
//	runtimeClasspath - Runtime classpath of source set 'main'.
//	+--- com.google.guava:guava:23.0
//	+--- org.ow2.asm:asm-commons:6.0
//	|    \--- org.ow2.asm:asm-tree:6.0
//	|         \--- org.ow2.asm:asm:6.0
//	+--- org.ow2.asm:asm-tree:6.0 (*)
//	\--- org.ow2.asm:asm-util:6.0
//
// Lines marked with (*) were expanded earlier in the tree and are skipped.
// The result is in first-seen order without duplicates. A report without
// a matching block yields no dependencies.
func ParseDependencies(report string, opts DependencyOptions) ([]Dependency, error) {
	header := "'" + opts.SourceSet + "'"

	var tokens []string
	seen := make(map[string]struct{})
	collect := false

	scanner := bufio.NewScanner(strings.NewReader(report))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !collect {
			if strings.Contains(line, opts.Configuration) && strings.Contains(line, header) {
				collect = true
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		if strings.Contains(line, repeatMarker) {
			continue
		}
		token := stripTree(line)
		if _, found := seen[token]; found {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	deps := make([]Dependency, 0, len(tokens))
	for _, token := range tokens {
		parts := strings.Split(token, ":")
		if len(parts) != 3 {
			return nil, &FormatError{Token: token, Parts: len(parts)}
		}
		deps = append(deps, Dependency{Group: parts[0], Artifact: parts[1], Version: parts[2]})
	}
	return deps, nil
}

// stripTree removes the tree drawing in front of a coordinate one
// space-separated chunk at a time:
//
//	'  |    \--- org.ow2.asm:asm-tree:6.0  '
//	'\--- org.ow2.asm:asm-tree:6.0'
//	'org.ow2.asm:asm-tree:6.0'
func stripTree(line string) string {
	trimmed := strings.TrimSpace(line)
	for {
		i := strings.IndexByte(trimmed, ' ')
		if i == -1 {
			return trimmed
		}
		trimmed = strings.TrimSpace(trimmed[i+1:])
	}
}
