package pom

import (
	"bufio"
	"slices"
	"strings"
)

const (
	artifactPrefix    = "- artifact: "
	licenseNamePrefix = "license: "
	licenseURLPrefix  = "licenseUrl: "
)

// License is a name/url pair rendered into the <licenses> block.
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type licenseState int

const (
	awaitingArtifact licenseState = iota
	nameSet
	urlSet
	bothSet
)

func (s licenseState) String() string {
	switch s {
	case awaitingArtifact:
		return "awaiting artifact"
	case nameSet:
		return "license name pending"
	case urlSet:
		return "license url pending"
	case bothSet:
		return "license pair complete"
	}
	return "unknown"
}

type licenseEvent int

const (
	artifactLine licenseEvent = iota
	nameLine
	urlLine
	otherLine
)

// transition is one cell of the license parser table. A cell with fail
// set rejects the event.
type transition struct {
	next licenseState
	fail bool
}

// licenseTransitions is indexed by [state][event]. bothSet is never a
// resting state: the parser flushes the pair and goes back to
// awaitingArtifact.
var licenseTransitions = [...][4]transition{
	awaitingArtifact: {
		artifactLine: {next: awaitingArtifact},
		nameLine:     {next: nameSet},
		urlLine:      {next: urlSet},
		otherLine:    {next: awaitingArtifact},
	},
	nameSet: {
		artifactLine: {fail: true},
		nameLine:     {next: nameSet},
		urlLine:      {next: bothSet},
		otherLine:    {next: nameSet},
	},
	urlSet: {
		artifactLine: {fail: true},
		nameLine:     {next: bothSet},
		urlLine:      {next: urlSet},
		otherLine:    {next: urlSet},
	},
}

type licenseParser struct {
	state     licenseState
	name, url string
	names     []string
	urls      []string
}

func classifyLicenseLine(trimmed string) (licenseEvent, string) {
	switch {
	case strings.HasPrefix(trimmed, artifactPrefix):
		return artifactLine, strings.TrimPrefix(trimmed, artifactPrefix)
	case strings.HasPrefix(trimmed, licenseNamePrefix):
		return nameLine, strings.TrimPrefix(trimmed, licenseNamePrefix)
	case strings.HasPrefix(trimmed, licenseURLPrefix):
		return urlLine, strings.TrimPrefix(trimmed, licenseURLPrefix)
	}
	return otherLine, ""
}

func (p *licenseParser) step(lineNo int, event licenseEvent, payload string) error {
	// An empty payload leaves the slot unset.
	if (event == nameLine || event == urlLine) && payload == "" {
		event = otherLine
	}

	t := licenseTransitions[p.state][event]
	if t.fail {
		return &ConsistencyError{
			Line:   lineNo,
			Reason: "new artifact while the previous one has a " + p.state.String(),
		}
	}
	switch event {
	case nameLine:
		p.name = payload
	case urlLine:
		p.url = payload
	}
	p.state = t.next
	if p.state != bothSet {
		return nil
	}

	if !slices.Contains(p.names, p.name) || !slices.Contains(p.urls, p.url) {
		p.names = append(p.names, p.name)
		p.urls = append(p.urls, p.url)
	}
	p.name, p.url = "", ""
	p.state = awaitingArtifact

	if len(p.names) != len(p.urls) {
		return &ConsistencyError{Line: lineNo, Reason: "license names and urls are out of step"}
	}
	return nil
}

// ParseLicenses reads a library license manifest:
//
//	- artifact: com.google.guava:guava:+
//	  name: Guava Google Core Libraries for Java
//	  license: The Apache Software License, Version 2.0
//	  licenseUrl: http://www.apache.org/licenses/LICENSE-2.0.txt
//
// License names and urls come in pairs for each artifact, in either order.
// A pair is kept when its name or its url has not been seen yet, since
// licenses with slightly different names often point at the same url.
// A trailing artifact with only one of the two is dropped.
func ParseLicenses(manifest string) ([]License, error) {
	var p licenseParser

	scanner := bufio.NewScanner(strings.NewReader(manifest))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		event, payload := classifyLicenseLine(strings.TrimSpace(scanner.Text()))
		if err := p.step(lineNo, event, payload); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	licenses := make([]License, len(p.names))
	for i := range p.names {
		licenses[i] = License{Name: p.names[i], URL: p.urls[i]}
	}
	return licenses, nil
}
