package license

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-enry/go-license-detector/v4/licensedb"
	classifier "github.com/google/licenseclassifier/v2"
)

var (
	licenseFileRegex      = regexp.MustCompile(`^(?i)(LICEN(S|C)E|COPYING|README|NOTICE)(\..+)?$`)
	ErrNoLicenseFileFound = errors.New("not able to find a license file in this directory")
)

// NewClassifier loads the license database used by the deep scan, e.g.
// the licenses folder of github.com/google/licenseclassifier. An empty
// dir disables the deep scan.
func NewClassifier(dir string) (*classifier.Classifier, error) {
	if dir == "" {
		return nil, nil
	}
	c := classifier.NewClassifier(0.2)
	err := c.LoadLicenses(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("the license database '%s' is missing, download it with:\n  curl -L https://github.com/google/licenseclassifier/archive/refs/tags/v2.0.0-alpha.1.tar.gz | tar xz && mv licenseclassifier-*/licenses .", dir)
	case err != nil:
		return nil, fmt.Errorf("loading licenses from '%s': %w", dir, err)
	}
	return c, nil
}

// Classify finds the license of dir with go-license-detector, falling back
// to a deep scan with c when the detector finds nothing. c may be nil.
func Classify(dir string, c *classifier.Classifier) (Info, error) {
	info, err := fastClassify(dir)
	if err == nil {
		return info, nil
	}
	if !errors.Is(err, ErrNoLicenseFileFound) || c == nil {
		return Info{}, err
	}
	return deepClassify(c, dir)
}

// Returns ErrNoLicenseFileFound when no license can be found in dir.
func fastClassify(dir string) (Info, error) {
	// A single result is returned since we give a single directory.
	results := licensedb.Analyse(dir)
	if len(results) == 0 {
		return Info{}, errors.New("developer mistake since one result = one dir")
	}
	result := results[0]

	switch result.ErrStr {
	case "no license file was found":
		return Info{}, ErrNoLicenseFileFound
	case "":
		// No error, let's continue.
	default:
		return Info{}, fmt.Errorf("using go-license-detector: %s", result.ErrStr)
	}

	if len(result.Matches) == 0 {
		return Info{}, ErrNoLicenseFileFound
	}

	var candidates []candidate
	for _, match := range result.Matches {
		candidates = append(candidates, candidate{
			license:    match.License,
			confidence: float64(match.Confidence),
			path:       filepath.Join(result.Arg, match.File),
		})
	}
	return highestConfidence(candidates).info(dir), nil
}

type candidate struct {
	path       string  // Absolute path to the license file.
	license    string  // Of the form "BSD-3-Clause".
	confidence float64 // Some relative number, the higher the more confident.
}

func (c candidate) info(dir string) Info {
	return Info{
		LicenseFile: c.path,
		SourceDir:   dir,
		LicenseName: Name(c.license),
		LicenseType: Type(c.license),
		Confidence:  c.confidence,
	}
}

func highestConfidence(c []candidate) candidate {
	highest := candidate{confidence: -math.MaxInt64}
	for _, current := range c {
		if current.confidence < highest.confidence {
			continue
		}

		// Documentation licenses such as LICENSE.docs do not cover the
		// released code.
		if strings.HasSuffix(current.path, "LICENSE.docs") {
			continue
		}

		highest = current
	}

	return highest
}

// Use Google's slow licenseclassifier to find the possible licenses in the
// whole directory tree.
func deepClassify(c *classifier.Classifier, dir string) (Info, error) {
	var licenseFiles []string
	err := filepath.Walk(dir, func(path string, fileInfo os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fileInfo.IsDir() {
			return nil
		}
		if !licenseFileRegex.MatchString(fileInfo.Name()) {
			return nil
		}

		licenseFiles = append(licenseFiles, path)
		return nil
	})
	if err != nil {
		return Info{}, fmt.Errorf("walking the tree starting at '%s': %w", dir, err)
	}

	var candidates []candidate
	for _, licenseFile := range licenseFiles {
		content, err := os.ReadFile(licenseFile)
		if err != nil {
			return Info{}, fmt.Errorf("reading license file '%s': %w", licenseFile, err)
		}
		for _, m := range c.Match(content).Matches {
			candidates = append(candidates, candidate{
				license:    m.Name,
				confidence: m.Confidence,
				path:       licenseFile,
			})
		}
	}

	if len(candidates) == 0 {
		return Info{}, ErrNoLicenseFileFound
	}

	return highestConfidence(candidates).info(dir), nil
}
