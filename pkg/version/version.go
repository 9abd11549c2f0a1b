// package version finds the release version in the project sources
package version

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	DefaultFile   = "src/main/java/com/android/tools/r8/Version.java"
	DefaultMarker = "final String LABEL "
)

var ErrNotFound = errors.New("unable to determine version")

// Determine returns the quoted string on the first line of file that
// contains marker, e.g. `public static final String LABEL = "1.5.0-dev";`
// gives 1.5.0-dev.
func Determine(file, marker string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("opening version file '%s': %w", file, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, marker) {
			continue
		}
		return quoted(line), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading version file '%s': %w", file, err)
	}
	return "", fmt.Errorf("%w: no line containing '%s' in '%s'", ErrNotFound, marker, file)
}

// quoted returns the text between the first two double quotes. A line
// with a single quote yields everything after it.
func quoted(line string) string {
	result := line[strings.IndexByte(line, '"')+1:]
	if end := strings.IndexByte(result, '"'); end != -1 {
		return result[:end]
	}
	return result
}
