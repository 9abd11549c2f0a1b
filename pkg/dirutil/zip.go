package dirutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

var ErrNotZip = errors.New("archive name must end with .zip")

// Zip archives everything below srcDir into out. Entry names are relative
// to srcDir and use forward slashes; directories get their own entries.
func Zip(srcDir, out string) (err error) {
	if !strings.HasSuffix(out, ".zip") {
		return fmt.Errorf("%w: '%s'", ErrNotZip, out)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating archive '%s': %w", out, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	zw := zip.NewWriter(f)
	defer func() {
		if closeErr := zw.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("finishing archive '%s': %w", out, closeErr)
		}
	}()

	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("walking the tree starting at '%s': %w", srcDir, walkErr)
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		name := filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat '%s': %w", path, err)
		}
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("zip header for '%s': %w", path, err)
		}

		if d.IsDir() {
			header.Name = name + "/"
			_, err := zw.CreateHeader(header)
			return err
		}

		header.Name = name
		header.Method = zip.Deflate
		w, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("adding '%s' to the archive: %w", name, err)
		}
		src, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening '%s': %w", path, err)
		}
		defer src.Close()
		if _, err := io.Copy(w, src); err != nil {
			return fmt.Errorf("writing '%s' to the archive: %w", name, err)
		}
		return nil
	})
}
