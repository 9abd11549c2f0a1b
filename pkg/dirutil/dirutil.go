package dirutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyDirectory copies the content of srcDir into dest, merging with what
// dest already holds.
func CopyDirectory(srcDir, dest string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("list the content of the source directory '%s': %w", srcDir, err)
	}
	for _, entry := range entries {
		sourcePath := filepath.Join(srcDir, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		fileInfo, err := os.Lstat(sourcePath)
		if err != nil {
			return fmt.Errorf("running 'lstat' on '%s': %w", sourcePath, err)
		}

		switch fileInfo.Mode() & os.ModeType {
		case os.ModeDir:
			if err := CreateIfNotExists(destPath, 0755); err != nil {
				return fmt.Errorf("creating directory: %w", err)
			}
			if err := CopyDirectory(sourcePath, destPath); err != nil {
				return fmt.Errorf("copying directory: %w", err)
			}
		case os.ModeSymlink:
			if err := CopySymLink(sourcePath, destPath); err != nil {
				return fmt.Errorf("copying symlink: %w", err)
			}
		default:
			if err := Copy(sourcePath, destPath); err != nil {
				return fmt.Errorf("copying content of '%s' into '%s': %w", sourcePath, destPath, err)
			}
			if err := os.Chmod(destPath, fileInfo.Mode().Perm()); err != nil {
				return fmt.Errorf("while copying the mode from '%s' to '%s' with chmod: %w", sourcePath, destPath, err)
			}
		}
	}
	return nil
}

// Copy copies the content of srcFile to dstFile, truncating dstFile.
func Copy(srcFile, dstFile string) error {
	in, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("while opening the source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("while creating the destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("while copying the content of the source '%s' to the destination '%s': %w", srcFile, dstFile, err)
	}

	return out.Close()
}

func Exists(filePath string) bool {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return false
	}

	return true
}

func CreateIfNotExists(dir string, perm os.FileMode) error {
	if Exists(dir) {
		return nil
	}

	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("failed to create directory: '%s', error: '%s'", dir, err.Error())
	}

	return nil
}

func CopySymLink(source, dest string) error {
	link, err := os.Readlink(source)
	if err != nil {
		return fmt.Errorf("readlink syscall on source symlink '%s': %w", source, err)
	}
	if Exists(dest) {
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("replacing '%s': %w", dest, err)
		}
	}
	return os.Symlink(link, dest)
}
