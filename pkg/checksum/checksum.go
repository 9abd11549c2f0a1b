package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

const chunkSize = 1 << 20

// HashFile feeds the content of file through h in 1MB chunks and returns
// the hex digest.
func HashFile(file string, h hash.Hash) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("opening '%s': %w", file, err)
	}
	defer f.Close()

	if _, err := io.CopyBuffer(h, f, make([]byte, chunkSize)); err != nil {
		return "", fmt.Errorf("hashing '%s': %w", file, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// WriteMD5 writes the md5 digest of file to file.md5.
func WriteMD5(file string) error {
	return write(file, ".md5", md5.New())
}

// WriteSHA1 writes the sha1 digest of file to file.sha1.
func WriteSHA1(file string) error {
	return write(file, ".sha1", sha1.New())
}

func write(file, ext string, h hash.Hash) error {
	digest, err := HashFile(file, h)
	if err != nil {
		return err
	}
	if err := os.WriteFile(file+ext, []byte(digest), 0644); err != nil {
		return fmt.Errorf("writing '%s': %w", file+ext, err)
	}
	return nil
}
