package checksum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteChecksums(t *testing.T) {
	file := filepath.Join(t.TempDir(), "r8-1.0.pom")
	require.NoError(t, os.WriteFile(file, []byte("hello\n"), 0644))

	require.NoError(t, WriteMD5(file))
	require.NoError(t, WriteSHA1(file))

	md5sum, err := os.ReadFile(file + ".md5")
	require.NoError(t, err)
	require.Equal(t, "b1946ac92492d2347c6235b4d2611184", string(md5sum))

	sha1sum, err := os.ReadFile(file + ".sha1")
	require.NoError(t, err)
	require.Equal(t, "f572d396fae9206628714fb2ce00f72e94f2258f", string(sha1sum))
}

func TestWriteChecksumMissingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "missing.jar")
	require.Error(t, WriteMD5(file))
	require.NoFileExists(t, file+".md5")
}
