package prostgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProtos(t *testing.T) {

	root := t.TempDir()
	for _, name := range []string{"b.proto", "a.proto", "nested/deep/c.proto", "notes.txt", "nested/d.proto.bak"} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte{}, 0644))
	}

	paths, err := FindProtos(root, DefaultPattern)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.proto"),
		filepath.Join(root, "b.proto"),
		filepath.Join(root, "nested", "deep", "c.proto"),
	}, paths)

	paths, err = FindProtos(root, "*.proto")
	require.NoError(t, err)
	assert.Equal(t, 2, len(paths))
}

func TestFindProtosErrors(t *testing.T) {

	_, err := FindProtos(t.TempDir(), "[")
	require.Error(t, err)

	_, err = FindProtos(filepath.Join(t.TempDir(), "missing"), DefaultPattern)
	require.Error(t, err)

	var ioerr *IOError
	assert.True(t, errors.As(err, &ioerr))
}
