package output

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirFS(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	fsys := DirFS(dir)

	err := WriteFile(fsys, "prog.obj", func(w io.Writer) error {
		_, err := io.WriteString(w, "E000000\n")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "prog.obj"))
	assert.NoError(err)
	assert.Equal("E000000\n", string(data))

	abs := filepath.Join(t.TempDir(), "prog.lst")
	assert.NoError(WriteFile(DirFS("/nonexistent"), abs, func(w io.Writer) error { return nil }))
	assert.FileExists(abs)

	_, err = fsys.Create(filepath.Join("missing", "prog.obj"))
	assert.Error(err)
}

func TestMapFS(t *testing.T) {
	assert := assert.New(t)

	fsys := MapFS{}

	assert.NoError(WriteFile(fsys, "a", func(w io.Writer) error {
		_, err := io.WriteString(w, "first")
		return err
	}))
	assert.Equal("first", fsys["a"].String())

	errWrite := errors.New("write failed")
	err := WriteFile(fsys, "a", func(w io.Writer) error {
		_, _ = io.WriteString(w, "second")
		return errWrite
	})
	assert.ErrorIs(err, errWrite)
	assert.Equal("second", fsys["a"].String())
}
