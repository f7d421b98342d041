// Package output provides the destinations of the object module and the
// listing.
package output

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// CreateFS defines a file system that output files can be created in.
type CreateFS interface {
	// Create creates a new file for writing, truncating any existing file.
	Create(name string) (file io.WriteCloser, err error)
}

// DirFS creates files relative to a directory. Absolute names are used
// as they are. The empty DirFS is the current directory.
type DirFS string

var _ CreateFS = DirFS("")

// Create creates the named file.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(string(dir), name)
	}

	file, err = os.Create(name)
	return
}

// MapFS keeps created files in memory, keyed by name.
type MapFS map[string]*bytes.Buffer

var _ CreateFS = MapFS{}

// Create creates, or truncates, the named in-memory file.
func (mfs MapFS) Create(name string) (file io.WriteCloser, err error) {
	buf := &bytes.Buffer{}
	mfs[name] = buf
	file = nopCloser{buf}
	return
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// WriteFile creates name in fsys, and writes to it with the writer function.
func WriteFile(fsys CreateFS, name string, writer func(w io.Writer) error) (err error) {
	file, err := fsys.Create(name)
	if err != nil {
		return
	}

	err = writer(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}

	return
}
