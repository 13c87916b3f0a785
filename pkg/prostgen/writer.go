package prostgen

import (
	"os"
	"path/filepath"
)

const DefaultExt = ".rs"

// OutputWriter receives the generated code of each package once every input
// has been processed.
type OutputWriter interface {
	WriteOutput(pkg string, code []byte) error
}

// DirWriter writes each package to <Dir>/<package><Ext>.
type DirWriter struct {
	Dir string
	Ext string
}

func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{
		Dir: dir,
		Ext: DefaultExt,
	}
}

func (w *DirWriter) Path(pkg string) string {
	return filepath.Join(w.Dir, pkg+w.Ext)
}

func (w *DirWriter) WriteOutput(pkg string, code []byte) error {
	err := os.MkdirAll(w.Dir, 0755)
	if err != nil {
		return &IOError{Op: "create", Path: w.Dir, Err: err}
	}

	path := w.Path(pkg)
	err = os.WriteFile(path, code, 0644)
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
