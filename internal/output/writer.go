package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"

	syncerrors "github.com/sirseerhq/gh-pr-sync/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DirWriter writes one YAML document per record into a directory. Every
// file it owns carries the configured extension.
type DirWriter struct {
	mu    sync.Mutex
	dir   string
	ext   string
	count int
}

// NewDirWriter creates a writer for dir. ext is given without the leading
// dot ("yaml" or "yml").
func NewDirWriter(dir, ext string) *DirWriter {
	return &DirWriter{
		dir: dir,
		ext: strings.TrimPrefix(ext, "."),
	}
}

// Dir returns the output directory.
func (w *DirWriter) Dir() string {
	return w.dir
}

// Path returns the file a record named name is written to.
func (w *DirWriter) Path(name string) string {
	return filepath.Join(w.dir, name+"."+w.ext)
}

// Prepare creates the output directory and any missing parents.
func (w *DirWriter) Prepare() error {
	if err := os.MkdirAll(w.dir, dirPerm); err != nil {
		return &syncerrors.FilesystemError{Op: "create directory", Path: w.dir, Err: err}
	}
	return nil
}

// ClearStale deletes every regular file in the directory whose extension
// matches the writer's. Subdirectories and other files are left alone.
func (w *DirWriter) ClearStale() (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return 0, &syncerrors.FilesystemError{Op: "read directory", Path: w.dir, Err: err}
	}

	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != "."+w.ext {
			continue
		}
		path := filepath.Join(w.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return removed, &syncerrors.FilesystemError{Op: "remove stale file", Path: path, Err: err}
		}
		removed++
	}
	return removed, nil
}

// Write serializes record as YAML to <dir>/<name>.<ext>, overwriting any
// existing file.
func (w *DirWriter) Write(name string, record interface{}) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	path := w.Path(name)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(record); err != nil {
		return "", &syncerrors.EncodeError{Path: path, Err: err}
	}
	if err := enc.Close(); err != nil {
		return "", &syncerrors.EncodeError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return "", &syncerrors.FilesystemError{Op: "write", Path: path, Err: err}
	}

	w.count++
	return path, nil
}

// Count returns the number of records written.
func (w *DirWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}
