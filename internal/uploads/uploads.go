// Package uploads serves the files stored in the uploads directory.
package uploads

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
)

const dirPerm = 0o755

// EnsureDir creates dir with its parents when it does not exist yet.
func EnsureDir(dir string) error {
	if dir == "" {
		return errors.New("uploads: empty directory")
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("uploads: create directory %q: %w", dir, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("uploads: stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("uploads: %q is not a directory", dir)
	}

	return nil
}

// noListFS hides directories so that http.FileServer never renders a listing.
type noListFS struct {
	root http.FileSystem
}

func (n noListFS) Open(name string) (http.File, error) {
	f, err := n.root.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	if info.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}

	return f, nil
}

// Handler serves the files under dir at prefix. Directory requests get a 404.
func Handler(dir, prefix string) http.Handler {
	prefix = "/" + strings.Trim(prefix, "/")
	slog.Debug("serving uploads", "dir", dir, "prefix", prefix)

	return http.StripPrefix(prefix, http.FileServer(noListFS{root: http.Dir(dir)}))
}
