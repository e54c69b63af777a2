package session

import (
	"context"
	"errors"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// FilesSaveHandlerName is the save handler name reported by FileHandler.
const FilesSaveHandlerName = "files"

const sessionFilePrefix = "sess_"

var validSessionID = regexp.MustCompile(`^[a-zA-Z0-9,-]+$`)

// FileHandler stores every session in its own file named sess_<id>.
// The filesystem is pluggable: osfs for production, memfs for tests.
//
// A FileHandler may be shared by concurrent storages; Open only swaps the
// directory under a lock.
type FileHandler struct {
	fs  billy.Filesystem
	mu  sync.RWMutex
	dir string
}

var (
	_ TimestampHandler = (*FileHandler)(nil)
	_ NamedHandler     = (*FileHandler)(nil)
)

// NewFileHandler creates a file based handler on top of fs.
func NewFileHandler(fs billy.Filesystem) *FileHandler {
	return &FileHandler{fs: fs}
}

// SaveHandlerName returns "files".
func (h *FileHandler) SaveHandlerName() string {
	return FilesSaveHandlerName
}

// Open switches to savePath (relative to the filesystem root) and creates it
// if needed. An empty savePath keeps the current directory.
func (h *FileHandler) Open(_ context.Context, savePath, _ string) (bool, error) {
	if savePath == "" {
		return true, nil
	}
	if err := h.fs.MkdirAll(savePath, 0o700); err != nil {
		return false, err
	}

	h.mu.Lock()
	h.dir = savePath
	h.mu.Unlock()
	return true, nil
}

// Close is a no-op.
func (h *FileHandler) Close(context.Context) (bool, error) {
	return true, nil
}

// Read returns an empty string when the session file does not exist.
func (h *FileHandler) Read(_ context.Context, id string) (string, error) {
	path, err := h.path(id)
	if err != nil {
		return "", err
	}

	f, err := h.fs.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the session file with data.
func (h *FileHandler) Write(_ context.Context, id, data string) (bool, error) {
	path, err := h.path(id)
	if err != nil {
		return false, err
	}
	if err := util.WriteFile(h.fs, path, []byte(data), 0o600); err != nil {
		return false, err
	}
	return true, nil
}

// Destroy treats a missing file as already destroyed.
func (h *FileHandler) Destroy(_ context.Context, id string) (bool, error) {
	path, err := h.path(id)
	if err != nil {
		return false, err
	}
	if err := h.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	return true, nil
}

// GC removes session files not modified within maxLifetime.
func (h *FileHandler) GC(_ context.Context, maxLifetime time.Duration) (int, error) {
	dir := h.directory()
	listDir := dir
	if listDir == "" {
		listDir = "."
	}

	infos, err := h.fs.ReadDir(listDir)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-maxLifetime)
	removed := 0
	for _, info := range infos {
		if info.IsDir() || !strings.HasPrefix(info.Name(), sessionFilePrefix) {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := h.fs.Remove(h.fs.Join(dir, info.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// ValidateID reports whether a session file exists for id.
func (h *FileHandler) ValidateID(_ context.Context, id string) (bool, error) {
	path, err := h.path(id)
	if err != nil {
		return false, err
	}
	_, err = h.fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateTimestamp touches the session file, rewriting it when the filesystem
// cannot change modification times.
func (h *FileHandler) UpdateTimestamp(ctx context.Context, id, data string) (bool, error) {
	path, err := h.path(id)
	if err != nil {
		return false, err
	}

	if ch, ok := h.fs.(billy.Change); ok {
		now := time.Now()
		err := ch.Chtimes(path, now, now)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, billy.ErrNotSupported) && !errors.Is(err, os.ErrNotExist) {
			return false, err
		}
	}
	return h.Write(ctx, id, data)
}

func (h *FileHandler) path(id string) (string, error) {
	if !validSessionID.MatchString(id) {
		return "", ErrInvalidSessionID
	}
	return h.fs.Join(h.directory(), sessionFilePrefix+id), nil
}

func (h *FileHandler) directory() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.dir
}
