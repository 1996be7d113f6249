// Package store keeps a single data root's work log on disk: at most one
// open session in working.json, sealed day records in the flat working/
// directory, and permanently archived months under <year>/<month>/.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pbzweihander/glt/internal/domain"
)

var (
	// ErrAlreadyOpen reports a Begin against a root that already has an
	// open session.
	ErrAlreadyOpen = errors.New("a session is already open")
	// ErrNoOpenSession reports an operation that needs an open session
	// when none exists.
	ErrNoOpenSession = errors.New("no open session")
	// ErrEmptyArchive reports a month operation against an empty or
	// absent day-archive area.
	ErrEmptyArchive = errors.New("day archive is empty")
	// ErrMalformedRecord reports a persisted file that does not decode
	// to a day commit.
	ErrMalformedRecord = errors.New("malformed day record")
)

const (
	openFileName  = "working.json"
	archiveSubdir = "working"
)

// Store is a file-backed session store rooted at a single directory. All
// operations on the same root serialize on a shared per-root mutex, so
// each read-transform-write sequence is atomic with respect to the others.
type Store struct {
	root string
	mu   *sync.Mutex
}

var (
	locksMu sync.Mutex
	locks   = map[string]*sync.Mutex{}
)

func lockFor(root string) *sync.Mutex {
	locksMu.Lock()
	defer locksMu.Unlock()
	if mu, ok := locks[root]; ok {
		return mu
	}
	mu := &sync.Mutex{}
	locks[root] = mu
	return mu
}

// Open prepares a store at root, creating the directory if needed.
func Open(root string) (*Store, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create data root: %w", err)
	}
	return &Store{root: root, mu: lockFor(root)}, nil
}

func (s *Store) openPath() string {
	return filepath.Join(s.root, openFileName)
}

func (s *Store) archiveDir() string {
	return filepath.Join(s.root, archiveSubdir)
}

func (s *Store) monthDir(d domain.Date) string {
	return filepath.Join(s.root, strconv.Itoa(d.Year), strconv.Itoa(d.Month))
}

func readCommit(path string) (domain.DayCommit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.DayCommit{}, fmt.Errorf("read %s: %w", path, err)
	}
	var c domain.DayCommit
	if err := json.Unmarshal(data, &c); err != nil {
		return domain.DayCommit{}, fmt.Errorf("%w: %s: %v", ErrMalformedRecord, filepath.Base(path), err)
	}
	return c, nil
}

// writeCommit saves atomically: write a temp file, then rename over the
// destination.
func writeCommit(path string, c domain.DayCommit) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode day commit: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
