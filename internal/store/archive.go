package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pbzweihander/glt/internal/domain"
)

// Finalize seals the open session with an end time and note, writes it
// into the day-archive area under a collision-safe name, and removes the
// open record. The archive write and the open-record delete are two
// separate filesystem operations; a crash between them leaves both copies
// behind, which the next Begin will report as ErrAlreadyOpen.
func (s *Store) Finalize(end domain.Time, note string) (domain.DayCommit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.readOpen()
	if err != nil {
		return domain.DayCommit{}, err
	}
	c.EndTime = &end
	c.Note = &note

	dir := s.archiveDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.DayCommit{}, fmt.Errorf("create day archive: %w", err)
	}
	name, err := freeDayName(dir, c.Date.Day)
	if err != nil {
		return domain.DayCommit{}, err
	}
	if err := writeCommit(filepath.Join(dir, name), c); err != nil {
		return domain.DayCommit{}, err
	}
	if err := os.Remove(s.openPath()); err != nil {
		return domain.DayCommit{}, fmt.Errorf("remove open session: %w", err)
	}
	return c, nil
}

// freeDayName probes the archive directory for an unused name derived from
// the day of month: <day>.json, then <day>_1.json, <day>_2.json, and so
// on. The day-archive area is flat, so two sessions sharing a day number
// across months collide on the base name.
func freeDayName(dir string, day int) (string, error) {
	base := strconv.Itoa(day)
	for n := 0; ; n++ {
		name := base + ".json"
		if n > 0 {
			name = base + "_" + strconv.Itoa(n) + ".json"
		}
		_, err := os.Stat(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			return name, nil
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", name, err)
		}
	}
}

// ListDays returns every sealed record in the day-archive area. Files that
// fail to decode are skipped; the collection is best-effort. It fails with
// ErrEmptyArchive when the area is absent or holds no files.
func (s *Store) ListDays() ([]domain.DayCommit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.archiveFileNames()
	if err != nil {
		return nil, err
	}
	commits := make([]domain.DayCommit, 0, len(names))
	for _, name := range names {
		c, err := readCommit(filepath.Join(s.archiveDir(), name))
		if err != nil {
			continue
		}
		commits = append(commits, c)
	}
	return commits, nil
}

// ArchiveMonth relocates every file in the day-archive area into
// <root>/<year>/<month>/, keeping original filenames. The destination is
// anchored on the earliest record by date, not on listing order. Files are
// moved by rename; if a rename fails, the mover falls back to staging
// copies of the remaining files and deleting the sources only after every
// copy succeeded.
func (s *Store) ArchiveMonth() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	names, err := s.archiveFileNames()
	if err != nil {
		return err
	}

	anchor, err := s.anchorDate(names)
	if err != nil {
		return err
	}
	dest := s.monthDir(anchor)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("create month archive: %w", err)
	}

	var staged []string
	renaming := true
	for _, name := range names {
		src := filepath.Join(s.archiveDir(), name)
		dst := filepath.Join(dest, name)
		if renaming {
			if err := os.Rename(src, dst); err == nil {
				continue
			}
			renaming = false
		}
		if err := copyFile(src, dst); err != nil {
			return err
		}
		staged = append(staged, src)
	}
	for _, src := range staged {
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("remove archived record: %w", err)
		}
	}
	return nil
}

// anchorDate picks the earliest decodable record's date. Callers must hold
// s.mu.
func (s *Store) anchorDate(names []string) (domain.Date, error) {
	var commits []domain.DayCommit
	for _, name := range names {
		c, err := readCommit(filepath.Join(s.archiveDir(), name))
		if err != nil {
			continue
		}
		commits = append(commits, c)
	}
	if len(commits) == 0 {
		return domain.Date{}, fmt.Errorf("%w: no decodable record to anchor the month", ErrMalformedRecord)
	}
	domain.SortCommits(commits)
	return commits[0].Date, nil
}

// archiveFileNames lists the day-archive area, failing with
// ErrEmptyArchive when there is nothing to work with. Callers must hold
// s.mu.
func (s *Store) archiveFileNames() ([]string, error) {
	entries, err := os.ReadDir(s.archiveDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrEmptyArchive
	}
	if err != nil {
		return nil, fmt.Errorf("list day archive: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, ErrEmptyArchive
	}
	return names, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}
	return nil
}
