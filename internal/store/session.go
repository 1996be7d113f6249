package store

import (
	"fmt"
	"os"

	"github.com/pbzweihander/glt/internal/domain"
)

// Begin opens a new session for the given date and start time. It fails
// with ErrAlreadyOpen if the root already has an open session.
func (s *Store) Begin(date domain.Date, start domain.Time) (domain.DayCommit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.openPath()); err == nil {
		return domain.DayCommit{}, ErrAlreadyOpen
	} else if !os.IsNotExist(err) {
		return domain.DayCommit{}, fmt.Errorf("stat open session: %w", err)
	}

	c := domain.NewDayCommit(date, start)
	if err := writeCommit(s.openPath(), c); err != nil {
		return domain.DayCommit{}, err
	}
	return c, nil
}

// Get returns the open session, or ErrNoOpenSession.
func (s *Store) Get() (domain.DayCommit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readOpen()
}

// Update applies transform to the open session as an explicit
// load → transform → save sequence and returns both the state before and
// after. The whole sequence holds the root lock, so concurrent updates
// cannot lose each other's writes.
func (s *Store) Update(transform func(domain.DayCommit) domain.DayCommit) (old, updated domain.DayCommit, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, err = s.readOpen()
	if err != nil {
		return domain.DayCommit{}, domain.DayCommit{}, err
	}
	updated = transform(old.Clone())
	if err := writeCommit(s.openPath(), updated); err != nil {
		return domain.DayCommit{}, domain.DayCommit{}, err
	}
	return old, updated, nil
}

// Discard deletes the open session without archiving anything.
func (s *Store) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.openPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ErrNoOpenSession
	} else if err != nil {
		return fmt.Errorf("stat open session: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove open session: %w", err)
	}
	return nil
}

// readOpen loads the open session. Callers must hold s.mu.
func (s *Store) readOpen() (domain.DayCommit, error) {
	path := s.openPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return domain.DayCommit{}, ErrNoOpenSession
	} else if err != nil {
		return domain.DayCommit{}, fmt.Errorf("stat open session: %w", err)
	}
	return readCommit(path)
}
