// Package queue persists pending invocations as a JSON array on disk.
package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

var _ ports.PendingQueue = (*Store)(nil)

// Store appends to and reads a single JSON file holding the pending
// invocations. Appends take an exclusive flock on a sibling lock file for
// the whole read-modify-write, so concurrent writers (another session, an
// external drainer) never interleave.
type Store struct {
	path     string
	lockPath string
	logger   ports.Logger
}

// NewStore creates a Store persisting to the given file.
func NewStore(path, lockPath string, logger ports.Logger) *Store {
	return &Store{
		path:     path,
		lockPath: lockPath,
		logger:   logger,
	}
}

// Append durably adds one invocation to the queue. A missing or malformed
// queue file is replaced by a fresh queue holding only the new entry; the
// unreadable content is reported, never silently required to parse.
func (s *Store) Append(inv domain.PendingInvocation) error {
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrQueueWriteFailed.Error())
	}

	unlock, err := s.lock()
	if err != nil {
		return err
	}
	defer unlock()

	pending := s.readAll()
	pending = append(pending, inv)

	data, err := json.MarshalIndent(pending, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrQueueWriteFailed.Error())
	}

	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrQueueWriteFailed.Error())
	}
	return nil
}

// List returns the queued invocations. A missing file is an empty queue.
func (s *Store) List() ([]domain.PendingInvocation, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrQueueReadFailed.Error())
	}

	var pending []domain.PendingInvocation
	if err := json.Unmarshal(data, &pending); err != nil {
		return nil, zerr.Wrap(err, domain.ErrQueueReadFailed.Error())
	}
	return pending, nil
}

// readAll loads the current queue for an append, tolerating a missing or
// corrupt file. Callers hold the lock.
func (s *Store) readAll() []domain.PendingInvocation {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn(fmt.Sprintf("pending queue unreadable, starting fresh: %v", err))
		}
		return nil
	}

	var pending []domain.PendingInvocation
	if err := json.Unmarshal(data, &pending); err != nil {
		s.logger.Warn(fmt.Sprintf("pending queue malformed, starting fresh: %v", err))
		return nil
	}
	return pending
}

// lock takes an exclusive advisory lock, returning the release function.
func (s *Store) lock() (func(), error) {
	//nolint:gosec // Path is derived from the trusted state directory
	file, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, domain.FilePerm)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrQueueLockFailed.Error())
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX); err != nil {
		_ = file.Close()
		return nil, zerr.Wrap(err, domain.ErrQueueLockFailed.Error())
	}

	return func() {
		_ = unix.Flock(int(file.Fd()), unix.LOCK_UN)
		_ = file.Close()
	}, nil
}
