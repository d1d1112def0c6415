// Package journal records classified changes as JSON lines on disk.
package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChangeJournal = (*Journal)(nil)

// entry is the wire form of one journal line.
type entry struct {
	Timestamp time.Time        `json:"timestamp"`
	File      string           `json:"file"`
	Type      string           `json:"type"`
	Priority  domain.Priority  `json:"priority"`
	Agents    []string         `json:"agents"`
	Change    domain.EventKind `json:"change"`
}

// Journal appends one JSON object per recorded change to a log file. It is
// an audit trail only: nothing in the engine reads it back.
type Journal struct {
	mu   sync.Mutex
	path string
}

// New creates a Journal writing to the given file.
func New(path string) *Journal {
	return &Journal{path: path}
}

// Record appends the event as one JSON line.
func (j *Journal) Record(event domain.ChangeEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(j.path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrJournalWriteFailed.Error())
	}

	line, err := json.Marshal(entry{
		Timestamp: event.ObservedAt,
		File:      event.Path.String(),
		Type:      event.Category,
		Priority:  event.Priority,
		Agents:    event.Agents,
		Change:    event.Kind,
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrJournalWriteFailed.Error())
	}

	//nolint:gosec // Path is derived from the trusted state directory
	file, err := os.OpenFile(j.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return zerr.Wrap(err, domain.ErrJournalWriteFailed.Error())
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Write(append(line, '\n')); err != nil {
		return zerr.Wrap(err, domain.ErrJournalWriteFailed.Error())
	}
	return nil
}
