package domain

import "path/filepath"

const (
	// HeraldDirName is the name of the internal state directory.
	HeraldDirName = ".herald"

	// ConfigFileName is the name of the watch configuration file.
	ConfigFileName = "herald.yaml"

	// PendingFileName is the name of the durable pending invocation queue.
	PendingFileName = "pending-invocations.json"

	// PendingLockName is the sidecar lock file guarding queue appends.
	PendingLockName = "pending-invocations.lock"

	// JournalFileName is the name of the append-only change journal.
	JournalFileName = "changes.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultPendingPath returns the pending queue path under the given root.
func DefaultPendingPath(root string) string {
	return filepath.Join(root, HeraldDirName, PendingFileName)
}

// DefaultPendingLockPath returns the queue lock file path under the given root.
func DefaultPendingLockPath(root string) string {
	return filepath.Join(root, HeraldDirName, PendingLockName)
}

// DefaultJournalPath returns the change journal path under the given root.
func DefaultJournalPath(root string) string {
	return filepath.Join(root, HeraldDirName, JournalFileName)
}
