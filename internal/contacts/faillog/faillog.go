// Package faillog appends failed-record entries to a plain-text artifact used
// for offline follow-up. The file is append-only and never read back by the
// pipeline.
package faillog

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Log is an append-only failure artifact. Entries are tab-separated:
// timestamp, run ID, directory ID, reason, with an optional continuation line
// carrying the raw service response.
type Log struct {
	path  string
	runID string
	mu    sync.Mutex
}

// New creates a failure log writing to path, tagging entries with runID.
func New(path, runID string) *Log {
	return &Log{path: path, runID: runID}
}

// Append writes one failure entry. response may be blank.
func (l *Log) Append(directoryID, reason, response string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open failure log: %w", err)
	}
	defer f.Close()

	timestamp := time.Now().Format(time.RFC3339)
	if _, err := fmt.Fprintf(f, "%s\t%s\t%s\t%s\n", timestamp, l.runID, directoryID, reason); err != nil {
		return fmt.Errorf("write failure log: %w", err)
	}
	if response != "" {
		if _, err := fmt.Fprintf(f, "Response: %s\n", response); err != nil {
			return fmt.Errorf("write failure log: %w", err)
		}
	}
	return nil
}
