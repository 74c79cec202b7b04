package journal

import (
	"errors"
	"sync"
)

var errClosed = errors.New("journal closed")

// Memory keeps records in process. It is used for dry runs and tests.
type Memory struct {
	mu        sync.Mutex
	runs      []RunRecord
	snapshots []SnapshotRecord
	closed    bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) RecordRun(r RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}
	m.runs = append(m.runs, r)
	return nil
}

func (m *Memory) RecordSnapshot(s SnapshotRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}
	m.snapshots = append(m.snapshots, s)
	return nil
}

// RecordSnapshots appends snaps in one step.
func (m *Memory) RecordSnapshots(snaps []SnapshotRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}
	m.snapshots = append(m.snapshots, snaps...)
	return nil
}

// RecordRunWithSnapshots appends a run and its trace in one step.
func (m *Memory) RecordRunWithSnapshots(r RunRecord, snaps []SnapshotRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}
	m.runs = append(m.runs, r)
	m.snapshots = append(m.snapshots, snaps...)
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Runs returns a copy of the recorded runs.
func (m *Memory) Runs() []RunRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]RunRecord(nil), m.runs...)
}

// Snapshots returns a copy of the recorded snapshots.
func (m *Memory) Snapshots() []SnapshotRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SnapshotRecord(nil), m.snapshots...)
}

func (m *Memory) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
