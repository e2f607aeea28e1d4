// Package proctabletest provides an in-memory process table.
package proctabletest

import (
	"fmt"
	"os"
	"sort"
	"sync"
)

type process struct {
	name string
	uid  int
}

// Table is a fake proctable.Table. Terminated processes disappear from it.
type Table struct {
	mu         sync.Mutex
	nextPID    int
	procs      map[int]process
	terminated []string
	// Unreadable PIDs are listed by Walk but fail Cmdline, like a process
	// that exits mid-scan.
	unreadable map[int]bool
}

// New returns an empty table whose first PID is 100.
func New() *Table {
	return &Table{nextPID: 100, procs: make(map[int]process), unreadable: make(map[int]bool)}
}

// Spawn adds a process and returns its PID.
func (t *Table) Spawn(name string, uid int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	pid := t.nextPID
	t.nextPID++
	t.procs[pid] = process{name: name, uid: uid}
	return pid
}

// SpawnUnreadable adds a PID whose info file cannot be read.
func (t *Table) SpawnUnreadable() int {
	pid := t.Spawn("", 0)
	t.mu.Lock()
	t.unreadable[pid] = true
	t.mu.Unlock()
	return pid
}

// Running returns the names of live processes, sorted.
func (t *Table) Running() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.procs))
	for pid, p := range t.procs {
		if !t.unreadable[pid] {
			out = append(out, p.name)
		}
	}
	sort.Strings(out)
	return out
}

// Terminated returns the names of terminated processes in signal order.
func (t *Table) Terminated() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.terminated...)
}

// Walk visits PIDs in ascending order.
func (t *Table) Walk(fn func(pid int) bool) error {
	t.mu.Lock()
	pids := make([]int, 0, len(t.procs))
	for pid := range t.procs {
		pids = append(pids, pid)
	}
	t.mu.Unlock()
	sort.Ints(pids)

	for _, pid := range pids {
		if !fn(pid) {
			return nil
		}
	}
	return nil
}

// Cmdline returns the spawned name.
func (t *Table) Cmdline(pid int) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.procs[pid]
	if !ok || t.unreadable[pid] {
		return "", fmt.Errorf("open /proc/%d/cmdline: %w", pid, os.ErrNotExist)
	}
	return p.name, nil
}

// UID returns the spawned UID.
func (t *Table) UID(pid int) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.procs[pid]
	if !ok {
		return 0, fmt.Errorf("stat /proc/%d: %w", pid, os.ErrNotExist)
	}
	return p.uid, nil
}

// Terminate removes the process and records its name.
func (t *Table) Terminate(pid int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.procs[pid]
	if !ok {
		return fmt.Errorf("kill %d: %w", pid, os.ErrProcessDone)
	}
	delete(t.procs, pid)
	t.terminated = append(t.terminated, p.name)
	return nil
}
