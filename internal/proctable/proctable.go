// Package proctable exposes the live process table through a small capability
// interface so that matching logic can run against a fake in tests.
package proctable

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

// DefaultRoot is the procfs mount point.
const DefaultRoot = procfs.DefaultMountPoint

// Table is the set of process operations the daemon needs.
type Table interface {
	// Walk calls fn for every live PID until fn returns false.
	Walk(fn func(pid int) bool) error
	// Cmdline returns the process name: the first NUL or space delimited
	// token of its command line.
	Cmdline(pid int) (string, error)
	// UID returns the real owner of the process.
	UID(pid int) (int, error)
	// Terminate sends SIGTERM.
	Terminate(pid int) error
}

const readdirBatch = 128

// Proc is the procfs backed Table. The directory handle stays open for the
// lifetime of the value and is rewound before each walk.
type Proc struct {
	mu   sync.Mutex
	root string
	dir  *os.File
	fs   procfs.FS
}

// Open opens the procfs directory at root.
func Open(root string) (*Proc, error) {
	if root == "" {
		root = DefaultRoot
	}
	fs, err := procfs.NewFS(root)
	if err != nil {
		return nil, fmt.Errorf("procfs %s: %w", root, err)
	}
	dir, err := os.Open(root)
	if err != nil {
		return nil, err
	}
	return &Proc{root: root, dir: dir, fs: fs}, nil
}

// Walk implements Table. Concurrent walks are serialized on the shared handle.
func (p *Proc) Walk(fn func(pid int) bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.dir.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %s: %w", p.root, err)
	}
	for {
		names, err := p.dir.Readdirnames(readdirBatch)
		for _, name := range names {
			pid, convErr := strconv.Atoi(name)
			if convErr != nil || pid <= 0 {
				continue
			}
			if !fn(pid) {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", p.root, err)
		}
	}
}

// Cmdline implements Table.
func (p *Proc) Cmdline(pid int) (string, error) {
	proc, err := p.fs.Proc(pid)
	if err != nil {
		return "", err
	}
	args, err := proc.CmdLine()
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}
	name, _, _ := strings.Cut(args[0], " ")
	return name, nil
}

// UID implements Table.
func (p *Proc) UID(pid int) (int, error) {
	fi, err := os.Stat(filepath.Join(p.root, strconv.Itoa(pid)))
	if err != nil {
		return 0, err
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, fmt.Errorf("pid %d: no ownership information", pid)
	}
	return int(st.Uid), nil
}

// Terminate implements Table.
func (p *Proc) Terminate(pid int) error {
	return unix.Kill(pid, unix.SIGTERM)
}
