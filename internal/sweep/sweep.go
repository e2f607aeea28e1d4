// Package sweep scans the process table and terminates processes by name.
package sweep

import (
	"strings"

	"go.uber.org/zap"

	"prochide/internal/proctable"
)

// Mode selects how a process name is compared against a target name.
type Mode int

const (
	// Exact requires the names to be equal.
	Exact Mode = iota
	// Prefix matches names starting with the target, e.g. numbered isolated
	// services or zygote pool members.
	Prefix
	// SuffixExceptWebviewZygote matches names ending with the target. A
	// process named exactly webview_zygote never matches: it is shared by
	// every app that embeds a WebView.
	SuffixExceptWebviewZygote
)

// WebviewZygote is the process name SuffixExceptWebviewZygote never matches.
const WebviewZygote = "webview_zygote"

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Prefix:
		return "prefix"
	case SuffixExceptWebviewZygote:
		return "suffix"
	default:
		return "unknown"
	}
}

// Match compares a process name against target.
func Match(name, target string, mode Mode) bool {
	switch mode {
	case Exact:
		return name == target
	case Prefix:
		return strings.HasPrefix(name, target)
	case SuffixExceptWebviewZygote:
		if name == WebviewZygote {
			return false
		}
		return strings.HasSuffix(name, target)
	default:
		return false
	}
}

// Sweeper terminates running processes that match a name.
type Sweeper struct {
	table proctable.Table
	log   *zap.Logger
}

// New returns a sweeper over table.
func New(table proctable.Table, log *zap.Logger) *Sweeper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sweeper{table: table, log: log}
}

// Kill sends SIGTERM to processes whose name matches target under mode. Unless
// multi is set it stops after the first match. It returns the number of
// processes signalled. Processes that cannot be read are skipped.
func (s *Sweeper) Kill(target string, multi bool, mode Mode) int {
	killed := 0
	err := s.table.Walk(func(pid int) bool {
		name, err := s.table.Cmdline(pid)
		if err != nil || !Match(name, target, mode) {
			return true
		}
		s.log.Debug("kill", zap.Int("pid", pid), zap.String("name", name), zap.Stringer("mode", mode))
		if err := s.table.Terminate(pid); err != nil {
			s.log.Warn("terminate failed", zap.Int("pid", pid), zap.String("name", name), zap.Error(err))
		} else {
			killed++
		}
		return multi
	})
	if err != nil {
		s.log.Warn("process scan failed", zap.String("target", target), zap.Error(err))
	}
	return killed
}
