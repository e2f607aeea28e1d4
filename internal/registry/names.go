package registry

import (
	"fmt"
	"strings"
)

// IsolatedPackage is the sentinel package name for isolated process templates.
// A target using it matches every isolated process whose name starts with the
// target's process name, regardless of the app that spawned it.
const IsolatedPackage = "isolated"

// Target is one (package, process) pair that must be hidden.
type Target struct {
	Package string `json:"package"`
	Process string `json:"process"`
}

// Isolated reports whether t is an isolated process template.
func (t Target) Isolated() bool {
	return t.Package == IsolatedPackage
}

// String renders the target in the "pkg|proc" list format.
func (t Target) String() string {
	return t.Package + "|" + t.Process
}

// ParseTarget is the inverse of Target.String.
func ParseTarget(line string) (Target, error) {
	pkg, proc, ok := strings.Cut(strings.TrimSpace(line), "|")
	if !ok || pkg == "" || proc == "" {
		return Target{}, fmt.Errorf("malformed hide item %q", line)
	}
	return Target{Package: pkg, Process: proc}, nil
}

// Valid reports whether name can be used as a package or process name: either
// the isolated sentinel, or a dotted name made of [A-Za-z0-9_:.].
func Valid(name string) bool {
	if name == IsolatedPackage {
		return true
	}
	dot := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case isAllowedNameByte(c):
		case c == '.':
			dot = true
		default:
			return false
		}
	}
	return dot
}

func isAllowedNameByte(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '_', c == ':':
		return true
	default:
		return false
	}
}
