// Package uidmap resolves hide targets to the numeric UIDs that own them.
package uidmap

import (
	"fmt"
	"os"
	"path"
	"syscall"

	"github.com/spf13/afero"

	"prochide/internal/registry"
)

// IsolatedUID is the pseudo UID under which isolated process templates are kept.
const IsolatedUID = -1

// DefaultRoot is the per-user app data directory on Android.
const DefaultRoot = "/data/user_de"

// Map lists, per UID, the process names that must be hidden.
type Map map[int][]string

// Clone returns a deep copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for uid, names := range m {
		out[uid] = append([]string(nil), names...)
	}
	return out
}

// OwnerFunc extracts the owning UID of the directory at path from its stat result.
type OwnerFunc func(path string, fi os.FileInfo) (int, bool)

// StatOwner reads the UID from the underlying syscall.Stat_t.
func StatOwner(_ string, fi os.FileInfo) (int, bool) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return int(st.Uid), true
}

// Resolver walks the app data tree. The zero value is not usable; use New.
type Resolver struct {
	fs    afero.Fs
	root  string
	owner OwnerFunc
}

// New returns a resolver reading root through fs. A nil owner falls back to StatOwner.
func New(fs afero.Fs, root string, owner OwnerFunc) *Resolver {
	if root == "" {
		root = DefaultRoot
	}
	if owner == nil {
		owner = StatOwner
	}
	return &Resolver{fs: fs, root: root, owner: owner}
}

// Build derives a fresh map from targets. Isolated templates are recorded once,
// under IsolatedUID; every other target is recorded under the owner of
// <root>/<profile>/<package> for each profile where that directory exists.
func (r *Resolver) Build(targets []registry.Target) (Map, error) {
	profiles, err := afero.ReadDir(r.fs, r.root)
	if err != nil {
		return nil, fmt.Errorf("read app data root %s: %w", r.root, err)
	}

	m := make(Map)
	first := true
	for _, profile := range profiles {
		if !profile.IsDir() {
			continue
		}
		base := path.Join(r.root, profile.Name())
		for _, t := range targets {
			if t.Isolated() {
				if first {
					m[IsolatedUID] = append(m[IsolatedUID], t.Process)
				}
				continue
			}
			dir := path.Join(base, t.Package)
			fi, err := r.fs.Stat(dir)
			if err != nil {
				// not installed for this profile
				continue
			}
			uid, ok := r.owner(dir, fi)
			if !ok {
				continue
			}
			m[uid] = append(m[uid], t.Process)
		}
		first = false
	}
	return m, nil
}
