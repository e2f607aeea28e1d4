package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"prochide/internal/registry"
)

var (
	bucketHidelist = []byte("hidelist")
	bucketSettings = []byte("settings")
)

// Bolt stores each target as the key "pkg\x00proc" in the hidelist bucket.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) the bolt file at path.
func OpenBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketHidelist, bucketSettings} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}
	return &Bolt{db: db}, nil
}

func targetKey(pkg, proc string) []byte {
	return []byte(pkg + "\x00" + proc)
}

func (b *Bolt) Targets(context.Context) ([]registry.Target, error) {
	var out []registry.Target
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketHidelist).ForEach(func(k, _ []byte) error {
			pkg, proc, ok := bytes.Cut(k, []byte{0})
			if !ok {
				return fmt.Errorf("corrupt hidelist key %q", k)
			}
			out = append(out, registry.Target{Package: string(pkg), Process: string(proc)})
			return nil
		})
	})
	return out, err
}

func (b *Bolt) InsertTarget(_ context.Context, t registry.Target) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketHidelist)
		key := targetKey(t.Package, t.Process)
		if bkt.Get(key) != nil {
			return fmt.Errorf("hidelist: %s already stored", t)
		}
		return bkt.Put(key, []byte{})
	})
}

func (b *Bolt) DeleteTarget(_ context.Context, pkg, proc string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(bucketHidelist)
		if proc != "" {
			return bkt.Delete(targetKey(pkg, proc))
		}
		prefix := targetKey(pkg, "")
		c := bkt.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Seek(prefix) {
			if err := c.Delete(); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *Bolt) HideConfig(context.Context) (bool, error) {
	var enabled bool
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketSettings).Get([]byte(HideConfigKey))
		enabled = len(v) == 1 && v[0] == 1
		return nil
	})
	return enabled, err
}

func (b *Bolt) SetHideConfig(_ context.Context, enabled bool) error {
	v := byte(0)
	if enabled {
		v = 1
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSettings).Put([]byte(HideConfigKey), []byte{v})
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
