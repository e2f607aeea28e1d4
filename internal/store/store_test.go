package store

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prochide/internal/registry"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()
	out := make(map[string]Store)
	for _, driver := range []string{DriverSQLite, DriverBolt, DriverMemory} {
		s, err := Open(driver, filepath.Join(dir, driver, "hide.db"))
		require.NoError(t, err, driver)
		t.Cleanup(func() { s.Close() })
		out[driver] = s
	}
	return out
}

func sorted(ts []registry.Target) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}

func TestStoreTargets(t *testing.T) {
	ctx := context.Background()
	for driver, s := range openAll(t) {
		t.Run(driver, func(t *testing.T) {
			got, err := s.Targets(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)

			require.NoError(t, s.InsertTarget(ctx, registry.Target{Package: "com.a", Process: "com.a"}))
			require.NoError(t, s.InsertTarget(ctx, registry.Target{Package: "com.a", Process: "com.a:push"}))
			require.NoError(t, s.InsertTarget(ctx, registry.Target{Package: "com.ab", Process: "com.ab"}))
			assert.Error(t, s.InsertTarget(ctx, registry.Target{Package: "com.a", Process: "com.a"}))

			got, err = s.Targets(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"com.a|com.a", "com.a|com.a:push", "com.ab|com.ab"}, sorted(got))

			require.NoError(t, s.DeleteTarget(ctx, "com.a", "com.a:push"))
			got, err = s.Targets(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"com.a|com.a", "com.ab|com.ab"}, sorted(got))

			require.NoError(t, s.InsertTarget(ctx, registry.Target{Package: "com.a", Process: "com.a:push"}))
			require.NoError(t, s.DeleteTarget(ctx, "com.a", ""))
			got, err = s.Targets(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"com.ab|com.ab"}, sorted(got))
		})
	}
}

func TestStoreHideConfig(t *testing.T) {
	ctx := context.Background()
	for driver, s := range openAll(t) {
		t.Run(driver, func(t *testing.T) {
			on, err := s.HideConfig(ctx)
			require.NoError(t, err)
			assert.False(t, on)

			require.NoError(t, s.SetHideConfig(ctx, true))
			on, err = s.HideConfig(ctx)
			require.NoError(t, err)
			assert.True(t, on)

			require.NoError(t, s.SetHideConfig(ctx, false))
			on, err = s.HideConfig(ctx)
			require.NoError(t, err)
			assert.False(t, on)
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "magisk.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.InsertTarget(ctx, registry.Target{Package: "com.a", Process: "com.a"}))
	require.NoError(t, s.SetHideConfig(ctx, true))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Targets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []registry.Target{{Package: "com.a", Process: "com.a"}}, got)
	on, err := s.HideConfig(ctx)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("postgres", "")
	assert.EqualError(t, err, `unknown store driver "postgres"`)
}
