package monitor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"prochide/internal/proctable"
	"prochide/internal/proctable/proctabletest"
	"prochide/internal/uidmap"
)

type fakeSource struct {
	mu    sync.Mutex
	uids  uidmap.Map
	table proctable.Table
}

func (f *fakeSource) UIDMap() uidmap.Map {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uids.Clone()
}

func (f *fakeSource) Table() proctable.Table { return f.table }

func (f *fakeSource) set(m uidmap.Map) {
	f.mu.Lock()
	f.uids = m
	f.mu.Unlock()
}

func TestIsolatedUID(t *testing.T) {
	assert.True(t, IsolatedUID(99001))
	assert.True(t, IsolatedUID(1090005))
	assert.False(t, IsolatedUID(10100))
	assert.False(t, IsolatedUID(1010100))
}

func TestScanMatchesByUID(t *testing.T) {
	table := proctabletest.New()
	table.Spawn("com.example.app", 10100)
	table.Spawn("com.example.app", 10200) // same name, other app
	table.Spawn("com.example.app:push", 10100)
	table.Spawn("org.chromium.sandboxed_service_3", 99003)
	table.Spawn("org.chromium.renderer", 99004)

	src := &fakeSource{table: table, uids: uidmap.Map{
		10100:              {"com.example.app"},
		uidmap.IsolatedUID: {"org.chromium.sandboxed_service"},
	}}
	p := NewPoller(src, time.Hour, zaptest.NewLogger(t))

	assert.Equal(t, 2, p.Scan())
	assert.Equal(t, []string{"com.example.app", "org.chromium.sandboxed_service_3"}, table.Terminated())
	assert.Equal(t, 0, p.Scan())
}

func TestScanWithoutTableOrMap(t *testing.T) {
	p := NewPoller(&fakeSource{}, time.Hour, zaptest.NewLogger(t))
	assert.Zero(t, p.Scan())

	table := proctabletest.New()
	table.Spawn("com.example.app", 10100)
	p = NewPoller(&fakeSource{table: table}, time.Hour, zaptest.NewLogger(t))
	assert.Zero(t, p.Scan())
}

func TestStartRefreshStop(t *testing.T) {
	table := proctabletest.New()
	src := &fakeSource{table: table, uids: uidmap.Map{}}
	p := NewPoller(src, time.Hour, zaptest.NewLogger(t))

	require.NoError(t, p.Start())
	require.NoError(t, p.Start())

	table.Spawn("com.example.app", 10100)
	src.set(uidmap.Map{10100: {"com.example.app"}})
	p.Refresh()
	assert.Eventually(t, func() bool {
		return len(table.Terminated()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	p.Stop()
	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop")
	}

	// restart after stop
	require.NoError(t, p.Start())
	p.Stop()
	<-p.Done()
}

func TestStartRejectsZeroInterval(t *testing.T) {
	p := NewPoller(&fakeSource{}, 0, zaptest.NewLogger(t))
	assert.Error(t, p.Start())
}
