package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"prochide/internal/proctable/proctabletest"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		name, target string
		mode         Mode
		want         bool
	}{
		{"com.example.app", "com.example.app", Exact, true},
		{"com.example.app:push", "com.example.app", Exact, false},
		{"sandboxed_service_1", "sandboxed_service", Prefix, true},
		{"other_service", "sandboxed_service", Prefix, false},
		{"usap64", "usap64", Prefix, true},
		{"com.example.app_zygote", "_zygote", SuffixExceptWebviewZygote, true},
		{"webview_zygote", "_zygote", SuffixExceptWebviewZygote, false},
		{"zygote64", "_zygote", SuffixExceptWebviewZygote, false},
		{"anything", "anything", Mode(42), false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, Match(tc.name, tc.target, tc.mode), "Match(%q, %q, %s)", tc.name, tc.target, tc.mode)
	}
}

func TestKillPrefixMulti(t *testing.T) {
	table := proctabletest.New()
	table.Spawn("sandboxed_service_1", 99001)
	table.Spawn("sandboxed_service_2", 99002)
	table.Spawn("other_service", 10001)

	s := New(table, zaptest.NewLogger(t))
	assert.Equal(t, 2, s.Kill("sandboxed_service", true, Prefix))

	assert.Equal(t, []string{"sandboxed_service_1", "sandboxed_service_2"}, table.Terminated())
	assert.Equal(t, []string{"other_service"}, table.Running())
}

func TestKillSingleStopsAfterFirst(t *testing.T) {
	table := proctabletest.New()
	table.Spawn("com.example.app", 10001)
	table.Spawn("com.example.app", 10001)

	s := New(table, zaptest.NewLogger(t))
	assert.Equal(t, 1, s.Kill("com.example.app", false, Exact))
	assert.Equal(t, []string{"com.example.app"}, table.Running())
}

func TestKillNeverTouchesWebviewZygote(t *testing.T) {
	table := proctabletest.New()
	table.Spawn("webview_zygote", 1053)
	table.Spawn("com.example.app_zygote", 10001)
	table.Spawn("zygote64", 0)

	s := New(table, zaptest.NewLogger(t))
	s.Kill("_zygote", true, SuffixExceptWebviewZygote)

	assert.Equal(t, []string{"com.example.app_zygote"}, table.Terminated())
	assert.Equal(t, []string{"webview_zygote", "zygote64"}, table.Running())
}

func TestKillSkipsUnreadableProcesses(t *testing.T) {
	table := proctabletest.New()
	table.SpawnUnreadable()
	table.Spawn("com.example.app", 10001)

	s := New(table, zaptest.NewLogger(t))
	assert.Equal(t, 1, s.Kill("com.example.app", false, Exact))
}
