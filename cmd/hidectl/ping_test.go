package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"prochide/internal/app"

	"github.com/spf13/cobra"
)

type stubController struct {
	pingFunc    func(ctx context.Context, timeout time.Duration) (string, error)
	addFunc     func(ctx context.Context, params app.AddParams) error
	removeFunc  func(ctx context.Context, params app.RemoveParams) error
	listFunc    func(ctx context.Context, timeout time.Duration) ([]app.Target, error)
	enableFunc  func(ctx context.Context, params app.EnableParams) error
	status      app.DaemonStatus
	hideEnabled bool
}

func (s *stubController) Ping(ctx context.Context, timeout time.Duration) (string, error) {
	if s.pingFunc != nil {
		return s.pingFunc(ctx, timeout)
	}
	return "", errors.New("ping not implemented")
}

func (s *stubController) Add(ctx context.Context, params app.AddParams) error {
	if s.addFunc != nil {
		return s.addFunc(ctx, params)
	}
	panic("Add not implemented")
}

func (s *stubController) Remove(ctx context.Context, params app.RemoveParams) error {
	if s.removeFunc != nil {
		return s.removeFunc(ctx, params)
	}
	panic("Remove not implemented")
}

func (s *stubController) List(ctx context.Context, timeout time.Duration) ([]app.Target, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, timeout)
	}
	panic("List not implemented")
}

func (s *stubController) Enable(ctx context.Context, params app.EnableParams) error {
	if s.enableFunc != nil {
		return s.enableFunc(ctx, params)
	}
	panic("Enable not implemented")
}

func (s *stubController) Disable(ctx context.Context, timeout time.Duration) error {
	return nil
}

func (s *stubController) HideEnabled(ctx context.Context, timeout time.Duration) (bool, error) {
	return s.hideEnabled, nil
}

func (s *stubController) Status() (app.DaemonStatus, error) {
	return s.status, nil
}

func (s *stubController) StopDaemon(force bool) error {
	panic("StopDaemon not implemented")
}

func (s *stubController) StartDaemon() (*app.DaemonHandle, error) {
	panic("StartDaemon not implemented")
}

func withController(t *testing.T, stub controllerAPI) {
	t.Helper()
	origFactory := controllerFactory
	controllerFactory = func() controllerAPI {
		return stub
	}
	t.Cleanup(func() {
		controllerFactory = origFactory
	})
}

func withOutput(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	t.Cleanup(func() { cmd.SetOut(nil) })
	return buf
}

func TestPingSuccess(t *testing.T) {
	withController(t, &stubController{
		pingFunc: func(ctx context.Context, timeout time.Duration) (string, error) {
			if timeout != 2*time.Second {
				t.Fatalf("expected timeout 2s, got %v", timeout)
			}
			return "pong", nil
		},
	})
	buf := withOutput(t, cmdPing)

	oldTimeout := pingTimeoutSeconds
	pingTimeoutSeconds = 2
	t.Cleanup(func() { pingTimeoutSeconds = oldTimeout })

	if err := cmdPing.RunE(cmdPing, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got := buf.String(); got != "pong\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestPingError(t *testing.T) {
	expected := errors.New("daemon down")
	withController(t, &stubController{
		pingFunc: func(ctx context.Context, timeout time.Duration) (string, error) {
			return "", expected
		},
	})
	oldTimeout := pingTimeoutSeconds
	pingTimeoutSeconds = 1
	t.Cleanup(func() { pingTimeoutSeconds = oldTimeout })

	err := cmdPing.RunE(cmdPing, nil)
	if !errors.Is(err, expected) {
		t.Fatalf("expected error %v, got %v", expected, err)
	}
}
