package app

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/wrapperspb"

	hidev1 "prochide/api/hide/v1"
)

// EnableParams configures hide activation.
type EnableParams struct {
	// Late also rewrites the late property table.
	Late    bool
	Timeout time.Duration
}

// Enable turns hiding on in the daemon.
func (a *App) Enable(ctx context.Context, params EnableParams) error {
	return a.withClient(ctx, params.Timeout, func(ctx context.Context, client hidev1.HideClient) error {
		reply, err := client.EnableHide(ctx, wrapperspb.Bool(params.Late))
		if err != nil {
			return fmt.Errorf("daemon enable RPC failed: %w", err)
		}
		return checkCode("enable", reply)
	})
}

// Disable turns hiding off in the daemon.
func (a *App) Disable(ctx context.Context, timeout time.Duration) error {
	return a.withClient(ctx, timeout, func(ctx context.Context, client hidev1.HideClient) error {
		reply, err := client.DisableHide(ctx, &hidev1.Empty{})
		if err != nil {
			return fmt.Errorf("daemon disable RPC failed: %w", err)
		}
		return checkCode("disable", reply)
	})
}

// HideEnabled reports whether hiding is currently on.
func (a *App) HideEnabled(ctx context.Context, timeout time.Duration) (bool, error) {
	var enabled bool
	err := a.withClient(ctx, timeout, func(ctx context.Context, client hidev1.HideClient) error {
		info, err := client.HideStatus(ctx, &hidev1.Empty{})
		if err != nil {
			return fmt.Errorf("daemon status RPC failed: %w", err)
		}
		enabled = info.GetValue()
		return nil
	})
	return enabled, err
}
