package app

import (
	"context"
	"fmt"
	"time"

	hidev1 "prochide/api/hide/v1"
)

// AddParams configures a hide list insertion. An empty Process hides the
// package's main process.
type AddParams struct {
	TargetParams
	Timeout time.Duration
}

// Add inserts a target into the daemon's hide list.
func (a *App) Add(ctx context.Context, params AddParams) error {
	req, err := params.request()
	if err != nil {
		return err
	}
	return a.withClient(ctx, params.Timeout, func(ctx context.Context, client hidev1.HideClient) error {
		reply, err := client.AddHideItem(ctx, req)
		if err != nil {
			return fmt.Errorf("daemon add RPC failed: %w", err)
		}
		return checkCode("add", reply)
	})
}
