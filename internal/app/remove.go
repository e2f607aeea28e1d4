package app

import (
	"context"
	"fmt"
	"time"

	hidev1 "prochide/api/hide/v1"
)

// RemoveParams configures a hide list removal. An empty Process removes every
// target of the package.
type RemoveParams struct {
	TargetParams
	Timeout time.Duration
}

// Remove deletes matching targets from the daemon's hide list.
func (a *App) Remove(ctx context.Context, params RemoveParams) error {
	req, err := params.request()
	if err != nil {
		return err
	}
	return a.withClient(ctx, params.Timeout, func(ctx context.Context, client hidev1.HideClient) error {
		reply, err := client.RemoveHideItem(ctx, req)
		if err != nil {
			return fmt.Errorf("daemon remove RPC failed: %w", err)
		}
		return checkCode("remove", reply)
	})
}
