package app

import (
	"context"
	"fmt"
	"time"

	hidev1 "prochide/api/hide/v1"
)

// Ping contacts the daemon and returns its health response.
func (a *App) Ping(ctx context.Context, timeout time.Duration) (string, error) {
	var msg string
	err := a.withClient(ctx, timeout, func(ctx context.Context, client hidev1.HideClient) error {
		resp, err := client.Ping(ctx, &hidev1.Empty{})
		if err != nil {
			return fmt.Errorf("daemon ping RPC failed: %w", err)
		}
		msg = resp.GetValue()
		return nil
	})
	return msg, err
}
