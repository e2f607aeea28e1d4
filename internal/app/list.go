package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	hidev1 "prochide/api/hide/v1"
	"prochide/internal/registry"
)

// List fetches the daemon's hide list.
func (a *App) List(ctx context.Context, timeout time.Duration) ([]Target, error) {
	var targets []Target
	err := a.withClient(ctx, timeout, func(ctx context.Context, client hidev1.HideClient) error {
		stream, err := client.ListHideItems(ctx, &hidev1.Empty{})
		if err != nil {
			return fmt.Errorf("daemon list RPC failed: %w", err)
		}
		for {
			item, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("daemon list stream failed: %w", err)
			}
			t, err := registry.ParseTarget(item.GetValue())
			if err != nil {
				return fmt.Errorf("malformed hide list entry %q: %w", item.GetValue(), err)
			}
			targets = append(targets, t)
		}
	})
	return targets, err
}
