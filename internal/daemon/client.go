package daemon

import (
	"context"
	"errors"
	"net"

	hidev1 "prochide/api/hide/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial opens a gRPC connection to the daemon at SocketPath and waits until it
// is ready or ctx expires.
func Dial(ctx context.Context) (hidev1.HideClient, *grpc.ClientConn, error) {
	return DialSocket(ctx, SocketPath())
}

// DialSocket is Dial for an explicit socket path. The target name is fixed;
// the dialer always connects to path.
func DialSocket(ctx context.Context, path string) (hidev1.HideClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(
		"passthrough:///hided",
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", path)
		}),
	)
	if err != nil {
		return nil, nil, err
	}
	if err := awaitReady(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return hidev1.NewHideClient(conn), conn, nil
}

var errConnShutdown = errors.New("grpc connection is shut down")

func awaitReady(ctx context.Context, conn *grpc.ClientConn) error {
	conn.Connect()
	state := conn.GetState()
	for state != connectivity.Ready {
		if state == connectivity.Shutdown {
			return errConnShutdown
		}
		if !conn.WaitForStateChange(ctx, state) {
			return ctx.Err()
		}
		state = conn.GetState()
	}
	return nil
}
