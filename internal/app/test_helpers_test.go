package app

import (
	"context"
	"errors"
	"io"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	hidev1 "prochide/api/hide/v1"
)

type fakeConn struct {
	invoke func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error
	lines  []string
	err    error
}

func (f *fakeConn) Invoke(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
	if f.invoke != nil {
		return f.invoke(ctx, method, args, reply, opts...)
	}
	return nil
}

func (f *fakeConn) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	if method != hidev1.Hide_ListHideItems_FullMethodName {
		return nil, errors.New("not implemented")
	}
	return &fakeStream{ctx: ctx, lines: f.lines, err: f.err}, nil
}

func (f *fakeConn) Close() error { return nil }

// fakeStream replays lines, then err or io.EOF.
type fakeStream struct {
	ctx   context.Context
	lines []string
	err   error
}

func (s *fakeStream) Header() (metadata.MD, error) { return nil, nil }
func (s *fakeStream) Trailer() metadata.MD         { return nil }
func (s *fakeStream) CloseSend() error             { return nil }
func (s *fakeStream) Context() context.Context     { return s.ctx }
func (s *fakeStream) SendMsg(m any) error          { return nil }

func (s *fakeStream) RecvMsg(m any) error {
	if len(s.lines) == 0 {
		if s.err != nil {
			return s.err
		}
		return io.EOF
	}
	m.(*hidev1.ListItem).Value = s.lines[0]
	s.lines = s.lines[1:]
	return nil
}

func stubDaemon(t *testing.T, running bool, dial func(context.Context) (hidev1.HideClient, io.Closer, error)) {
	t.Helper()
	resetDaemonDeps()
	daemonIsRunning = func() bool { return running }
	if dial == nil {
		dial = func(context.Context) (hidev1.HideClient, io.Closer, error) {
			return nil, nil, errors.New("dial not stubbed")
		}
	}
	dialDaemonClient = dial
	t.Cleanup(resetDaemonDeps)
}

func stubConn(t *testing.T, conn *fakeConn) {
	t.Helper()
	stubDaemon(t, true, func(context.Context) (hidev1.HideClient, io.Closer, error) {
		return hidev1.NewHideClient(conn), conn, nil
	})
}

// replyCode answers every unary call with a StatusReply carrying code.
func replyCode(t *testing.T, wantMethod string, code int32, capture *interface{}) *fakeConn {
	t.Helper()
	return &fakeConn{
		invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
			if method != wantMethod {
				t.Fatalf("unexpected method %s", method)
			}
			if capture != nil {
				*capture = args
			}
			resp, ok := reply.(*hidev1.StatusReply)
			if !ok {
				t.Fatalf("unexpected reply type %T", reply)
			}
			resp.Value = code
			return nil
		},
	}
}
