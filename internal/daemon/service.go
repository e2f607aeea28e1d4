package daemon

import (
	"context"
	"errors"

	hidev1 "prochide/api/hide/v1"
	"prochide/internal/hide"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// service implements the hide.v1.Hide gRPC service backed by the manager.
type service struct {
	hidev1.UnimplementedHideServer

	mgr *hide.Manager
	log *zap.Logger
}

func newService(mgr *hide.Manager, log *zap.Logger) *service {
	return &service{mgr: mgr, log: log.Named("rpc")}
}

// codeFor maps manager errors onto wire status codes.
func codeFor(err error) int32 {
	switch {
	case err == nil:
		return hidev1.CodeSuccess
	case errors.Is(err, hide.ErrInvalidPkg):
		return hidev1.CodeInvalidPkg
	case errors.Is(err, hide.ErrItemExists):
		return hidev1.CodeItemExists
	case errors.Is(err, hide.ErrItemNotExists):
		return hidev1.CodeItemNotExists
	case errors.Is(err, hide.ErrAlreadyEnabled):
		return hidev1.CodeAlreadyEnabled
	case errors.Is(err, hide.ErrUnsupported):
		return hidev1.CodeUnsupported
	case errors.Is(err, hide.ErrNoNamespace):
		return hidev1.CodeNoNamespaceSupport
	default:
		return hidev1.CodeDaemonError
	}
}

func (s *service) reply(method string, err error) *hidev1.StatusReply {
	code := codeFor(err)
	if code == hidev1.CodeDaemonError {
		s.log.Error(method, zap.Error(err))
	} else if err != nil {
		s.log.Debug(method, zap.Error(err))
	}
	return hidev1.NewStatusReply(code)
}

func (s *service) Ping(context.Context, *hidev1.Empty) (*hidev1.PingReply, error) {
	return wrapperspb.String("pong"), nil
}

func (s *service) AddHideItem(ctx context.Context, req *hidev1.ItemRequest) (*hidev1.StatusReply, error) {
	pkg, proc := hidev1.SplitItem(req)
	return s.reply("add", s.mgr.Add(ctx, pkg, proc)), nil
}

func (s *service) RemoveHideItem(ctx context.Context, req *hidev1.ItemRequest) (*hidev1.StatusReply, error) {
	pkg, proc := hidev1.SplitItem(req)
	return s.reply("remove", s.mgr.Remove(ctx, pkg, proc)), nil
}

func (s *service) ListHideItems(_ *hidev1.Empty, stream grpc.ServerStreamingServer[hidev1.ListItem]) error {
	for t := range s.mgr.List() {
		if err := stream.Send(wrapperspb.String(t.String())); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) EnableHide(ctx context.Context, req *hidev1.EnableRequest) (*hidev1.StatusReply, error) {
	return s.reply("enable", s.mgr.Enable(ctx, req.GetValue())), nil
}

func (s *service) DisableHide(ctx context.Context, _ *hidev1.Empty) (*hidev1.StatusReply, error) {
	s.mgr.Disable(ctx)
	return hidev1.NewStatusReply(hidev1.CodeSuccess), nil
}

func (s *service) HideStatus(context.Context, *hidev1.Empty) (*hidev1.StatusInfo, error) {
	return wrapperspb.Bool(s.mgr.Enabled()), nil
}
