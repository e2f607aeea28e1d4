// Package hidev1 defines the wire contract of the hide.v1.Hide gRPC service.
package hidev1

import (
	"strings"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Status codes carried by StatusReply.Code.
const (
	CodeDaemonError        int32 = -1
	CodeSuccess            int32 = 0
	CodeAlreadyEnabled     int32 = 1
	CodeItemExists         int32 = 2
	CodeItemNotExists      int32 = 3
	CodeNoNamespaceSupport int32 = 4
	CodeInvalidPkg         int32 = 5
	CodeUnsupported        int32 = 6
)

// CodeText returns a human readable description of a status code.
func CodeText(code int32) string {
	switch code {
	case CodeSuccess:
		return "success"
	case CodeDaemonError:
		return "daemon error"
	case CodeAlreadyEnabled:
		return "hide is already enabled"
	case CodeItemExists:
		return "target already exists in hide list"
	case CodeItemNotExists:
		return "target does not exist in hide list"
	case CodeNoNamespaceSupport:
		return "mount namespace is not supported"
	case CodeInvalidPkg:
		return "invalid package or process name"
	case CodeUnsupported:
		return "android version is not supported"
	default:
		return "unknown status"
	}
}

// Messages are protobuf well-known types. Items travel as a single
// "package|process" string in both directions.
type (
	Empty         = emptypb.Empty
	ItemRequest   = wrapperspb.StringValue
	ListItem      = wrapperspb.StringValue
	StatusReply   = wrapperspb.Int32Value
	EnableRequest = wrapperspb.BoolValue
	PingReply     = wrapperspb.StringValue
	StatusInfo    = wrapperspb.BoolValue
)

// NewItemRequest names (pkg, proc). An empty proc means the package's main
// process on add and every process of the package on remove.
func NewItemRequest(pkg, proc string) *ItemRequest {
	return wrapperspb.String(pkg + "|" + proc)
}

// SplitItem is the inverse of NewItemRequest. A value without a separator
// names a package only.
func SplitItem(req *ItemRequest) (pkg, proc string) {
	pkg, proc, _ = strings.Cut(req.GetValue(), "|")
	return pkg, proc
}

// NewStatusReply wraps a status code.
func NewStatusReply(code int32) *StatusReply {
	return wrapperspb.Int32(code)
}
