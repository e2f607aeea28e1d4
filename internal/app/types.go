package app

import (
	"errors"
	"fmt"
	"strings"

	hidev1 "prochide/api/hide/v1"
	"prochide/internal/registry"
)

// CodeError is returned when the daemon answers with a non-success status.
type CodeError struct {
	Op   string
	Code int32
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, hidev1.CodeText(e.Code))
}

// checkCode turns a status reply into an error.
func checkCode(op string, reply *hidev1.StatusReply) error {
	if reply == nil {
		return &CodeError{Op: op, Code: hidev1.CodeDaemonError}
	}
	if code := reply.GetValue(); code != hidev1.CodeSuccess {
		return &CodeError{Op: op, Code: code}
	}
	return nil
}

// Target mirrors one hide list entry.
type Target = registry.Target

// TargetParams selects a package and an optional process.
type TargetParams struct {
	Package string
	Process string
}

func (p TargetParams) request() (*hidev1.ItemRequest, error) {
	pkg := strings.TrimSpace(p.Package)
	if pkg == "" {
		return nil, errors.New("package name is required")
	}
	return hidev1.NewItemRequest(pkg, strings.TrimSpace(p.Process)), nil
}
