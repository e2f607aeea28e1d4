package hide

import "errors"

var (
	ErrInvalidPkg     = errors.New("invalid package or process name")
	ErrItemExists     = errors.New("item already in hide list")
	ErrItemNotExists  = errors.New("item not in hide list")
	ErrAlreadyEnabled = errors.New("hide is already enabled")
	ErrUnsupported    = errors.New("android version not supported")
	ErrNoNamespace    = errors.New("mount namespace not accessible")
	// ErrDaemon wraps store failures and unexpected OS errors.
	ErrDaemon = errors.New("daemon error")
)
