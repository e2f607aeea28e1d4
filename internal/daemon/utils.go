package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	hidev1 "prochide/api/hide/v1"
)

// SocketBaseName is the UNIX socket filename
const SocketBaseName = "hided.sock"

const pidFileName = "hided.pid"

// SocketPath returns the daemon socket location. HIDE_SOCKET names the socket
// itself. Otherwise the socket lives in the first set of HIDE_RUNTIME_DIR and,
// on Linux, XDG_RUNTIME_DIR or /run/user/<uid>. Other systems fall back to a
// short /tmp name to stay under the sun_path limit.
func SocketPath() string {
	if explicit := os.Getenv("HIDE_SOCKET"); explicit != "" {
		return explicit
	}
	if dir := runtimeDir(); dir != "" {
		return filepath.Join(dir, SocketBaseName)
	}
	return filepath.Join("/tmp", "hided-"+currentUID()+".sock")
}

func runtimeDir() string {
	if rd := os.Getenv("HIDE_RUNTIME_DIR"); rd != "" {
		return rd
	}
	if runtime.GOOS != "linux" {
		return ""
	}
	if xdg := os.Getenv("XDG_RUNTIME_DIR"); xdg != "" {
		return xdg
	}
	return filepath.Join("/run/user", currentUID())
}

// EnsureRuntimeDir creates the socket's parent directory if needed
func EnsureRuntimeDir() error {
	return os.MkdirAll(filepath.Dir(SocketPath()), 0o700)
}

// PIDPath returns the full path to the PID file
func PIDPath() string {
	return filepath.Join(filepath.Dir(SocketPath()), pidFileName)
}

// WritePID stores the provided pid into the pid file
func WritePID(pid int) error {
	if err := EnsureRuntimeDir(); err != nil {
		return err
	}
	return os.WriteFile(PIDPath(), []byte(fmt.Sprintf("%d\n", pid)), 0o600)
}

// RemovePID removes the pid file if it exists
func RemovePID() error {
	return removeIfExists(PIDPath())
}

// RunningPID returns the pid stored in the pid file if any
func RunningPID() (int, error) {
	data, err := os.ReadFile(PIDPath())
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// IsRunning pings the daemon over gRPC and returns true if it responds.
func IsRunning() bool {
	if _, err := os.Stat(SocketPath()); err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	client, conn, err := Dial(ctx)
	if err != nil {
		return false
	}
	defer conn.Close()

	_, err = client.Ping(ctx, &hidev1.Empty{})
	return err == nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func currentUID() string {
	u, err := user.Current()
	if err == nil && u != nil && u.Uid != "" {
		return u.Uid
	}
	return "0"
}
