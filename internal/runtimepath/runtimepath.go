// Package runtimepath resolves per-user runtime locations for the IPC
// socket.
package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir returns the directory holding the nudge socket. XDG_RUNTIME_DIR
// is preferred so the socket lives next to the user's other session
// sockets; without it we fall back to /run/user/<uid> and finally to a
// private per-uid directory under /tmp, created on first use.
func Dir() (string, error) {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return runtimeDir, nil
	}

	uid := os.Getuid()
	runUserDir := fmt.Sprintf("/run/user/%d", uid)
	if info, err := os.Stat(runUserDir); err == nil && info.IsDir() {
		return runUserDir, nil
	}

	tmpDir := fmt.Sprintf("/tmp/nudge-runtime-%d", uid)
	if err := os.MkdirAll(tmpDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	return tmpDir, nil
}

// SocketPath returns the daemon IPC socket path.
func SocketPath() (string, error) {
	runtimeDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, "nudge.sock"), nil
}
