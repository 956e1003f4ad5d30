// Package instance keeps a single launcher window on screen at a time.
package instance

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

const pidFileName = "ecws.pid"

// Lock is a held pid file
type Lock struct {
	path string
	pid  int
}

// DefaultPath returns the pid file path in the runtime directory
func DefaultPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, pidFileName)
}

// Acquire writes our pid to path. A previous launcher still running from the
// same executable is sent SIGTERM first.
func Acquire(path string) (*Lock, error) {
	if pid, err := readPid(path); err == nil && pid != os.Getpid() && sameProgram(pid) {
		if process, err := os.FindProcess(pid); err == nil {
			if err := process.Signal(syscall.Signal(0)); err == nil {
				log.Printf("[INSTANCE] Terminating previous launcher %d", pid)
				process.Signal(syscall.SIGTERM)
			}
		}
	}

	currentPid := os.Getpid()
	if err := os.WriteFile(path, []byte(strconv.Itoa(currentPid)), 0644); err != nil {
		return nil, fmt.Errorf("failed to write pid file: %w", err)
	}
	return &Lock{path: path, pid: currentPid}, nil
}

// Release removes the pid file unless another launcher has taken it over
func (l *Lock) Release() {
	if pid, err := readPid(l.path); err == nil && pid == l.pid {
		os.Remove(l.path)
	}
}

func readPid(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// sameProgram reports whether pid runs the same executable as this process
func sameProgram(pid int) bool {
	self, err := os.Executable()
	if err != nil {
		return false
	}
	other, err := os.Readlink(fmt.Sprintf("/proc/%d/exe", pid))
	if err != nil {
		return false
	}
	return filepath.Clean(other) == filepath.Clean(self)
}
