package launcher

import (
	"fmt"
	"log"
	"os/exec"
	"syscall"

	"github.com/chess10kp/ecws/internal/config"
)

// SpawnError is returned when an entry's editor could not be started
type SpawnError struct {
	Entry string
	Err   error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Entry, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Spawner starts the editor for an entry
type Spawner interface {
	Spawn(e config.Entry, clean bool) error
}

// BuildArgs returns the command line for an entry: <exe> -data <workspace> [-clean]
func BuildArgs(e config.Entry, clean bool) ([]string, error) {
	if err := e.Valid(); err != nil {
		return nil, err
	}
	args := []string{config.ExpandPath(e.Executable), "-data", config.ExpandPath(e.Workspace)}
	if clean {
		args = append(args, "-clean")
	}
	return args, nil
}

// ProcessSpawner starts editors as detached processes and does not wait for them
type ProcessSpawner struct {
	start func(cmd *exec.Cmd) error
}

func NewProcessSpawner() *ProcessSpawner {
	return &ProcessSpawner{start: startDetached}
}

func (s *ProcessSpawner) Spawn(e config.Entry, clean bool) error {
	args, err := BuildArgs(e, clean)
	if err != nil {
		return &SpawnError{Entry: e.Name, Err: err}
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := s.start(cmd); err != nil {
		return &SpawnError{Entry: e.Name, Err: err}
	}

	log.Printf("[SPAWN] Started %s: %v", e.Name, args)
	return nil
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
