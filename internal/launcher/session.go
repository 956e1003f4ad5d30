package launcher

import (
	"errors"
	"log"

	"github.com/chess10kp/ecws/internal/config"
)

var ErrSessionClosed = errors.New("launcher session is closed")

// State of a launcher session
type State int

const (
	StateIdle State = iota
	StateSpawning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpawning:
		return "spawning"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Session tracks one showing of the launcher window. It is driven from the UI
// thread only.
type Session struct {
	spawner Spawner
	clean   bool
	state   State
	onClose func()
}

// NewSession creates an idle session. onClose runs once when the session closes.
func NewSession(spawner Spawner, cleanDefault bool, onClose func()) *Session {
	return &Session{
		spawner: spawner,
		clean:   cleanDefault,
		state:   StateIdle,
		onClose: onClose,
	}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Clean() bool {
	return s.clean
}

func (s *Session) SetClean(clean bool) {
	s.clean = clean
}

// Activate spawns the entry's editor and closes the session. The session is
// closed whether or not the spawn succeeded; the spawn error is logged and
// returned.
func (s *Session) Activate(e config.Entry) error {
	if s.state != StateIdle {
		return ErrSessionClosed
	}
	s.state = StateSpawning

	err := s.spawner.Spawn(e, s.clean)
	if err != nil {
		log.Printf("[SPAWN] %v", err)
	}

	s.close()
	return err
}

// Cancel closes the session without spawning
func (s *Session) Cancel() {
	if s.state != StateIdle {
		return
	}
	s.close()
}

func (s *Session) close() {
	s.state = StateClosed
	if s.onClose != nil {
		s.onClose()
	}
}
