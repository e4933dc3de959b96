// Package session holds the logical working directory shared by successive
// stateless command invocations, and the cd logic that moves it.
package session

import (
	"os"
	"sync"

	"github.com/google/uuid"
)

// Session is the state of one virtual shell session.
// The directory is guarded by mu; the lock is held only for the access itself.
type Session struct {
	id string

	mu  sync.Mutex
	dir string
}

// New creates a session starting in the user's home directory.
// The home directory is not checked for existence.
func New() *Session {
	return NewAt(HomeDir())
}

// NewAt creates a session starting in dir
func NewAt(dir string) *Session {
	return &Session{
		id:  uuid.NewString(),
		dir: dir,
	}
}

// ID returns the session identifier attached to diagnostic records
func (s *Session) ID() string {
	return s.id
}

// Dir returns the current session directory
func (s *Session) Dir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir
}

func (s *Session) setDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = dir
}

// HomeDir returns $HOME, or "/" when it is unset or empty
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	return "/"
}
