package token

import (
	"sync"

	"courier-app/internal/logx"
)

// Store is the single source of truth for the bearer credential. The
// in-memory value is authoritative for the lifetime of the process;
// the durable backend only matters across restarts, so its I/O
// failures are logged and swallowed.
type Store struct {
	mu      sync.Mutex
	token   string
	backend backend
	logger  logx.Logger
}

// backend persists a single credential across process restarts.
type backend interface {
	Read() (string, error)
	Write(token string) error
	Remove() error
}

// NewStore creates a Store with a durable backend selected at
// construction time: file-backed when the state directory is usable,
// memory-only otherwise. Call sites never probe the platform again.
func NewStore(stateDir string, logger logx.Logger) *Store {
	if logger == nil {
		logger = logx.Nop()
	}
	b, err := newFileBackend(stateDir)
	if err != nil {
		logger.Warn("token store: durable storage unavailable, using memory only",
			logx.String("dir", stateDir),
			logx.Any("err", err),
		)
		return &Store{logger: logger}
	}
	return &Store{backend: b, logger: logger}
}

// NewMemoryStore creates a Store without durable storage.
func NewMemoryStore(logger logx.Logger) *Store {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Store{logger: logger}
}

// Initialize loads the persisted credential into memory. It is a
// no-op when nothing is persisted and must complete before the first
// authenticated request is issued.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.backend == nil {
		return
	}
	tok, err := s.backend.Read()
	if err != nil {
		s.logger.Warn("token store: load failed", logx.Any("err", err))
		return
	}
	s.token = tok
}

// Save stores the token in memory and in durable storage, overwriting
// any prior value.
func (s *Store) Save(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if s.backend == nil {
		return
	}
	if err := s.backend.Write(token); err != nil {
		s.logger.Warn("token store: persist failed", logx.Any("err", err))
	}
}

// Clear removes the token from memory and durable storage. It is
// idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if s.backend == nil {
		return
	}
	if err := s.backend.Remove(); err != nil {
		s.logger.Warn("token store: clear failed", logx.Any("err", err))
	}
}

// Current returns the in-memory token, or the empty string when no
// credential is held. It never performs I/O.
func (s *Store) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}
