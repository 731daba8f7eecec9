package session

import (
	"context"
	"sync"

	"courier-app/internal/apperr"
	"courier-app/internal/domain"
	"courier-app/internal/logx"
)

// Store owns the session entity: current user, profile and the
// derived authenticated flag. All mutation goes through the
// operations below; reads return snapshots.
type Store struct {
	mu sync.Mutex

	auth    authService
	profile profileService
	tokens  tokenStore
	logger  logx.Logger

	user        *domain.Courier
	profileData *domain.Profile
	loading     bool
	lastErr     string
}

// NewStore creates a session Store.
func NewStore(auth authService, profile profileService, tokens tokenStore, logger logx.Logger) *Store {
	if auth == nil || profile == nil || tokens == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Store{auth: auth, profile: profile, tokens: tokens, logger: logger}
}

// Initialize replays the persisted credential on startup. A stored
// token triggers a profile fetch; a failed fetch (expired token)
// silently leaves the session unauthenticated. This startup path
// never surfaces an error to the user.
func (s *Store) Initialize(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	s.tokens.Initialize()
	if s.tokens.Current() == "" {
		return
	}

	res, err := s.profile.Get(ctx)
	if err != nil || !res.Success {
		s.logger.Debug("session: token replay failed, starting logged out")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := res.Data
	s.user = &p.Courier
	s.profileData = &p
}

// Login authenticates and, on success, establishes the session.
// Returns true on success; on failure the error message is kept in
// the session's error slot.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	s.beginAttempt()
	defer s.setLoading(false)

	res, err := s.auth.Login(ctx, domain.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.setError(err.Error())
		return false
	}
	if !res.Success || res.Data.ID == "" {
		s.setError(orMessage(res.Message, "Login failed"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := res.Data
	s.user = &u
	return true
}

// Register creates an account and, on success, establishes the session.
func (s *Store) Register(ctx context.Context, req domain.RegisterRequest) bool {
	s.beginAttempt()
	defer s.setLoading(false)

	res, err := s.auth.Register(ctx, req)
	if err != nil {
		s.setError(err.Error())
		return false
	}
	if !res.Success || res.Data.ID == "" {
		s.setError(orMessage(res.Message, "Registration failed"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := res.Data
	s.user = &u
	return true
}

// Logout tears the session down. Local state is cleared
// unconditionally: a failed server-side logout is logged, never
// allowed to leave the user stuck authenticated.
func (s *Store) Logout(ctx context.Context) {
	res, err := s.auth.Logout(ctx)
	if err != nil {
		s.logger.Warn("session: server logout error", logx.Any("err", err))
	} else if !res.Success {
		s.logger.Warn("session: server logout failed", logx.String("message", res.Message))
	}

	s.mu.Lock()
	s.user = nil
	s.profileData = nil
	s.mu.Unlock()
	s.tokens.Clear()
}

// FetchProfile refreshes the user and profile from the server.
// Without a stored credential the call is rejected locally, no
// request is made.
func (s *Store) FetchProfile(ctx context.Context) bool {
	if s.tokens.Current() == "" {
		s.setError(apperr.Unauthorized.Error())
		return false
	}

	res, err := s.profile.Get(ctx)
	if err != nil {
		s.setError(err.Error())
		return false
	}
	if !res.Success {
		s.setError(orMessage(res.Message, "Failed to fetch profile"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := res.Data
	s.user = &p.Courier
	s.profileData = &p
	return true
}

// UpdateAvailability sets the courier's availability. On success the
// stored user is replaced wholesale with the server's copy.
func (s *Store) UpdateAvailability(ctx context.Context, availability domain.Availability) bool {
	s.beginAttempt()
	defer s.setLoading(false)

	res, err := s.profile.UpdateAvailability(ctx, availability)
	if err != nil {
		s.setError(err.Error())
		return false
	}
	if !res.Success || res.Data.ID == "" {
		s.setError(orMessage(res.Message, "Failed to update availability"))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := res.Data
	s.user = &u
	return true
}

// UpdateLocation reports the device position through the profile
// service. Failures do not disturb the session error slot.
func (s *Store) UpdateLocation(ctx context.Context, latitude, longitude float64) bool {
	res, err := s.profile.UpdateLocation(ctx, domain.Location{Latitude: latitude, Longitude: longitude})
	if err != nil {
		s.logger.Warn("session: location update error", logx.Any("err", err))
		return false
	}
	if !res.Success {
		s.logger.Warn("session: location update rejected", logx.String("message", res.Message))
	}
	return res.Success
}

// IsAuthenticated derives the session flag: a user and a credential
// must both be present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	user := s.user
	s.mu.Unlock()
	return user != nil && s.tokens.Current() != ""
}

// User returns a copy of the current user, or nil when logged out.
func (s *Store) User() *domain.Courier {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Profile returns a copy of the current profile, or nil.
func (s *Store) Profile() *domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profileData == nil {
		return nil
	}
	p := *s.profileData
	return &p
}

// LastError returns the error message of the most recent failed
// attempt, empty after a successful or fresh attempt.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError resets the error slot.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// IsLoading reports whether an attempt is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// beginAttempt sets the loading flag and clears the previous error.
func (s *Store) beginAttempt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.lastErr = ""
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = msg
}

func orMessage(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
