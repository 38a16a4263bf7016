package store

import "github.com/dkrasnov/notable/internal/client/models"

// SessionState is the client's belief about the currently authenticated
// user. IsAuthenticated mirrors User presence: both are set together on
// every settled transition.
type SessionState struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// SessionStore holds the session slice. It starts loading because the
// bootstrap session check is always pending at startup.
type SessionStore struct {
	*Store[SessionState]
}

func NewSessionStore() *SessionStore {
	return &SessionStore{New(SessionState{IsLoading: true})}
}

// SetUser records a successful authentication.
func (s *SessionStore) SetUser(user models.User) {
	s.Dispatch(func(st SessionState) SessionState {
		st.User = &user
		st.IsAuthenticated = true
		st.IsLoading = false
		st.Err = ""
		return st
	})
}

// ClearUser removes the user and the authenticated flag. It deliberately
// leaves IsLoading untouched; callers that need the loading flag cleared
// dispatch SetLoading(false) as a separate step.
func (s *SessionStore) ClearUser() {
	s.Dispatch(func(st SessionState) SessionState {
		st.User = nil
		st.IsAuthenticated = false
		st.Err = ""
		return st
	})
}

func (s *SessionStore) SetLoading(loading bool) {
	s.Dispatch(func(st SessionState) SessionState {
		st.IsLoading = loading
		return st
	})
}

func (s *SessionStore) SetError(msg string) {
	s.Dispatch(func(st SessionState) SessionState {
		st.Err = msg
		return st
	})
}

func (s *SessionStore) ClearError() {
	s.SetError("")
}

// Reset returns the slice to its settled zero state.
func (s *SessionStore) Reset() {
	s.Dispatch(func(SessionState) SessionState {
		return SessionState{}
	})
}
