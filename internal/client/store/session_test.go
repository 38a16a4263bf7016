package store

import (
	"testing"

	"github.com/dkrasnov/notable/internal/client/models"
	"github.com/stretchr/testify/require"
)

func testUser() models.User {
	return models.User{ID: "1", Name: "Test User", Email: "test@example.com"}
}

func TestSessionStore_StartsLoading(t *testing.T) {
	s := NewSessionStore()
	st := s.State()
	require.True(t, st.IsLoading)
	require.Nil(t, st.User)
	require.False(t, st.IsAuthenticated)
	require.Empty(t, st.Err)
}

func TestSessionStore_SetUser(t *testing.T) {
	s := NewSessionStore()
	s.SetError("stale")

	s.SetUser(testUser())

	st := s.State()
	require.NotNil(t, st.User)
	require.Equal(t, "test@example.com", st.User.Email)
	require.True(t, st.IsAuthenticated)
	require.False(t, st.IsLoading)
	require.Empty(t, st.Err)
}

func TestSessionStore_ClearUserKeepsLoading(t *testing.T) {
	s := NewSessionStore()
	s.SetUser(testUser())
	s.SetLoading(true)

	s.ClearUser()

	st := s.State()
	require.Nil(t, st.User)
	require.False(t, st.IsAuthenticated)
	require.True(t, st.IsLoading, "ClearUser must not touch the loading flag")
}

// For any sequence of SetUser/ClearUser calls, the authenticated flag
// mirrors user presence after every transition.
func TestSessionStore_AuthFlagMirrorsUser(t *testing.T) {
	s := NewSessionStore()

	steps := []func(){
		func() { s.SetUser(testUser()) },
		func() { s.ClearUser() },
		func() { s.ClearUser() },
		func() { s.SetUser(testUser()) },
		func() { s.SetUser(models.User{ID: "2", Name: "Other", Email: "o@example.com"}) },
		func() { s.ClearUser() },
	}
	for i, step := range steps {
		step()
		st := s.State()
		require.Equal(t, st.User != nil, st.IsAuthenticated, "step %d", i)
	}
}

func TestSessionStore_ErrorLifecycle(t *testing.T) {
	s := NewSessionStore()
	s.SetError("Signin failed")
	require.Equal(t, "Signin failed", s.State().Err)

	s.ClearError()
	require.Empty(t, s.State().Err)
}

func TestSessionStore_Reset(t *testing.T) {
	s := NewSessionStore()
	s.SetUser(testUser())
	s.SetError("boom")
	s.SetLoading(true)

	s.Reset()

	require.Equal(t, SessionState{}, s.State())
}

// Transitions replace the state value; a snapshot taken before a
// transition is never mutated by it.
func TestSessionStore_SnapshotsAreStable(t *testing.T) {
	s := NewSessionStore()
	s.SetUser(testUser())

	before := s.State()
	s.ClearUser()

	require.NotNil(t, before.User)
	require.True(t, before.IsAuthenticated)
}
