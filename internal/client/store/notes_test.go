package store

import (
	"testing"
	"time"

	"github.com/dkrasnov/notable/internal/client/models"
	"github.com/stretchr/testify/require"
)

func testNote(id, title string) models.Note {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	return models.Note{
		ID:              id,
		Title:           title,
		Content:         "content of " + title,
		BackgroundColor: models.ColorYellow,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestNotesStore_SetNotesCopiesAndSettles(t *testing.T) {
	s := NewNotesStore()
	s.SetLoading(true)
	s.SetError("stale")

	list := []models.Note{testNote("1", "a"), testNote("2", "b")}
	s.SetNotes(list)

	list[0].Title = "mutated"

	st := s.State()
	require.Equal(t, "a", st.Notes[0].Title, "store must own its copy")
	require.False(t, st.IsLoading)
	require.Empty(t, st.Err)
}

func TestNotesStore_AddNotePrepends(t *testing.T) {
	s := NewNotesStore()
	s.SetNotes([]models.Note{testNote("1", "old")})

	s.AddNote(testNote("2", "new"))

	st := s.State()
	require.Len(t, st.Notes, 2)
	require.Equal(t, "2", st.Notes[0].ID)
	require.Equal(t, "1", st.Notes[1].ID)
}

// addNote followed by removeNote restores the prior sequence.
func TestNotesStore_AddRemoveRoundTrip(t *testing.T) {
	s := NewNotesStore()
	prior := []models.Note{testNote("1", "a"), testNote("2", "b")}
	s.SetNotes(prior)

	s.AddNote(testNote("3", "c"))
	s.RemoveNote("3")

	require.Equal(t, prior, s.State().Notes)
}

func TestNotesStore_UpdateNoteReplacesEntryAndCurrent(t *testing.T) {
	s := NewNotesStore()
	s.SetNotes([]models.Note{testNote("1", "a"), testNote("2", "b")})
	s.SetCurrentNote(testNote("2", "b"))

	updated := testNote("2", "b2")
	updated.Content = "edited"
	s.UpdateNote(updated)

	st := s.State()
	require.Equal(t, "b2", st.Notes[1].Title)
	require.NotNil(t, st.CurrentNote)
	require.Equal(t, updated, *st.CurrentNote)
	require.Equal(t, st.Notes[1], *st.CurrentNote, "collection and current note must not diverge")
}

func TestNotesStore_UpdateNoteAbsentIDIsNoop(t *testing.T) {
	s := NewNotesStore()
	prior := []models.Note{testNote("1", "a")}
	s.SetNotes(prior)

	s.UpdateNote(testNote("9", "ghost"))

	require.Equal(t, prior, s.State().Notes)
}

func TestNotesStore_RemoveNoteClearsMatchingCurrent(t *testing.T) {
	s := NewNotesStore()
	s.SetNotes([]models.Note{testNote("1", "a"), testNote("2", "b")})
	s.SetCurrentNote(testNote("1", "a"))

	s.RemoveNote("1")

	st := s.State()
	require.Len(t, st.Notes, 1)
	require.Equal(t, "2", st.Notes[0].ID)
	require.Nil(t, st.CurrentNote)
}

func TestNotesStore_RemoveNoteKeepsOtherCurrent(t *testing.T) {
	s := NewNotesStore()
	s.SetNotes([]models.Note{testNote("1", "a"), testNote("2", "b")})
	s.SetCurrentNote(testNote("2", "b"))

	s.RemoveNote("1")

	st := s.State()
	require.NotNil(t, st.CurrentNote)
	require.Equal(t, "2", st.CurrentNote.ID)
}

func TestNotesStore_ClearCurrentNote(t *testing.T) {
	s := NewNotesStore()
	s.SetCurrentNote(testNote("1", "a"))
	s.ClearCurrentNote()
	require.Nil(t, s.State().CurrentNote)
}

func TestNotesStore_ResetKeepsLoadingFlag(t *testing.T) {
	s := NewNotesStore()
	s.SetNotes([]models.Note{testNote("1", "a")})
	s.SetCurrentNote(testNote("1", "a"))
	s.SetError("boom")
	s.SetLoading(true)

	s.Reset()

	st := s.State()
	require.Empty(t, st.Notes)
	require.Nil(t, st.CurrentNote)
	require.Empty(t, st.Err)
	require.True(t, st.IsLoading)
}
