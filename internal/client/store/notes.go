package store

import "github.com/dkrasnov/notable/internal/client/models"

// NotesState holds the note collection and the note currently open in a
// detail view. Notes keep insertion order with the newest-created first.
// When CurrentNote shares an id with a collection entry, updates and
// removals keep the two in lockstep.
type NotesState struct {
	Notes       []models.Note
	CurrentNote *models.Note
	IsLoading   bool
	Err         string
}

// NotesStore holds the notes slice.
type NotesStore struct {
	*Store[NotesState]
}

func NewNotesStore() *NotesStore {
	return &NotesStore{New(NotesState{})}
}

// SetNotes replaces the collection with its own copy of list.
func (s *NotesStore) SetNotes(list []models.Note) {
	notes := make([]models.Note, len(list))
	copy(notes, list)
	s.Dispatch(func(st NotesState) NotesState {
		st.Notes = notes
		st.IsLoading = false
		st.Err = ""
		return st
	})
}

// AddNote prepends note, so the newest-created entry is at the front.
func (s *NotesStore) AddNote(note models.Note) {
	s.Dispatch(func(st NotesState) NotesState {
		notes := make([]models.Note, 0, len(st.Notes)+1)
		notes = append(notes, note)
		notes = append(notes, st.Notes...)
		st.Notes = notes
		st.IsLoading = false
		st.Err = ""
		return st
	})
}

// UpdateNote replaces the collection entry with the same id, if any, and
// CurrentNote when its id matches. Absent ids leave the collection as is.
func (s *NotesStore) UpdateNote(note models.Note) {
	s.Dispatch(func(st NotesState) NotesState {
		notes := make([]models.Note, len(st.Notes))
		copy(notes, st.Notes)
		for i := range notes {
			if notes[i].ID == note.ID {
				notes[i] = note
				break
			}
		}
		st.Notes = notes
		if st.CurrentNote != nil && st.CurrentNote.ID == note.ID {
			st.CurrentNote = &note
		}
		st.IsLoading = false
		st.Err = ""
		return st
	})
}

// RemoveNote filters out the entry with the given id and clears
// CurrentNote when it was the removed note.
func (s *NotesStore) RemoveNote(id string) {
	s.Dispatch(func(st NotesState) NotesState {
		notes := make([]models.Note, 0, len(st.Notes))
		for _, n := range st.Notes {
			if n.ID != id {
				notes = append(notes, n)
			}
		}
		st.Notes = notes
		if st.CurrentNote != nil && st.CurrentNote.ID == id {
			st.CurrentNote = nil
		}
		st.IsLoading = false
		st.Err = ""
		return st
	})
}

func (s *NotesStore) SetCurrentNote(note models.Note) {
	s.Dispatch(func(st NotesState) NotesState {
		st.CurrentNote = &note
		st.IsLoading = false
		st.Err = ""
		return st
	})
}

func (s *NotesStore) ClearCurrentNote() {
	s.Dispatch(func(st NotesState) NotesState {
		st.CurrentNote = nil
		return st
	})
}

func (s *NotesStore) SetLoading(loading bool) {
	s.Dispatch(func(st NotesState) NotesState {
		st.IsLoading = loading
		return st
	})
}

func (s *NotesStore) SetError(msg string) {
	s.Dispatch(func(st NotesState) NotesState {
		st.Err = msg
		return st
	})
}

func (s *NotesStore) ClearError() {
	s.SetError("")
}

// Reset drops the collection, the current note, and the error.
func (s *NotesStore) Reset() {
	s.Dispatch(func(st NotesState) NotesState {
		return NotesState{IsLoading: st.IsLoading}
	})
}
