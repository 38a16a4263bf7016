package cli

import (
	"context"
	"fmt"

	"github.com/dkrasnov/notable/internal/client/router"
)

func (a *App) viewNoteDetail(ctx context.Context, p router.Params) error {
	return a.showNote(ctx, p["id"], false)
}

func (a *App) viewNoteEdit(ctx context.Context, p router.Params) error {
	return a.showNote(ctx, p["id"], true)
}

// showNote fetches one note into CurrentNote and either renders it or
// hands off to the edit form.
func (a *App) showNote(ctx context.Context, id string, edit bool) error {
	a.notesSt.SetLoading(true)

	note, err := a.notes.Get(ctx, id)
	if err != nil {
		a.log.Warn(ctx, "fetch note failed", "id", id, "error", err)
		a.notesSt.SetError(err.Error())
		a.notesSt.SetLoading(false)
		fmt.Fprintln(a.out, "Error:", err.Error())
		return nil
	}

	a.notesSt.SetCurrentNote(*note)
	if edit {
		return a.editCurrentNote(ctx)
	}
	a.renderCurrentNote()
	return nil
}

func (a *App) renderCurrentNote() {
	a.renderHeader()
	st := a.notesSt.State()
	if st.CurrentNote == nil {
		return
	}
	n := st.CurrentNote
	fmt.Fprintf(a.out, "%s (%s)\n", n.Title, n.BackgroundColor.Label())
	if n.Content != "" {
		fmt.Fprintln(a.out, n.Content)
	}
	fmt.Fprintf(a.out, "created %s, updated %s\n", FormatDate(n.CreatedAt), FormatDate(n.UpdatedAt))
	fmt.Fprintf(a.out, "(edit %s | delete %s | list)\n", n.ID, n.ID)
}

// DeleteNote asks for confirmation first; declining performs no service
// call and leaves the collection unchanged.
func (a *App) DeleteNote(ctx context.Context, id string) error {
	ok, err := confirm(a.reader, "Are you sure you want to delete this note?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	a.notesSt.SetLoading(true)
	defer a.notesSt.SetLoading(false)

	if err := a.notes.Delete(ctx, id); err != nil {
		a.log.Warn(ctx, "delete note failed", "id", id, "error", err)
		a.notesSt.SetError(err.Error())
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	a.notesSt.RemoveNote(id)
	return a.router.Navigate(ctx, "/notes")
}
