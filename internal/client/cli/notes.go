package cli

import (
	"context"
	"fmt"

	"github.com/dkrasnov/notable/internal/client/models"
	"github.com/dkrasnov/notable/internal/client/router"
	"github.com/dkrasnov/notable/internal/client/validation"
)

// viewNotes fetches the collection and renders it. A fetch failure is
// stored and rendered as an inline error; the loading flag is dropped in
// a final step either way.
func (a *App) viewNotes(ctx context.Context, _ router.Params) error {
	a.notesSt.SetLoading(true)

	list, err := a.notes.List(ctx)
	if err != nil {
		a.log.Warn(ctx, "list notes failed", "error", err)
		a.notesSt.SetError(err.Error())
		a.notesSt.SetLoading(false)
		a.renderNotes()
		return nil
	}

	a.notesSt.SetNotes(list)
	a.renderNotes()
	return nil
}

func (a *App) renderNotes() {
	a.renderHeader()
	st := a.notesSt.State()
	if st.Err != "" {
		fmt.Fprintln(a.out, "Error:", st.Err)
		return
	}
	if len(st.Notes) == 0 {
		fmt.Fprintln(a.out, "No notes yet. Type 'new' to create one.")
		return
	}
	for _, n := range st.Notes {
		fmt.Fprintf(a.out, "[%s] %s (%s)\n", n.ID, n.Title, n.BackgroundColor.Label())
		if n.Content != "" {
			fmt.Fprintf(a.out, "      %s\n", Truncate(n.Content, 100))
		}
		fmt.Fprintf(a.out, "      updated %s\n", FormatDate(n.UpdatedAt))
	}
}

// NewNote prompts for the note fields, validates them, and creates the
// note. The server-assigned result is prepended to the collection, so
// the newest note renders first without a refetch.
func (a *App) NewNote(ctx context.Context) error {
	fmt.Fprintln(a.out, "-- New note --")

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	colorInput, err := getSimpleText(a.reader, "Color (yellow/blue/grey)", a.out)
	if err != nil {
		return err
	}

	form := validation.NoteForm{Title: title, Content: content}
	if errs := validation.ValidateNote(form); len(errs) > 0 {
		a.renderFieldErrors(errs)
		return nil
	}

	a.notesSt.SetLoading(true)
	defer a.notesSt.SetLoading(false)

	req := models.NoteRequest{
		Title:           title,
		Content:         content,
		BackgroundColor: parseColor(colorInput),
	}
	note, err := a.notes.Create(ctx, req)
	if err != nil {
		a.log.Warn(ctx, "create note failed", "error", err)
		a.notesSt.SetError(err.Error())
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	a.notesSt.AddNote(*note)
	a.renderNotes()
	return nil
}

func (a *App) renderHeader() {
	st := a.session.State()
	if st.User == nil {
		return
	}
	fmt.Fprintf(a.out, "== Notes | %s ==\n", st.User.Name)
}
