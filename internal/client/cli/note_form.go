package cli

import (
	"context"
	"fmt"

	"github.com/dkrasnov/notable/internal/client/models"
	"github.com/dkrasnov/notable/internal/client/validation"
)

// editCurrentNote prompts for replacement values for the note held in
// CurrentNote. Empty input keeps the existing value. On success the store
// updates the collection and CurrentNote in lockstep, then navigation
// returns to the detail view.
func (a *App) editCurrentNote(ctx context.Context) error {
	st := a.notesSt.State()
	if st.CurrentNote == nil {
		return nil
	}
	n := *st.CurrentNote

	fmt.Fprintln(a.out, "-- Edit note (empty input keeps the current value) --")

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", n.Title), a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = n.Title
	}

	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		content = n.Content
	}

	colorInput, err := getSimpleText(a.reader, fmt.Sprintf("Color (yellow/blue/grey) [%s]", n.BackgroundColor.Label()), a.out)
	if err != nil {
		return err
	}
	color := n.BackgroundColor
	if colorInput != "" {
		color = parseColor(colorInput)
	}

	form := validation.NoteForm{Title: title, Content: content}
	if errs := validation.ValidateNote(form); len(errs) > 0 {
		a.renderFieldErrors(errs)
		return nil
	}

	a.notesSt.SetLoading(true)
	defer a.notesSt.SetLoading(false)

	req := models.NoteRequest{Title: title, Content: content, BackgroundColor: color}
	updated, err := a.notes.Update(ctx, n.ID, req)
	if err != nil {
		a.log.Warn(ctx, "update note failed", "id", n.ID, "error", err)
		a.notesSt.SetError(err.Error())
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	a.notesSt.UpdateNote(*updated)
	return a.router.Navigate(ctx, "/notes/"+n.ID)
}
