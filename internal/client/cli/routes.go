package cli

import (
	"context"
	"fmt"

	"github.com/dkrasnov/notable/internal/client/router"
)

func (a *App) registerRoutes() {
	guard := &router.Guard{
		Session:  a.session,
		Redirect: a.router.Replace,
		Loading:  func() { fmt.Fprintln(a.out, "Loading...") },
	}

	a.router.Handle("/", a.viewHome)
	a.router.Handle("/login", a.viewLogin)
	a.router.Handle("/signup", a.viewSignup)
	a.router.Handle("/notes", guard.Wrap(a.viewNotes))
	a.router.Handle("/notes/:id", guard.Wrap(a.viewNoteDetail))
	a.router.Handle("/notes/:id/edit", guard.Wrap(a.viewNoteEdit))
	a.router.NotFound(a.viewNotFound)
}

// viewHome is the redirect dispatcher: a loading placeholder while the
// bootstrap check is pending, then a replace-navigation to the notes
// page or the login page.
func (a *App) viewHome(ctx context.Context, _ router.Params) error {
	st := a.session.State()
	switch {
	case st.IsLoading:
		fmt.Fprintln(a.out, "Loading...")
		return nil
	case st.IsAuthenticated:
		return a.router.Replace(ctx, "/notes")
	default:
		return a.router.Replace(ctx, router.LoginPath)
	}
}

func (a *App) viewNotFound(ctx context.Context, _ router.Params) error {
	fmt.Fprintf(a.out, "404: nothing at %s\n", a.router.Current())
	return nil
}

// Navigation commands: each maps a REPL command onto a client-side route
// so the route guard sees every transition.

func (a *App) Open(ctx context.Context, path string) error {
	return a.router.Navigate(ctx, path)
}

func (a *App) Login(ctx context.Context) error {
	return a.router.Navigate(ctx, router.LoginPath)
}

func (a *App) Signup(ctx context.Context) error {
	return a.router.Navigate(ctx, "/signup")
}

func (a *App) List(ctx context.Context) error {
	return a.router.Navigate(ctx, "/notes")
}

func (a *App) Show(ctx context.Context, id string) error {
	return a.router.Navigate(ctx, "/notes/"+id)
}

func (a *App) Edit(ctx context.Context, id string) error {
	return a.router.Navigate(ctx, "/notes/"+id+"/edit")
}
