package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dkrasnov/notable/internal/client/api"
	"github.com/dkrasnov/notable/internal/client/config"
	"github.com/dkrasnov/notable/internal/client/router"
	"github.com/dkrasnov/notable/internal/client/services"
	"github.com/dkrasnov/notable/internal/client/store"
	"github.com/dkrasnov/notable/internal/logging"
)

// App owns the client-side state and every collaborator the views need:
// the two stores, the services, and the router. Nothing here is a global;
// consumers receive the App (or a piece of it) explicitly.
type App struct {
	config  *config.Config
	log     logging.Logger
	auth    services.AuthService
	notes   services.NoteService
	session *store.SessionStore
	notesSt *store.NotesStore
	router  *router.Router
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	apiClient, err := api.New(cfg.BaseURL, cfg.HTTPTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("api client: %w", err)
	}

	a := &App{
		config:  cfg,
		log:     log,
		auth:    services.NewAuthService(apiClient),
		notes:   services.NewNoteService(apiClient),
		session: store.NewSessionStore(),
		notesSt: store.NewNotesStore(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.router = router.New(log)
	a.registerRoutes()
	return a, nil
}

// Run starts the client: one bootstrap session check, the redirect
// dispatcher at "/", then the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to notable (type 'help' for commands)")

	a.Bootstrap(ctx)

	if err := a.router.Navigate(ctx, "/"); err != nil {
		return err
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

func (a *App) getStatus() string {
	st := a.session.State()
	s := ""
	if st.User != nil {
		s = st.User.Name + " "
	}
	s = s + a.router.Current()
	return fmt.Sprintf("(%s)", s)
}
