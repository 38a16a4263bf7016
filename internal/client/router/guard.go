package router

import (
	"context"

	"github.com/dkrasnov/notable/internal/client/store"
)

// LoginPath is where the guard sends unauthenticated navigation.
const LoginPath = "/login"

// Guard gates protected routes on the session slice. It holds no state
// of its own: every decision is derived from the store at render time.
//
// While the session check is still loading it renders a placeholder and
// stays on the requested path. Once settled, an unauthenticated session
// is replace-redirected to LoginPath and the guarded view never renders;
// an authenticated one renders the guarded view.
type Guard struct {
	Session  *store.SessionStore
	Redirect func(ctx context.Context, path string) error
	Loading  func()
}

// Wrap returns a handler that applies the guard before h.
func (g *Guard) Wrap(h HandlerFunc) HandlerFunc {
	return func(ctx context.Context, p Params) error {
		st := g.Session.State()
		switch {
		case st.IsLoading:
			if g.Loading != nil {
				g.Loading()
			}
			return nil
		case !st.IsAuthenticated:
			return g.Redirect(ctx, LoginPath)
		default:
			return h(ctx, p)
		}
	}
}
