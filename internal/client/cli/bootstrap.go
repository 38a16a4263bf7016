package cli

import "context"

// Bootstrap reconciles the client session with the server: a single
// GET /api/auth/me round trip per run, no retry. Success settles the
// session with the fetched user. Failure (missing or expired session,
// or no connection) is an expected condition and stays silent: the
// session is cleared, the loading flag is dropped in a separate step
// (ClearUser leaves it untouched), and the route guard turns the settled
// unauthenticated state into a redirect.
func (a *App) Bootstrap(ctx context.Context) {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.log.Debug(ctx, "no active session", "error", err)
		a.session.ClearUser()
		a.session.SetLoading(false)
		return
	}
	a.session.SetUser(*user)
}
