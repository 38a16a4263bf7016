package router

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dkrasnov/notable/internal/logging"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRouter_MatchesStaticRoute(t *testing.T) {
	r := New(testLogger())

	var hit bool
	r.Handle("/login", func(ctx context.Context, p Params) error {
		hit = true
		return nil
	})

	require.NoError(t, r.Navigate(context.Background(), "/login"))
	require.True(t, hit)
}

func TestRouter_CapturesParams(t *testing.T) {
	r := New(testLogger())

	var got Params
	r.Handle("/notes/:id/edit", func(ctx context.Context, p Params) error {
		got = p
		return nil
	})

	require.NoError(t, r.Navigate(context.Background(), "/notes/42/edit"))
	require.Equal(t, Params{"id": "42"}, got)
}

func TestRouter_FirstMatchWins(t *testing.T) {
	r := New(testLogger())

	var which string
	r.Handle("/notes", func(ctx context.Context, p Params) error {
		which = "static"
		return nil
	})
	r.Handle("/:anything", func(ctx context.Context, p Params) error {
		which = "param"
		return nil
	})

	require.NoError(t, r.Navigate(context.Background(), "/notes"))
	require.Equal(t, "static", which)
}

func TestRouter_RootRoute(t *testing.T) {
	r := New(testLogger())

	var hit bool
	r.Handle("/", func(ctx context.Context, p Params) error {
		hit = true
		return nil
	})

	require.NoError(t, r.Navigate(context.Background(), "/"))
	require.True(t, hit)
}

func TestRouter_NotFoundCatchesUnmatched(t *testing.T) {
	r := New(testLogger())
	r.Handle("/login", func(ctx context.Context, p Params) error { return nil })

	var notFound bool
	r.NotFound(func(ctx context.Context, p Params) error {
		notFound = true
		return nil
	})

	require.NoError(t, r.Navigate(context.Background(), "/nope/nope"))
	require.True(t, notFound)
}

func TestRouter_NavigatePushesHistory(t *testing.T) {
	r := New(testLogger())
	r.NotFound(func(ctx context.Context, p Params) error { return nil })

	ctx := context.Background()
	require.NoError(t, r.Navigate(ctx, "/a"))
	require.NoError(t, r.Navigate(ctx, "/b"))

	require.Equal(t, []string{"/a", "/b"}, r.History())
	require.Equal(t, "/b", r.Current())
}

// Replace swaps the current entry instead of pushing, so the replaced
// location is no longer in the history.
func TestRouter_ReplaceSwapsCurrentEntry(t *testing.T) {
	r := New(testLogger())
	r.NotFound(func(ctx context.Context, p Params) error { return nil })

	ctx := context.Background()
	require.NoError(t, r.Navigate(ctx, "/a"))
	require.NoError(t, r.Navigate(ctx, "/notes"))
	require.NoError(t, r.Replace(ctx, "/login"))

	require.Equal(t, []string{"/a", "/login"}, r.History())
	require.Equal(t, "/login", r.Current())
}

func TestRouter_ReplaceOnEmptyHistory(t *testing.T) {
	r := New(testLogger())
	r.NotFound(func(ctx context.Context, p Params) error { return nil })

	require.NoError(t, r.Replace(context.Background(), "/login"))
	require.Equal(t, []string{"/login"}, r.History())
}

func TestRouter_CurrentBeforeNavigation(t *testing.T) {
	r := New(testLogger())
	require.Equal(t, "/", r.Current())
}
