// Package router implements client-side navigation: path patterns with
// named parameters, a history stack with push and replace semantics, and
// the session-driven route guard.
package router

import (
	"context"
	"strings"

	"github.com/dkrasnov/notable/internal/logging"
)

// Params carries the values captured by :name segments of a pattern.
type Params map[string]string

// HandlerFunc renders the view for a resolved route.
type HandlerFunc func(ctx context.Context, p Params) error

type route struct {
	segments []string
	handler  HandlerFunc
}

// Router resolves paths against registered patterns and tracks the
// navigation history. It is not safe for concurrent use; navigation is
// serialized by the single event loop driving the client.
type Router struct {
	routes   []route
	notFound HandlerFunc
	history  []string
	log      logging.Logger
}

func New(log logging.Logger) *Router {
	return &Router{log: log}
}

// Handle registers a pattern like "/notes/:id/edit". Patterns are
// matched in registration order; the first match wins.
func (r *Router) Handle(pattern string, h HandlerFunc) {
	r.routes = append(r.routes, route{segments: split(pattern), handler: h})
}

// NotFound registers the catch-all handler for unmatched paths.
func (r *Router) NotFound(h HandlerFunc) {
	r.notFound = h
}

// Navigate pushes path onto the history and renders its view.
func (r *Router) Navigate(ctx context.Context, path string) error {
	r.history = append(r.history, path)
	return r.render(ctx, path)
}

// Replace swaps the current history entry for path and renders its view.
// Guard redirects use it so the rejected location never stays reachable
// via back-navigation.
func (r *Router) Replace(ctx context.Context, path string) error {
	if len(r.history) == 0 {
		r.history = append(r.history, path)
	} else {
		r.history[len(r.history)-1] = path
	}
	return r.render(ctx, path)
}

// Current returns the path at the top of the history, or "/" before any
// navigation happened.
func (r *Router) Current() string {
	if len(r.history) == 0 {
		return "/"
	}
	return r.history[len(r.history)-1]
}

// History returns a copy of the navigation history.
func (r *Router) History() []string {
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}

func (r *Router) render(ctx context.Context, path string) error {
	segments := split(path)
	for _, rt := range r.routes {
		if p, ok := match(rt.segments, segments); ok {
			return rt.handler(ctx, p)
		}
	}
	r.log.Debug(ctx, "no route", "path", path)
	if r.notFound != nil {
		return r.notFound(ctx, Params{})
	}
	return nil
}

func split(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func match(pattern, segments []string) (Params, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	p := Params{}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			p[seg[1:]] = segments[i]
			continue
		}
		if seg != segments[i] {
			return nil, false
		}
	}
	return p, true
}
