// Package cli provides the interactive notable command-line client.
//
// It wires configuration, the API services, the session and notes stores,
// and the client-side router into an interactive REPL. Typical flow: run
// the bootstrap session check, land on the redirect dispatcher, and
// execute user commands, each of which navigates to a client-side route
// or invokes a controller action.
//
// Key features:
//   - Sign in / Sign up / Logout against the notes backend
//   - List / Show / Create / Edit / Delete notes
//   - Route guard: protected routes redirect to /login when the session
//     is settled and unauthenticated
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Bootstrap, and runREPL for details.
package cli
