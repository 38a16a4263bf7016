package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Open(ctx context.Context, path string) error
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	NewNote(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	DeleteNote(ctx context.Context, id string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the notable CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on reader EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             show available commands
//	  - login            open the sign-in form
//	  - signup           open the sign-up form
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - help             show available commands
//	  - list             open the notes page
//	  - show <id>        open one note
//	  - new              create a note
//	  - edit <id>        edit a note
//	  - delete <id>      delete a note (asks for confirmation)
//	  - logout           sign out
//	  - exit | quit      leave the program
//
//	Always:
//	  - open <path>      navigate to a client-side route directly
//	  - home             navigate to the redirect dispatcher
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("notable %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, show <id>, new, edit <id>, delete <id>, open <path>, home, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, open <path>, home, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "l", "list", "notes":
			_ = a.List(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "new":
			_ = a.NewNote(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.DeleteNote(ctx, args[0])

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "home":
			_ = a.Open(ctx, "/")

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
