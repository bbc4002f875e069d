package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Onboard(ctx context.Context) error
	Destinations(ctx context.Context) error
	Destination(ctx context.Context, args []string) error
	Governorates(ctx context.Context) error
	Guides(ctx context.Context, args []string) error
	Refresh(ctx context.Context) error
	Status(ctx context.Context) error
	Forget(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Laqtaha CLI.
//
// It reads a line from reader, writes prompts and replies to out, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                     show available commands
//	  - destinations             list destinations
//	  - destination <slug>       show one destination
//	  - governorates             list governorates
//	  - guides [city] [query]    list local guides
//	  - refresh                  reload the catalog on next use
//	  - status                   show the session
//	  - forget                   sign out and remove local data
//	  - exit | quit              leave the program
//
//	Not logged in:
//	  - register                 create an account
//	  - login                    authenticate
//
//	Logged in:
//	  - onboard                  complete the traveller profile
//	  - logout                   log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "laqtaha %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: onboard, logout, (d)estinations, destination <slug>, governorates, guides [city] [query], refresh, status, forget, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, (d)estinations, destination <slug>, governorates, guides [city] [query], refresh, status, forget, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "onboard":
			_ = a.Onboard(ctx)

		case "d", "destinations":
			_ = a.Destinations(ctx)

		case "destination":
			_ = a.Destination(ctx, args)

		case "governorates":
			_ = a.Governorates(ctx)

		case "guides":
			_ = a.Guides(ctx, args)

		case "refresh":
			_ = a.Refresh(ctx)

		case "status":
			_ = a.Status(ctx)

		case "forget":
			_ = a.Forget(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
