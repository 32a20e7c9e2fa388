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
	Navigate(ctx context.Context, view string) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Buy(ctx context.Context) error
	Allocate(ctx context.Context) error
	Ask(ctx context.Context, question string) error
}

// viewCommands are REPL commands that are plain navigations.
var viewCommands = map[string]string{
	"dashboard": "dashboard",
	"projects":  "projects",
	"species":   "species",
	"farms":     "farms",
	"contracts": "contracts",
	"credits":   "credits",
	"payments":  "payments",
	"partners":  "partners",
	"chat":      "chat",
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ct> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if view, ok := viewCommands[cmd]; ok {
			_ = a.Navigate(ctx, view)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Views: dashboard, projects, species, farms, contracts, credits, payments, partners, chat")
				printlnFn("Actions: buy, allocate, ask <question>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "buy":
			_ = a.Buy(ctx)

		case "allocate":
			_ = a.Allocate(ctx)

		case "ask":
			_ = a.Ask(ctx, strings.TrimSpace(strings.TrimPrefix(line, "ask")))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
