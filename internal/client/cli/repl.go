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
	recordActivity()
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Account(ctx context.Context) error
	Bills(ctx context.Context) error
	Download(ctx context.Context, invoiceID string) error
	Extend(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the selfcare client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Every non-empty line counts as
// user activity for the idle tracker. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Prompt & Commands
//
//	Signed out:
//	  - help           - show available commands
//	  - login          - sign in
//	  - exit | quit    - leave the program
//
//	Signed in:
//	  - help           - show available commands
//	  - account        - show the signed-in profile
//	  - bills          - list invoices
//	  - download <id>  - save an invoice PDF
//	  - extend         - dismiss the idle warning
//	  - logout         - sign out
//	  - exit | quit    - leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nl> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		a.recordActivity()

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: account, bills, download <id>, extend, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "account":
			_ = a.Account(ctx)

		case "bills":
			_ = a.Bills(ctx)

		case "download":
			if len(args) == 0 {
				printlnFn("Usage: download <invoice id>")
				continue
			}
			_ = a.Download(ctx, args[0])

		case "extend":
			_ = a.Extend(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
