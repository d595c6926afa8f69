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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	EditProfile(ctx context.Context) error
	LinkAccount(ctx context.Context) error
	UnlinkAccount(ctx context.Context) error
	LinkStatus(ctx context.Context) error
	AdSpend(ctx context.Context) error
	AddCreative(ctx context.Context) error
	SetCreativeStatus(ctx context.Context) error
	ListCreatives(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the AdCreativeX CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - whoami         — show the current profile
//	  - profile        — edit profile fields
//	  - link           — connect an ad account
//	  - unlink         — disconnect the ad account
//	  - status         — show ad-account link state
//	  - adspend        — fetch an ad-spend report
//	  - addcreative    — track a new creative
//	  - setstatus      — move a creative to another status
//	  - creatives      — list tracked creatives
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("adcx %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, link, unlink, status, adspend, addcreative, setstatus, creatives, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.EditProfile(ctx)

		case "link":
			_ = a.LinkAccount(ctx)

		case "unlink":
			_ = a.UnlinkAccount(ctx)

		case "status":
			_ = a.LinkStatus(ctx)

		case "adspend":
			_ = a.AdSpend(ctx)

		case "addcreative":
			_ = a.AddCreative(ctx)

		case "setstatus":
			_ = a.SetCreativeStatus(ctx)

		case "creatives":
			_ = a.ListCreatives(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
