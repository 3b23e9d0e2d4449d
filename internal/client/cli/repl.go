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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Show(ctx context.Context) error
	Fields(ctx context.Context) error
	Set(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Back(ctx context.Context) error
	Goto(ctx context.Context, args []string) error
	AddDep(ctx context.Context) error
	SetDep(ctx context.Context, args []string) error
	RmDep(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Files(ctx context.Context) error
	RmFile(ctx context.Context, args []string) error
	Submit(ctx context.Context) error
}

// runREPL is the read-eval-print loop of the intake CLI.
//
// Each line's first token is the command, the rest are its arguments. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own errors. This keeps the loop focused on parsing and dispatch.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("intake (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: show, fields, set, next, back, goto, adddep, setdep, rmdep, upload, files, rmfile, submit, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "show":
			_ = a.Show(ctx)

		case "fields":
			_ = a.Fields(ctx)

		case "set":
			_ = a.Set(ctx, args)

		case "next":
			_ = a.Next(ctx)

		case "back":
			_ = a.Back(ctx)

		case "goto":
			_ = a.Goto(ctx, args)

		case "adddep":
			_ = a.AddDep(ctx)

		case "setdep":
			_ = a.SetDep(ctx, args)

		case "rmdep":
			_ = a.RmDep(ctx, args)

		case "upload":
			_ = a.Upload(ctx, args)

		case "files":
			_ = a.Files(ctx)

		case "rmfile":
			_ = a.RmFile(ctx, args)

		case "submit":
			_ = a.Submit(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
