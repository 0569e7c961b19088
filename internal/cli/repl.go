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
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Courses(ctx context.Context) error
	Course(ctx context.Context) error
	Progress(ctx context.Context) error
	MyProgress(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the training hub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF, on ctx cancellation, or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current account (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account (logs you in)
//	  - login          — authenticate
//	  - courses        — list the course catalog
//	  - course         — show a single course (interactive id prompt)
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - whoami         — show the current account
//	  - progress       — record progress on a course
//	  - myprogress     — list your progress records
//	  - passwd         — change the account password
//	  - logout         — log out
//
// Command handlers report their own errors to the user; the loop ignores
// their return values so a failed command never kills the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("hub> %s > ", statusFn()))
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
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (c)ourses, course, progress, myprogress, whoami, passwd, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (c)ourses, course, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "c", "courses":
			_ = a.Courses(ctx)

		case "course":
			_ = a.Course(ctx)

		case "progress":
			_ = a.Progress(ctx)

		case "myprogress":
			_ = a.MyProgress(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
