package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami() error
	Fetch(ctx context.Context) error
	List() error
	Categories() error
	Filter(args []string) error
	Dates(args []string) error
	Clear() error
	Goto(args []string) error
}

// runREPL reads commands line by line and dispatches them. It exits on
// EOF or "exit"/"quit". Handler errors are ignored here; handlers print
// their own messages.
//
// The reader must be the same one the command handlers prompt on, so no
// input is buffered away from them between commands.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("portal %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		eof := err != nil

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if eof {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: logout, whoami, fetch, (l)ist, categories, filter <category>, dates <start> [end], clear, goto <path>, exit")
			} else {
				printlnFn("Available commands: login, goto <path>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami()

		case "fetch":
			_ = a.Fetch(ctx)

		case "l", "list":
			_ = a.List()

		case "categories":
			_ = a.Categories()

		case "filter":
			_ = a.Filter(args)

		case "dates":
			_ = a.Dates(args)

		case "clear":
			_ = a.Clear()

		case "goto":
			_ = a.Goto(args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if eof {
			return
		}
	}
}
