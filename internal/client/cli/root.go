package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Root runs the interactive loop: one line, one command. Command handlers
// print their own errors; the loop itself only dispatches, so a failing
// command never terminates the session.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to photokeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "pk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if exit := a.dispatch(ctx, cmd, args); exit {
			return
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		a.help()

	case "register":
		a.register(ctx)
	case "login":
		a.login(ctx)
	case "logout":
		a.logout(ctx)
	case "whoami":
		a.whoami(ctx)
	case "status":
		a.status(ctx)

	case "l", "list":
		a.list(ctx)
	case "refresh":
		a.refresh(ctx)
	case "show":
		a.show(ctx, args)
	case "delete":
		a.deleteRecord(ctx, args)
	case "search":
		a.search(ctx, args)

	case "upload":
		a.upload(ctx, args)

	case "dups":
		a.listDuplicates(ctx)
	case "resolve":
		a.resolveDuplicates(ctx, args)

	case "albums":
		a.listAlbums(ctx)
	case "album":
		a.album(ctx, args)

	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return true

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return false
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: (l)ist, refresh, upload <files...>, search <query>, show <id>, delete <id>, dups, resolve <group> <keep-id>, albums, album <subcommand>, status, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}

// errorf reports a command failure to the user without aborting the REPL.
func (a *App) errorf(format string, args ...any) {
	fmt.Fprintf(a.out, "Error: "+format+"\n", args...)
}
