package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

const helpText = `Available commands:
  dashboard             points, level progress and recent activity
  scan <image-path>     classify an image and earn points
  history [n]           waste history, newest first
  profile               your profile and statistics
  leaderboard           community standings
  rewards [category]    reward catalog (all, discounts, products, donations, experiences)
  redeem <id>           redeem a reward
  streak <n>            set your streak
  badge <name>          award yourself a badge
  status                classifier status
  login | logout
  exit | quit`

// execIface is the command surface the REPL dispatches to; App implements
// it and tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Scan(ctx context.Context, path string) error
	History(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	Leaderboard(ctx context.Context) error
	Rewards(ctx context.Context, args []string) error
	Redeem(ctx context.Context, args []string) error
	Streak(ctx context.Context, args []string) error
	Badge(ctx context.Context, args []string) error
	ShowStatus(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, exit or quit. Handler errors
// are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("eco %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in; use logout first")
				continue
			}
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "dashboard", "d":
			cmdErr = a.Dashboard(ctx)

		case "scan":
			if !a.isLoggedIn() {
				printlnFn("Please log in to scan waste")
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: scan <image-path>")
				continue
			}
			cmdErr = a.Scan(ctx, strings.Join(args, " "))

		case "history":
			cmdErr = a.History(ctx, args)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "leaderboard":
			cmdErr = a.Leaderboard(ctx)

		case "rewards":
			cmdErr = a.Rewards(ctx, args)

		case "redeem":
			if !a.isLoggedIn() {
				printlnFn("Please log in to redeem rewards")
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: redeem <id>")
				continue
			}
			cmdErr = a.Redeem(ctx, args)

		case "streak":
			cmdErr = a.Streak(ctx, args)

		case "badge":
			cmdErr = a.Badge(ctx, args)

		case "status":
			cmdErr = a.ShowStatus(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
