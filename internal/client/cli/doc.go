// Package cli is the interactive EcoRewards terminal client.
//
// NewApp wires configuration, the local database, the session store, the
// ledger and the classifier client; App.Run restores the previous session,
// starts the classifier status watcher and serves the REPL until the user
// exits. Every view reads the same ledger, so figures such as the level or
// the rank are identical wherever they are shown.
//
// Commands
//
//	help                   list commands
//	login | logout         start or end the session
//	dashboard              headline numbers, level progress, recent activity
//	scan <image-path>      classify an image and confirm its waste type
//	history [n]            waste history, newest first
//	profile                badges, accuracy, breakdown and history
//	leaderboard            standings and achievements
//	rewards [category]     reward catalog
//	redeem <id>            spend points on a reward
//	streak <n> | badge <name>
//	status                 classifier status
//	exit | quit
//
// Scanning and redeeming require a logged-in session.
package cli
