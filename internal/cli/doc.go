// Package cli implements the interactive eventhub shell and the helpers
// behind the non-interactive subcommands.
//
// Overview
//
//   - The REPL (runREPL) reads one command per line from a LineReader, which
//     is backed by chzyer/readline on a terminal and by a bufio.Scanner
//     otherwise. Errors from commands are printed and the loop continues.
//   - App owns the session and the two domain stores. Every mutating command
//     asks access.Check before calling a service.
//   - Forms prompt one field per line. Editing shows the current value in
//     brackets; an empty answer keeps it.
//
// Commands
//
//	Anyone:          help, events, show <id>, login, register, exit | quit
//	Signed in:       rsvp <id>, whoami, logout
//	Admin:           event add | edit <id> | delete <id>,
//	                 users [term], user admin | active | delete <id>,
//	                 export <file.ics>
//
// Test seams
//
// printlnFn, getSimpleText, getPassword, readPassword and isTerminal are
// package variables so tests can drive the shell without a terminal.
package cli
