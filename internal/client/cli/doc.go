// Package cli implements the interactive terminal frontend of the selfcare
// client: a small REPL over the session coordinator plus the account and
// billing views. Every line of input counts as user activity for the idle
// tracker, and resuming the terminal (SIGCONT) triggers a session check.
package cli
