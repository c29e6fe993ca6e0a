// Package session coordinates the authentication lifecycle of the terminal
// client: the signed-in/out state machine, silent token refresh, the idle
// warning countdown, and reconciliation when the terminal regains focus.
// All state changes flow through a single Coordinator; views observe it
// through Subscribe and never mutate session state themselves.
package session
