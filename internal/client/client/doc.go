// Package client talks to the portal backend over gRPC. It owns the token
// pair for the current session, transparently refreshes an expired access
// token once per call, and optionally persists the refresh token so a
// remembered session survives restarts.
package client
