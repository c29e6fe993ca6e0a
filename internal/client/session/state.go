package session

import "github.com/northlink/selfcare/internal/client/models"

// State is the coordinator's position in the session lifecycle.
type State int

const (
	// StateChecking means a stored session is being validated at startup.
	StateChecking State = iota
	// StateUnauthenticated means no valid session is held.
	StateUnauthenticated
	// StateAuthenticated means a customer is signed in and active.
	StateAuthenticated
	// StateWarning means the idle countdown is showing.
	StateWarning
	// StateLoggingOut means a sign-out is in flight.
	StateLoggingOut
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateWarning:
		return "warning"
	case StateLoggingOut:
		return "logging_out"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session handed to subscribers.
type Snapshot struct {
	State            State
	User             *models.User
	Loading          bool
	WarningActive    bool
	SecondsRemaining int
}

// LoginResult is what the login form renders. Error carries the server's
// message verbatim, or a generic hint when the server was unreachable;
// transport details never leak into it.
type LoginResult struct {
	Success bool
	Error   string
}

// NetworkErrorMessage is shown when the portal cannot be reached at all.
const NetworkErrorMessage = "Unable to reach Northlink. Check your connection and try again."
