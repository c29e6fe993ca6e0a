package models

import "time"

// RefreshToken is a server-stored, rotated credential that lets a client
// mint new access tokens without re-entering a password.
type RefreshToken struct {
	UserID  string
	Token   string
	Expires time.Time
}
