// Package models contains the server-side data model shared by
// repositories and services.
package models

// User is a portal account holder. PasswordHash is an argon2id hash of
// the account password with the per-user Salt.
type User struct {
	ID            string
	Name          string
	Email         string
	PortalID      string
	AccountNumber string
	PortalType    string
	PasswordHash  []byte
	Salt          []byte
	MFARequired   bool
}
