package models

// User is the signed-in customer's profile as reported by the portal.
type User struct {
	ID            string
	Name          string
	Email         string
	AccountNumber string
	PortalType    string
}
