// Package common contains shared constants and sentinel errors used across
// Selfcare components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// Portal types served by the API. A user account belongs to exactly one
// portal; the value travels inside the access token claims.
const (
	PortalResidential = "residential"
	PortalBusiness    = "business"
	PortalAdmin       = "admin"
)
