// Package common contains shared constants and sentinel errors used across
// intake service components.
package common

// AccessTokenHeaderName is the HTTP header that carries the bearer session
// token on authenticated API requests.
const AccessTokenHeaderName = "Authorization"
