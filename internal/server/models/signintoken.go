package models

import "time"

// SignInToken is one single-use sign-in link. Only a bcrypt hash of the
// secret is stored; the plaintext exists solely inside the emailed link.
type SignInToken struct {
	ID         string
	UserID     string
	SecretHash string
	Expires    time.Time
}
