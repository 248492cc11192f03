package domain

import "time"

// User models a registered account. Accounts are created implicitly on the
// first login attempt with an unknown username; the credential hash is the
// only mutable field and is never updated after creation.
type User struct {
	ID             uint64    `json:"id"`
	Username       string    `json:"username"`
	CredentialHash string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
