package ports

import "context"

// AuthResult is the tagged outcome of a login-or-register attempt.
// Created distinguishes an implicit signup from an authentication of an
// existing account.
type AuthResult struct {
	Token    string
	UserID   uint64
	Username string
	Created  bool
}

// AuthService implements the implicit signup-or-login flow: an unknown
// username registers a new account, a known username must present the
// matching credential.
type AuthService interface {
	LoginOrRegister(ctx context.Context, username, password string) (*AuthResult, error)
}
