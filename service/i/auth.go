package i

import (
	dmn "github.com/beka-birhanu/driftwalk-api/domain"
)

// Authenticator handles user registration and sign-in.
type Authenticator interface {
	// Register creates a new user from a username and plain password.
	Register(username, password string) error

	// SignIn verifies credentials and returns the user with a fresh token.
	SignIn(username, password string) (*dmn.User, string, error)
}
