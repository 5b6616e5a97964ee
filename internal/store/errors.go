package store

import "fmt"

// ErrEmailAlreadyExists reports a registration attempt against an email that
// already has an account.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("user already exists: %s", e.Email)
}

// ErrInvalidCredentials reports a failed login. The email and password cases
// are deliberately indistinguishable to the caller.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound reports a lookup for an unknown user ID.
type ErrUserNotFound struct {
	ID string
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.ID)
}

// ErrNotAuthenticated reports a persistence call made without a user, such
// as saving an analysis with a nil user ID.
type ErrNotAuthenticated struct{}

func (e *ErrNotAuthenticated) Error() string {
	return "no user logged in"
}
