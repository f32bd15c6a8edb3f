package service

import (
	"errors"
	"fmt"
)

var ErrNilUser = errors.New("user client returned no user")

// ConflictError marks a derived address already owned by another user in the run.
type ConflictError struct {
	Email   string
	OwnerID int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Email already exists for user ID %d", e.OwnerID)
}
