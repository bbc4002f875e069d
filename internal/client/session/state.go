package session

import (
	"fmt"

	"github.com/dmitrijs2005/laqtaha/internal/client/models"
)

// State is the lifecycle phase of a Container.
type State int

const (
	// StateLoading means the stored session has not been read yet.
	StateLoading State = iota
	// StateAnonymous means there is no token and no user.
	StateAnonymous
	// StateAuthenticated means both a token and a user are present.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Snapshot is an immutable copy of the container state. Token and User are
// set only when State is StateAuthenticated.
type Snapshot struct {
	State State
	Token string
	User  *models.User
}

// Loading reports whether the stored session is still being read.
func (s Snapshot) Loading() bool {
	return s.State == StateLoading
}

// Authenticated reports whether a user is signed in.
func (s Snapshot) Authenticated() bool {
	return s.State == StateAuthenticated
}

// AuthParams is the input of SetAuth.
type AuthParams struct {
	Token string
	User  *models.User
	// IsRegister marks a freshly created account; it forces
	// User.ProfileComplete to false.
	IsRegister bool
}
