package session

import "errors"

var (
	// ErrNoSession is returned by operations that need a signed-in user.
	ErrNoSession = errors.New("no active session")
	// ErrInvalidAuth is returned by SetAuth when token or user is missing.
	ErrInvalidAuth = errors.New("token and user are both required")
)
