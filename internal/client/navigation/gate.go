// Package navigation decides where the client goes after the session
// changes.
package navigation

import (
	"fmt"

	"github.com/dmitrijs2005/laqtaha/internal/client/session"
)

// Route is a logical destination. How it is rendered is up to the front end.
type Route string

const (
	RouteNone       Route = ""
	RouteHome       Route = "/"
	RouteLogin      Route = "/login"
	RouteRegister   Route = "/register"
	RouteOnboarding Route = "/onboarding"
	RouteChat       Route = "/chat"
)

// Protected reports whether r needs a signed-in user.
func (r Route) Protected() bool {
	switch r {
	case RouteOnboarding, RouteChat:
		return true
	default:
		return false
	}
}

// Next returns the destination for a session that just changed: nothing
// while loading, login for anonymous users, onboarding until the profile is
// complete, chat afterwards.
func Next(s session.Snapshot) Route {
	switch s.State {
	case session.StateLoading:
		return RouteNone
	case session.StateAnonymous:
		return RouteLogin
	case session.StateAuthenticated:
		if s.User == nil || !s.User.ProfileComplete {
			return RouteOnboarding
		}
		return RouteChat
	default:
		panic(fmt.Sprintf("navigation: unhandled session state %v", s.State))
	}
}

// Guard returns the route to show when want is requested with session s.
// Anonymous users asking for a protected route go to login; onboarding is
// skipped once the profile is complete; signed-in users asking for the
// login or register pages are sent to Next. While loading nothing is
// decided and RouteNone is returned.
func Guard(s session.Snapshot, want Route) Route {
	switch s.State {
	case session.StateLoading:
		return RouteNone
	case session.StateAnonymous:
		if want.Protected() {
			return RouteLogin
		}
		return want
	case session.StateAuthenticated:
		switch want {
		case RouteLogin, RouteRegister, RouteChat, RouteOnboarding:
			return Next(s)
		default:
			return want
		}
	default:
		panic(fmt.Sprintf("navigation: unhandled session state %v", s.State))
	}
}

// Gate re-evaluates Next on every session transition and hands the result
// to a callback.
type Gate struct {
	cancel func()
}

// Follow subscribes to c and calls navigate with the route chosen for each
// new snapshot. RouteNone is never delivered.
func Follow(c *session.Container, navigate func(Route, session.Snapshot)) *Gate {
	cancel := c.Subscribe(func(s session.Snapshot) {
		if r := Next(s); r != RouteNone {
			navigate(r, s)
		}
	})
	return &Gate{cancel: cancel}
}

// Stop detaches the gate from its container.
func (g *Gate) Stop() {
	g.cancel()
}
