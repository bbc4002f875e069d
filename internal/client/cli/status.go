package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/laqtaha/internal/client/session"
)

// navAction is the call to action of the navigation bar: signed-in users
// see their profile, everybody else is invited to book.
func navAction(s session.Snapshot) string {
	if s.Authenticated() {
		return "Profile"
	}
	return "Book now"
}

func (a *App) getStatus() string {
	snap := a.sessions.Snapshot()
	s := ""
	if snap.User != nil && snap.User.Email != "" {
		s = snap.User.Email + " "
	}
	if r := a.currentRoute(); r != "" {
		s = s + string(r)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Status prints the session as the client sees it.
func (a *App) Status(ctx context.Context) error {
	snap := a.sessions.Snapshot()
	fmt.Fprintf(a.out, "State: %s\n", snap.State)
	if u := snap.User; u != nil {
		fmt.Fprintf(a.out, "User: %s <%s>\n", u.Name, u.Email)
		fmt.Fprintf(a.out, "Profile complete: %t\n", u.ProfileComplete)
	}
	if a.store.PendingUserID(ctx) != "" {
		fmt.Fprintln(a.out, "Email verification: pending")
	}
	fmt.Fprintf(a.out, "Page: %s\n", a.currentRoute())
	fmt.Fprintf(a.out, "Navigation: %s\n", navAction(snap))
	return nil
}
