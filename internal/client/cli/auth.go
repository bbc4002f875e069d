package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/laqtaha/internal/client/forms"
	"github.com/dmitrijs2005/laqtaha/internal/client/navigation"
	"github.com/dmitrijs2005/laqtaha/internal/client/services"
)

// getSimpleText, getPassword, getLines and getMultiline are indirections
// used to facilitate testing. They point to interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getLines      = GetLines
	getMultiline  = GetMultiline
)

// maxFieldAttempts bounds how often an invalid field is asked for again.
const maxFieldAttempts = 3

// Register prompts for name, email, password and its confirmation and
// submits the register form. Field errors are shown as soon as a value is
// entered; the field is asked for again until it is valid.
func (a *App) Register(ctx context.Context) error {
	if snap := a.sessions.Snapshot(); snap.Authenticated() {
		fmt.Fprintln(a.out, "You are already signed in.")
		a.setRoute(navigation.Guard(snap, navigation.RouteRegister))
		return nil
	}
	a.setRoute(navigation.RouteRegister)

	form := forms.NewRegisterForm()
	if err := a.fillForm(form); err != nil {
		return err
	}
	if err := a.submit(ctx, "register", form, a.auth.Register); err != nil {
		return err
	}
	a.showVerificationCode(ctx)
	return nil
}

// showVerificationCode prints the code the simulated endpoint generated
// for the pending account.
func (a *App) showVerificationCode(ctx context.Context) {
	if a.codes == nil {
		return
	}
	id := a.store.PendingUserID(ctx)
	if id == "" {
		return
	}
	if code, ok := a.codes.OTP(id); ok {
		fmt.Fprintf(a.out, "Verification code (simulated): %s\n", code)
	}
}

// Login prompts for email and password and submits the login form.
func (a *App) Login(ctx context.Context) error {
	if snap := a.sessions.Snapshot(); snap.Authenticated() {
		fmt.Fprintln(a.out, "You are already signed in.")
		a.setRoute(navigation.Guard(snap, navigation.RouteLogin))
		return nil
	}
	a.setRoute(navigation.RouteLogin)

	form := forms.NewLoginForm()
	if err := a.fillForm(form); err != nil {
		return err
	}
	return a.submit(ctx, "login", form, a.auth.Login)
}

// Logout ends the session; the gate then moves to the login page.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are not signed in.")
		return nil
	}
	res := a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	a.setRoute(res.Route)
	return nil
}

// Forget signs out and removes everything stored on this device.
func (a *App) Forget(ctx context.Context) error {
	res := a.auth.Forget(ctx)
	fmt.Fprintln(a.out, "Local data removed.")
	a.setRoute(res.Route)
	return nil
}

// fillForm asks for every field of form in order.
func (a *App) fillForm(form *forms.Form) error {
	for _, fd := range form.Fields() {
		for attempt := 1; ; attempt++ {
			v, err := a.readField(fd)
			if err != nil {
				return err
			}
			msg := form.Set(fd.Name, v)
			if msg == "" {
				break
			}
			fmt.Fprintf(a.out, "  %s: %s\n", fd.Label, msg)
			if attempt >= maxFieldAttempts {
				break
			}
		}
	}
	return nil
}

func (a *App) readField(fd forms.Field) (string, error) {
	if !fd.Secret {
		return getSimpleText(a.reader, fd.Label, a.out)
	}
	pw, err := getPassword(fd.Label, a.out)
	if err != nil {
		return "", err
	}
	defer clear(pw)
	return string(pw), nil
}

type submitFunc func(context.Context, *forms.Form) (*services.Result, error)

// submit runs fn with the request timeout and reports the outcome. Errors
// are shown to the user and returned; none of them ends the REPL.
func (a *App) submit(ctx context.Context, name string, form *forms.Form, fn submitFunc) error {
	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout())
	defer cancel()

	fmt.Fprintln(a.out, "Please wait...")
	res, err := fn(ctx, form)
	if err != nil {
		a.reportSubmitError(ctx, name, form, err)
		return err
	}

	if res.Message != "" {
		fmt.Fprintln(a.out, res.Message)
	}
	a.setRoute(res.Route)
	return nil
}

func (a *App) reportSubmitError(ctx context.Context, name string, form *forms.Form, err error) {
	var fe *services.FormError
	switch {
	case errors.Is(err, services.ErrValidation):
		errs := form.Errors()
		for _, fd := range form.Fields() {
			if msg, ok := errs[fd.Name]; ok {
				fmt.Fprintf(a.out, "  %s: %s\n", fd.Label, msg)
			}
		}
	case errors.Is(err, services.ErrSubmitInProgress):
		fmt.Fprintln(a.out, "Please wait, a request is already running.")
	case errors.As(err, &fe):
		fmt.Fprintln(a.out, fe.Message)
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintln(a.out, "The request timed out. Please try again.")
	default:
		a.log.Error(ctx, name+" failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Please try again.")
	}
}
