// Package services contains application services for the Laqtaha client.
// This file defines the authentication service: it validates the auth
// forms, calls the endpoint and moves the session container accordingly.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dmitrijs2005/laqtaha/internal/client/client"
	"github.com/dmitrijs2005/laqtaha/internal/client/forms"
	"github.com/dmitrijs2005/laqtaha/internal/client/models"
	"github.com/dmitrijs2005/laqtaha/internal/client/navigation"
	"github.com/dmitrijs2005/laqtaha/internal/client/session"
	"github.com/dmitrijs2005/laqtaha/internal/logging"
)

var (
	ErrValidation       = errors.New("form has errors")
	ErrSubmitInProgress = errors.New("submit already in progress")
)

// Messages shown after a submit.
const (
	MsgLoginFailed         = "Login failed. Please try again."
	MsgRegisterFailed      = "Registration failed. Please try again."
	MsgServiceUnavailable  = "Service is unavailable. Please try again later."
	MsgRegistered          = "Account created. Check your email for the verification code."
	MsgRegisteredPleaseLog = "Account created. Please log in."
)

// FormError is a remote failure to be shown on the form. The session is
// left as it was.
type FormError struct {
	Message string
	Err     error
}

func (e *FormError) Error() string { return e.Message }
func (e *FormError) Unwrap() error { return e.Err }

// Result tells the caller where to go and what to say.
type Result struct {
	Route   navigation.Route
	Message string
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login/Register: validate the form, call the endpoint, and on success
//     update the session; the returned route comes from the navigation gate.
//   - Only one Login or Register runs at a time.
//   - Logout/CompleteOnboarding: session transitions that also yield a route.
//   - Forget: Logout that also drops every locally stored key.
//
// All methods honour context cancellation.
type AuthService interface {
	Login(ctx context.Context, form *forms.Form) (*Result, error)
	Register(ctx context.Context, form *forms.Form) (*Result, error)
	Logout(ctx context.Context) *Result
	Forget(ctx context.Context) *Result
	CompleteOnboarding(ctx context.Context, answers models.Onboarding) (*Result, error)
	Close(ctx context.Context) error
}

type authService struct {
	client     client.Client
	sessions   *session.Container
	store      *session.Store
	log        logging.Logger
	submitting atomic.Bool
}

// NewAuthService constructs an AuthService bound to the endpoint client,
// the session container and the store used for the pending user id.
func NewAuthService(c client.Client, sessions *session.Container, store *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &authService{client: c, sessions: sessions, store: store, log: log}
}

func (a *authService) begin(form *forms.Form) error {
	if !a.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	if !form.Validate() {
		a.submitting.Store(false)
		return ErrValidation
	}
	return nil
}

// Login signs in with the form's email and password.
func (a *authService) Login(ctx context.Context, form *forms.Form) (*Result, error) {
	if err := a.begin(form); err != nil {
		return nil, err
	}
	defer a.submitting.Store(false)

	res, err := a.client.Login(ctx, client.LoginRequest{
		Email:    form.Value(forms.FieldEmail),
		Password: form.Value(forms.FieldPassword),
	})
	if err != nil {
		a.log.Warn(ctx, "login failed", "email", form.Value(forms.FieldEmail), "error", err)
		return nil, a.formError(err, MsgLoginFailed)
	}

	snap, err := a.sessions.SetAuth(ctx, session.AuthParams{Token: res.Token, User: res.User})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &Result{Route: navigation.Next(snap)}, nil
}

// Register creates an account. A returned user id triggers the
// verification code and is kept as the pending user. With a token the user
// is signed in straight away (onboarding pending); without one the user is
// sent to the login page.
func (a *authService) Register(ctx context.Context, form *forms.Form) (*Result, error) {
	if err := a.begin(form); err != nil {
		return nil, err
	}
	defer a.submitting.Store(false)

	res, err := a.client.Register(ctx, client.RegisterRequest{
		Name:     form.Value(forms.FieldName),
		Email:    form.Value(forms.FieldEmail),
		Password: form.Value(forms.FieldPassword),
	})
	if err != nil {
		a.log.Warn(ctx, "register failed", "email", form.Value(forms.FieldEmail), "error", err)
		return nil, a.formError(err, MsgRegisterFailed)
	}

	msg := MsgRegisteredPleaseLog
	if res.User != nil && res.User.ID != "" {
		id := res.User.ID
		if err := a.client.SendVerifyOTP(ctx, id); err != nil {
			a.log.Warn(ctx, "verification code not sent", "user_id", id, "error", err)
		} else {
			msg = MsgRegistered
		}
		a.store.SavePendingUserID(ctx, id)
	}

	if res.Token == "" {
		return &Result{Route: navigation.RouteLogin, Message: msg}, nil
	}

	snap, err := a.sessions.SetAuth(ctx, session.AuthParams{Token: res.Token, User: res.User, IsRegister: true})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &Result{Route: navigation.Next(snap), Message: msg}, nil
}

// Logout ends the session.
func (a *authService) Logout(ctx context.Context) *Result {
	snap := a.sessions.Logout(ctx)
	a.store.ClearPendingUserID(ctx)
	return &Result{Route: navigation.Next(snap)}
}

// Forget ends the session and removes everything kept on this device.
func (a *authService) Forget(ctx context.Context) *Result {
	snap := a.sessions.Logout(ctx)
	a.store.Wipe(ctx)
	return &Result{Route: navigation.Next(snap)}
}

// CompleteOnboarding stores the answers and marks the profile complete.
// Endpoints that keep profiles are told as well; a failure there is logged
// and the local session still completes.
func (a *authService) CompleteOnboarding(ctx context.Context, answers models.Onboarding) (*Result, error) {
	snap, err := a.sessions.CompleteOnboarding(ctx, answers)
	if err != nil {
		return &Result{Route: navigation.Next(snap)}, err
	}
	if rec, ok := a.client.(client.ProfileRecorder); ok {
		if err := rec.CompleteProfile(ctx, snap.Token, answers); err != nil {
			a.log.Warn(ctx, "profile not recorded remotely", "email", snap.User.Email, "error", err)
		}
	}
	a.store.ClearPendingUserID(ctx)
	return &Result{Route: navigation.Next(snap)}, nil
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// formError turns an endpoint failure into the message for the form.
// Context errors are returned as they are.
func (a *authService) formError(err error, fallback string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if re, ok := client.IsRemote(err); ok && re.Message != "" {
		return &FormError{Message: re.Message, Err: err}
	}
	if errors.Is(err, client.ErrUnavailable) {
		return &FormError{Message: MsgServiceUnavailable, Err: err}
	}
	return &FormError{Message: fallback, Err: err}
}
