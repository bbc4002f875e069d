package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/laqtaha/internal/client/models"
	"github.com/dmitrijs2005/laqtaha/internal/client/navigation"
	"github.com/dmitrijs2005/laqtaha/internal/client/session"
)

// Onboarding answer keys.
const (
	answerInterests   = "interests"
	answerTravelStyle = "travelStyle"
	answerNotes       = "notes"
)

// Onboard asks the traveller profile questions and completes onboarding.
// It is only reachable while signed in with an incomplete profile.
func (a *App) Onboard(ctx context.Context) error {
	snap := a.sessions.Snapshot()
	if r := navigation.Guard(snap, navigation.RouteOnboarding); r != navigation.RouteOnboarding {
		if r == navigation.RouteLogin {
			fmt.Fprintln(a.out, "Please sign in first.")
		} else {
			fmt.Fprintln(a.out, "Your profile is already complete.")
		}
		a.setRoute(r)
		return nil
	}
	a.setRoute(navigation.RouteOnboarding)

	answers, err := a.askOnboarding()
	if err != nil {
		return err
	}

	res, err := a.auth.CompleteOnboarding(ctx, answers)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			fmt.Fprintln(a.out, "Your session has ended. Please sign in again.")
		}
		a.setRoute(res.Route)
		return err
	}
	fmt.Fprintln(a.out, "Thanks! Your profile is complete.")
	a.setRoute(res.Route)
	return nil
}

// askOnboarding collects the answers; blank answers are left out.
func (a *App) askOnboarding() (models.Onboarding, error) {
	answers := models.Onboarding{}

	lines, err := getLines(a.reader, "Which experiences interest you? (one per line)", a.out)
	if err != nil {
		return nil, err
	}
	var interests []any
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			interests = append(interests, l)
		}
	}
	if len(interests) > 0 {
		answers[answerInterests] = interests
	}

	style, err := getSimpleText(a.reader, "How do you like to travel? (e.g. relaxed, adventurous)", a.out)
	if err != nil {
		return nil, err
	}
	if style != "" {
		answers[answerTravelStyle] = style
	}

	notes, err := getMultiline(a.reader, "Anything else we should know?", a.out)
	if err != nil {
		return nil, err
	}
	if notes != "" {
		answers[answerNotes] = notes
	}
	return answers, nil
}
