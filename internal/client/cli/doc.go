// Package cli provides the interactive Laqtaha command-line client.
//
// It wires configuration, session storage, the authentication endpoint, the
// catalog fetcher and an interactive REPL. Typical flow: restore the stored
// session, let the navigation gate pick the starting page, then execute user
// commands.
//
// Key features:
//   - Register / Login / Logout with field-level validation
//   - Onboarding questions for new accounts
//   - Browse destinations, governorates and local guides
//   - Forget: sign out and remove every locally stored key
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
