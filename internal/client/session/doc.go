// Package session owns the client's authentication state.
//
// A Container is the single writer of the current Session (token plus user
// profile). It starts in StateLoading, restores itself from a Store exactly
// once in Initialize, and then moves between StateAnonymous and
// StateAuthenticated through SetAuth and Logout. CompleteOnboarding flips the
// user's profileComplete flag.
//
// The Store persists the session under two keys, laqtaha_token and
// laqtaha_user, in a metadata.Repository. Persistence is best effort: the
// in-memory state stays authoritative and storage failures are only logged.
//
// The container is built at the application root and handed to whoever
// needs it; there is no package-level instance.
package session
