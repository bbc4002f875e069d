package session

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/laqtaha/internal/client/models"
	"github.com/dmitrijs2005/laqtaha/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/laqtaha/internal/logging"
)

// Storage keys. They match what the browser front end wrote to local
// storage, so existing records stay readable.
const (
	TokenKey         = "laqtaha_token"
	UserKey          = "laqtaha_user"
	PendingUserIDKey = "pendingUserId"
)

// Store persists a session in a metadata.Repository. None of its methods
// return errors: failures are reported to the logger and otherwise ignored.
type Store struct {
	repo metadata.Repository
	log  logging.Logger
}

func NewStore(repo metadata.Repository, log logging.Logger) *Store {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Store{repo: repo, log: log.With("component", "session-store")}
}

// Load reads both keys in one call, so it never sees half of a Save. A key
// that is absent, unreadable or undecodable comes back as its zero value.
func (s *Store) Load(ctx context.Context) (string, *models.User) {
	all, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warn(ctx, "reading stored session failed", "error", err)
		return "", nil
	}

	token := string(all[TokenKey])
	raw := all[UserKey]
	if len(raw) == 0 {
		return token, nil
	}

	var user *models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Warn(ctx, "stored user is not valid JSON, ignoring it", "error", err)
		return token, nil
	}
	return token, user
}

// Save writes token and user together.
func (s *Store) Save(ctx context.Context, token string, user *models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Warn(ctx, "encoding user failed, session not persisted", "error", err)
		return
	}
	err = s.repo.SetMany(ctx, map[string][]byte{
		TokenKey: []byte(token),
		UserKey:  raw,
	})
	if err != nil {
		s.log.Warn(ctx, "persisting session failed", "error", err)
	}
}

// Clear removes both session keys.
func (s *Store) Clear(ctx context.Context) {
	if err := s.repo.Delete(ctx, TokenKey, UserKey); err != nil {
		s.log.Warn(ctx, "clearing stored session failed", "error", err)
	}
}

// Wipe removes everything the client keeps in the repository, the pending
// user id included.
func (s *Store) Wipe(ctx context.Context) {
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Warn(ctx, "wiping local data failed", "error", err)
	}
}

// SavePendingUserID remembers an account that still has to verify its OTP.
func (s *Store) SavePendingUserID(ctx context.Context, id string) {
	if err := s.repo.Set(ctx, PendingUserIDKey, []byte(id)); err != nil {
		s.log.Warn(ctx, "persisting pending user id failed", "error", err)
	}
}

// PendingUserID returns the stored pending account id or "".
func (s *Store) PendingUserID(ctx context.Context) string {
	raw, err := s.repo.Get(ctx, PendingUserIDKey)
	if err != nil {
		s.log.Warn(ctx, "reading pending user id failed", "error", err)
		return ""
	}
	return string(raw)
}

func (s *Store) ClearPendingUserID(ctx context.Context) {
	if err := s.repo.Delete(ctx, PendingUserIDKey); err != nil {
		s.log.Warn(ctx, "clearing pending user id failed", "error", err)
	}
}
