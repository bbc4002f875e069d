package client

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/dmitrijs2005/laqtaha/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	mockIssuer        = "laqtaha-mock"
	mockTokenValidity = 24 * time.Hour
	otpDigits         = 6
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the user id inside mock tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

type mockAccount struct {
	user *models.User
	hash []byte
}

// MockClient simulates the endpoint: every call succeeds after a delay
// unless the request contradicts an account registered earlier.
type MockClient struct {
	delay      time.Duration
	signingKey []byte

	mu       sync.Mutex
	accounts map[string]*mockAccount // by lower-cased email
	otps     map[string]string       // by user id
}

var (
	_ Client          = (*MockClient)(nil)
	_ ProfileRecorder = (*MockClient)(nil)
)

func NewMockClient(delay time.Duration, signingKey string) *MockClient {
	return &MockClient{
		delay:      delay,
		signingKey: []byte(signingKey),
		accounts:   make(map[string]*mockAccount),
		otps:       make(map[string]string),
	}
}

func (c *MockClient) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(req.Email))
	if key == "" || req.Password == "" {
		return nil, &RemoteError{StatusCode: 400, Message: "email and password are required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.accounts[key]; ok {
		return nil, &RemoteError{StatusCode: 409, Message: "email already registered"}
	}

	u := &models.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
	}
	c.accounts[key] = &mockAccount{user: u, hash: hash}

	token, err := c.GenerateToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u.Clone()}, nil
}

func (c *MockClient) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(req.Email))

	c.mu.Lock()
	acc, ok := c.accounts[key]
	var hash []byte
	var stored *models.User
	if ok {
		hash, stored = acc.hash, acc.user.Clone()
	}
	c.mu.Unlock()

	var u *models.User
	if ok {
		if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil {
			return nil, &RemoteError{StatusCode: 401, Message: "bad credentials"}
		}
		u = stored
	} else {
		u = &models.User{
			ID:              uuid.NewString(),
			Name:            nameFromEmail(req.Email),
			Email:           strings.TrimSpace(req.Email),
			ProfileComplete: true,
		}
	}

	token, err := c.GenerateToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: u}, nil
}

func (c *MockClient) SendVerifyOTP(ctx context.Context, userID string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.account(userID) == nil {
		return &RemoteError{StatusCode: 404, Message: "user not found"}
	}

	code, err := newOTP()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	c.otps[userID] = code
	return nil
}

// CompleteProfile merges answers into the account behind token and marks
// its profile complete.
func (c *MockClient) CompleteProfile(ctx context.Context, token string, answers models.Onboarding) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	userID, err := c.UserIDFromToken(token)
	if err != nil {
		return fmt.Errorf("complete profile: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	acc := c.account(userID)
	if acc == nil {
		// Accounts made up on login have nothing to update.
		return nil
	}
	acc.user.Onboarding = acc.user.Onboarding.Merge(answers)
	acc.user.ProfileComplete = true
	return nil
}

// OTP returns the last verification code sent to userID.
func (c *MockClient) OTP(userID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	code, ok := c.otps[userID]
	return code, ok
}

func (c *MockClient) Close() error { return nil }

// GenerateToken signs an HS256 token for userID.
func (c *MockClient) GenerateToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    mockIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(mockTokenValidity)),
		},
		UserID: userID,
	})

	s, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// UserIDFromToken verifies a token issued by GenerateToken.
func (c *MockClient) UserIDFromToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return c.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(mockIssuer))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

func (c *MockClient) wait(ctx context.Context) error {
	if c.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// account must be called with mu held.
func (c *MockClient) account(userID string) *mockAccount {
	for _, acc := range c.accounts {
		if acc.user.ID == userID {
			return acc
		}
	}
	return nil
}

// nameFromEmail turns "jane.doe@x" into "Jane Doe".
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, p := range parts {
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	if len(parts) == 0 {
		return "Traveler"
	}
	return strings.Join(parts, " ")
}

func newOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
