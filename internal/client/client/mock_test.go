package client

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/laqtaha/internal/client/models"
)

func TestMockClient_RegisterThenLogin(t *testing.T) {
	c := NewMockClient(0, "k")
	ctx := context.Background()

	reg, err := c.Register(ctx, RegisterRequest{Name: "Omar", Email: "Omar@Example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, reg.Token)
	assert.NotEmpty(t, reg.User.ID)
	assert.False(t, reg.User.ProfileComplete)

	uid, err := c.UserIDFromToken(reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, uid)

	in, err := c.Login(ctx, LoginRequest{Email: "omar@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, in.User.ID)
	assert.Equal(t, "Omar", in.User.Name)
}

func TestMockClient_DuplicateEmail(t *testing.T) {
	c := NewMockClient(0, "k")
	ctx := context.Background()

	_, err := c.Register(ctx, RegisterRequest{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)

	_, err = c.Register(ctx, RegisterRequest{Email: "A@B.co", Password: "other12"})
	re, ok := IsRemote(err)
	require.True(t, ok)
	assert.Equal(t, "email already registered", re.Message)
}

func TestMockClient_WrongPassword(t *testing.T) {
	c := NewMockClient(0, "k")
	ctx := context.Background()

	_, err := c.Register(ctx, RegisterRequest{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)

	_, err = c.Login(ctx, LoginRequest{Email: "a@b.co", Password: "wrong"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "bad credentials", err.Error())
}

func TestMockClient_UnknownAccountLogsIn(t *testing.T) {
	c := NewMockClient(0, "k")

	res, err := c.Login(context.Background(), LoginRequest{Email: "jane.doe@example.com", Password: "whatever"})
	require.NoError(t, err)
	assert.True(t, res.User.ProfileComplete)
	assert.Equal(t, "Jane Doe", res.User.Name)
	assert.Equal(t, "jane.doe@example.com", res.User.Email)
}

func TestMockClient_SendVerifyOTP(t *testing.T) {
	c := NewMockClient(0, "k")
	ctx := context.Background()

	reg, err := c.Register(ctx, RegisterRequest{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, c.SendVerifyOTP(ctx, reg.User.ID))
	code, ok := c.OTP(reg.User.ID)
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)

	err = c.SendVerifyOTP(ctx, "missing")
	_, ok = IsRemote(err)
	assert.True(t, ok)
}

func TestMockClient_DelayHonoursContext(t *testing.T) {
	c := NewMockClient(time.Hour, "k")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Login(ctx, LoginRequest{Email: "a@b.co"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMockClient_TokenFromOtherKeyRejected(t *testing.T) {
	a := NewMockClient(0, "one")
	b := NewMockClient(0, "two")

	tok, err := a.GenerateToken("u1")
	require.NoError(t, err)

	_, err = b.UserIDFromToken(tok)
	require.True(t, errors.Is(err, ErrInvalidToken))
}

func TestNameFromEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"sara@example.com", "Sara"},
		{"jane.doe@example.com", "Jane Doe"},
		{"ali_b-c@x.io", "Ali B C"},
		{"@x.io", "Traveler"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, nameFromEmail(tt.in))
		})
	}
}

func TestMockClient_CompleteProfile(t *testing.T) {
	c := NewMockClient(0, "k")
	ctx := context.Background()

	reg, err := c.Register(ctx, RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, c.CompleteProfile(ctx, reg.Token, models.Onboarding{"country": "EG"}))

	in, err := c.Login(ctx, LoginRequest{Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.True(t, in.User.ProfileComplete)
	assert.Equal(t, "EG", in.User.Onboarding["country"])

	err = c.CompleteProfile(ctx, "garbage", models.Onboarding{"a": 1})
	require.ErrorIs(t, err, ErrInvalidToken)
}
