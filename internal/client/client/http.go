package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/laqtaha/internal/client/models"
)

const (
	registerPath  = "/api/auth/register"
	loginPath     = "/api/auth/login"
	verifyOTPPath = "/api/auth/send-verify-otp"

	// maxBodySize bounds how much of an answer is read.
	maxBodySize = 1 << 20
)

// authResponse is the JSON answer of every auth call.
type authResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// HTTPClient is the Client for the JSON API at baseURL.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for baseURL. timeout bounds every request
// in addition to the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	resp, err := c.post(ctx, registerPath, req)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if resp.User == nil {
		return nil, fmt.Errorf("register: %w", &RemoteError{Message: "server returned no user"})
	}
	return &AuthResult{Token: resp.Token, User: resp.User}, nil
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	resp, err := c.post(ctx, loginPath, req)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.Token == "" || resp.User == nil {
		return nil, fmt.Errorf("login: %w", &RemoteError{Message: "server returned an incomplete session"})
	}
	return &AuthResult{Token: resp.Token, User: resp.User}, nil
}

func (c *HTTPClient) SendVerifyOTP(ctx context.Context, userID string) error {
	if _, err := c.post(ctx, verifyOTPPath, map[string]string{"userId": userID}); err != nil {
		return fmt.Errorf("send verify otp: %w", err)
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// post sends body as JSON and decodes the answer. Refusals become
// *RemoteError; network trouble and 5xx become ErrUnavailable.
func (c *HTTPClient) post(ctx context.Context, path string, body any) (*authResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	if res.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, res.Status)
	}

	var out authResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		if res.StatusCode >= http.StatusBadRequest {
			return nil, &RemoteError{StatusCode: res.StatusCode, Message: res.Status}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !out.Success || res.StatusCode >= http.StatusBadRequest {
		return nil, &RemoteError{StatusCode: res.StatusCode, Message: out.Message}
	}
	return &out, nil
}

// IsRemote reports whether err is a refusal and returns it.
func IsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
