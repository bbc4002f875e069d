// Package client contains the clients of the Laqtaha authentication
// endpoint.
//
// # Overview
//
//  1. Client is the transport-agnostic contract: Register, Login,
//     SendVerifyOTP and Close.
//  2. HTTPClient speaks the JSON API (POST /api/auth/register,
//     /api/auth/login, /api/auth/send-verify-otp). Only the "success",
//     "message", "token" and "user" fields of an answer are interpreted.
//  3. MockClient simulates the endpoint in process, with a configurable
//     delay, bcrypt-hashed accounts and HS256 tokens. It is what the client
//     runs against until a real backend is configured.
//
// # Error Handling
//
// Refusals come back as *RemoteError carrying the user-facing message.
// Transport failures and 5xx answers wrap ErrUnavailable; 401/403 refusals
// also match ErrUnauthorized. Context cancellation is preserved.
package client
