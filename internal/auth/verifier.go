package auth

import "context"

// TokenVerifier resolves a bearer token to a user identity via an external
// identity provider. Implementations make a single attempt, no retries.
// Any failure (network, malformed token, unknown token, provider error)
// yields an error and the caller must treat the request as unauthenticated.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}
