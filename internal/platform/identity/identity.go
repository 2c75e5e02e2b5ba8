package identity

import (
	"context"
	"errors"
)

// Identity is the verified caller extracted from a bearer credential.
// SubjectID is the identity provider's stable user id and is used as the
// primary key for user rows everywhere downstream.
type Identity struct {
	SubjectID string
	Email     string
}

var (
	// ErrUnauthenticated covers every credential failure: missing, malformed,
	// bad signature, wrong audience/issuer, expired. The verifier never
	// partially trusts a token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotConfigured means the identity tenant is unset on the server side.
	// This is a deploy misconfiguration, not a caller error.
	ErrNotConfigured = errors.New("identity tenant not configured")
)

// TokenVerifier validates a raw bearer token and yields the verified caller.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (Identity, error)
}
