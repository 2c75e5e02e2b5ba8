package identity

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates Firebase-style ID tokens: RS256 signature against the
// issuer's published key set, plus strict audience/issuer/expiry checks.
type Verifier struct {
	projectID string
	keys      *RemoteKeySet
	logger    *slog.Logger
}

type idTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewVerifier(projectID string, keys *RemoteKeySet, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{
		projectID: projectID,
		keys:      keys,
		logger:    logger,
	}
}

func (v *Verifier) Verify(ctx context.Context, rawToken string) (Identity, error) {
	if strings.TrimSpace(v.projectID) == "" {
		return Identity{}, ErrNotConfigured
	}
	if strings.TrimSpace(rawToken) == "" {
		return Identity{}, ErrUnauthenticated
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer("https://securetoken.google.com/"+v.projectID),
		jwt.WithExpirationRequired(),
	)

	claims := &idTokenClaims{}
	token, err := parser.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (any, error) {
		kid, ok := t.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, errors.New("token missing kid header")
		}
		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		v.logger.Debug("token rejected",
			"event", "identity_token_rejected",
			"module", "internal/platform/identity",
			"layer", "platform",
			"error", err.Error(),
		)
		return Identity{}, ErrUnauthenticated
	}
	if !token.Valid {
		return Identity{}, ErrUnauthenticated
	}
	if claims.Subject == "" || claims.Email == "" {
		return Identity{}, ErrUnauthenticated
	}

	return Identity{
		SubjectID: claims.Subject,
		Email:     claims.Email,
	}, nil
}
