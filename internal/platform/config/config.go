package config

import (
	"os"
	"strings"
)

// Default JWK set for Firebase-issued ID tokens. Overridable so tests and
// self-hosted identity providers can point at their own key set.
const defaultJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	// FirebaseProjectID is the identity tenant: the expected token audience
	// and the tail of the expected issuer. An empty value is a deploy
	// misconfiguration, surfaced as 500 at the auth boundary.
	FirebaseProjectID string
	IdentityJWKSURL   string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "tanavent"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	jwksURL := strings.TrimSpace(os.Getenv("IDENTITY_JWKS_URL"))
	if jwksURL == "" {
		jwksURL = defaultJWKSURL
	}

	return Config{
		ServiceName:       service,
		HTTPPort:          port,
		PostgresDSN:       os.Getenv("POSTGRES_DSN"),
		FirebaseProjectID: strings.TrimSpace(os.Getenv("FIREBASE_PROJECT_ID")),
		IdentityJWKSURL:   jwksURL,
	}, nil
}
