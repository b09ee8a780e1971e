package i

import (
	"time"
)

// Tokenizer issues and validates the bearer tokens of protected routes.
type Tokenizer interface {
	// Generate creates a token with the given claims and expiration duration.
	// The issuer and expiry claims are always set by the tokenizer.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates and parses a token, returning its claims.
	Decode(token string) (map[string]interface{}, error)
}
