// Package googleauth implements the service account side of the OAuth2
// JWT-bearer grant: a signed assertion proves the service account's identity
// and is exchanged for a short-lived access token.
package googleauth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kineticfest/registration-core/config"
)

const (
	// ScopeReadOnly is used for registration lookups.
	ScopeReadOnly = "https://www.googleapis.com/auth/spreadsheets.readonly"
	// ScopeReadWrite is used for registration appends. The lookup path must
	// never request it.
	ScopeReadWrite = "https://www.googleapis.com/auth/spreadsheets"

	// TokenEndpoint is the audience of every assertion and the URL the
	// exchanger posts to.
	TokenEndpoint = "https://oauth2.googleapis.com/token"

	assertionLifetime = time.Hour
)

// Signer mints RS256 assertions for the token endpoint. A fresh assertion is
// produced per call; nothing is cached.
type Signer struct {
	now func() time.Time
}

func NewSigner() *Signer {
	return &Signer{now: time.Now}
}

// Sign builds and signs an assertion for the given scope. A key that cannot
// be parsed is a configuration problem, not a transient one.
func (s *Signer) Sign(cred config.Credential, scope string) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cred.PrivateKeyPEM))
	if err != nil {
		return "", NewBadPrivateKeyError(err)
	}

	now := s.now()
	claims := jwt.MapClaims{
		"iss":   cred.AccountEmail,
		"scope": scope,
		"aud":   TokenEndpoint,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", NewSigningFailedError(err)
	}
	return signed, nil
}
