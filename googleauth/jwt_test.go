package googleauth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kineticfest/registration-core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyPEM(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	block := &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	}
	return key, string(pem.EncodeToMemory(block))
}

func testCredential(t *testing.T) (*rsa.PrivateKey, config.Credential) {
	t.Helper()
	key, keyPEM := testKeyPEM(t)
	return key, config.Credential{
		AccountEmail:  "bot@project.iam.gserviceaccount.com",
		PrivateKeyPEM: keyPEM,
		SpreadsheetID: "sheet-123",
	}
}

func TestSignProducesCompactJWT(t *testing.T) {
	key, cred := testCredential(t)

	signer := NewSigner()
	assertion, err := signer.Sign(cred, ScopeReadOnly)
	require.NoError(t, err)

	segments := strings.Split(assertion, ".")
	require.Len(t, segments, 3)
	for _, seg := range segments {
		assert.NotEmpty(t, seg)
		assert.NotContains(t, seg, "+")
		assert.NotContains(t, seg, "/")
		assert.NotContains(t, seg, "=")
	}

	headerJSON, err := base64.RawURLEncoding.DecodeString(segments[0])
	require.NoError(t, err)
	var header struct {
		Alg string `json:"alg"`
		Typ string `json:"typ"`
	}
	require.NoError(t, json.Unmarshal(headerJSON, &header))
	assert.Equal(t, "RS256", header.Alg)
	assert.Equal(t, "JWT", header.Typ)

	// The signature must verify against the public half of the same key.
	parsed, err := jwt.Parse(assertion, func(*jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
}

func TestSignClaims(t *testing.T) {
	_, cred := testCredential(t)

	minted := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	signer := &Signer{now: func() time.Time { return minted }}

	assertion, err := signer.Sign(cred, ScopeReadWrite)
	require.NoError(t, err)

	segments := strings.Split(assertion, ".")
	require.Len(t, segments, 3)

	claimsJSON, err := base64.RawURLEncoding.DecodeString(segments[1])
	require.NoError(t, err)

	var claims struct {
		Iss   string `json:"iss"`
		Scope string `json:"scope"`
		Aud   string `json:"aud"`
		Iat   int64  `json:"iat"`
		Exp   int64  `json:"exp"`
	}
	require.NoError(t, json.Unmarshal(claimsJSON, &claims))

	assert.Equal(t, cred.AccountEmail, claims.Iss)
	assert.Equal(t, ScopeReadWrite, claims.Scope)
	assert.Equal(t, TokenEndpoint, claims.Aud)
	assert.Equal(t, minted.Unix(), claims.Iat)
	assert.Equal(t, int64(3600), claims.Exp-claims.Iat)
}

func TestSignScopePerCall(t *testing.T) {
	_, cred := testCredential(t)
	signer := NewSigner()

	for _, scope := range []string{ScopeReadOnly, ScopeReadWrite} {
		assertion, err := signer.Sign(cred, scope)
		require.NoError(t, err)

		claimsJSON, err := base64.RawURLEncoding.DecodeString(strings.Split(assertion, ".")[1])
		require.NoError(t, err)

		var claims struct {
			Scope string `json:"scope"`
		}
		require.NoError(t, json.Unmarshal(claimsJSON, &claims))
		assert.Equal(t, scope, claims.Scope)
	}
}

func TestSignBadPrivateKey(t *testing.T) {
	signer := NewSigner()
	_, err := signer.Sign(config.Credential{
		AccountEmail:  "bot@project.iam.gserviceaccount.com",
		PrivateKeyPEM: "not a pem key at all",
	}, ScopeReadOnly)
	require.Error(t, err)

	var authErr *Error
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, REASON_BAD_PRIVATE_KEY, authErr.Reason)
}
