package config

import (
	"os"
	"strings"
)

// Credential identifies the service account and the spreadsheet it operates
// on. It is loaded once at startup and never changes for the lifetime of the
// process.
type Credential struct {
	AccountEmail  string
	PrivateKeyPEM string
	SpreadsheetID string
}

type Config struct {
	Credential Credential

	// Addr is the listen address for the HTTP server, e.g. ":8080".
	Addr string
}

// Load reads the configuration from the environment. Both historical
// variable names are accepted for the account email and the private key.
// The key may carry literal "\n" sequences (common when the PEM is pasted
// into a single-line env var) which are expanded to real newlines.
func Load() (Config, error) {
	email := firstEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", "GOOGLE_CLIENT_EMAIL")
	if email == "" {
		return Config{}, NewMissingCredentialError("GOOGLE_SERVICE_ACCOUNT_EMAIL")
	}

	key := firstEnv("GOOGLE_PRIVATE_KEY", "GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY")
	if key == "" {
		return Config{}, NewMissingCredentialError("GOOGLE_PRIVATE_KEY")
	}
	key = strings.ReplaceAll(key, `\n`, "\n")

	sheetID := os.Getenv("GOOGLE_SHEET_ID")
	if sheetID == "" {
		return Config{}, NewMissingCredentialError("GOOGLE_SHEET_ID")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		Credential: Credential{
			AccountEmail:  email,
			PrivateKeyPEM: key,
			SpreadsheetID: sheetID,
		},
		Addr: ":" + port,
	}, nil
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
