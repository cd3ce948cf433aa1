package googleauth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// AccessToken is the short-lived bearer token returned by the token
// endpoint. It is used once and thrown away; the assertion's one hour expiry
// bounds its lifetime so no refresh logic is kept here.
type AccessToken struct {
	Value      string
	ObtainedAt time.Time
}

// Exchanger trades a signed assertion for an access token.
type Exchanger struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
}

func NewExchanger(logger *slog.Logger) *Exchanger {
	return &Exchanger{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		endpoint:   TokenEndpoint,
		logger:     logger,
	}
}

// Exchange posts the assertion with the JWT-bearer grant. On rejection the
// upstream status and body are logged and carried on the typed error, but
// the assertion itself never appears in the error chain.
func (e *Exchanger) Exchange(ctx context.Context, assertion string) (AccessToken, error) {
	form := url.Values{
		"grant_type": {jwtBearerGrantType},
		"assertion":  {assertion},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return AccessToken{}, NewExchangeFailedError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return AccessToken{}, NewExchangeFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		e.logger.Error("token exchange rejected",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return AccessToken{}, NewExchangeRejectedError(resp.StatusCode, string(body))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return AccessToken{}, NewExchangeFailedError(err)
	}
	if payload.AccessToken == "" {
		return AccessToken{}, NewExchangeRejectedError(resp.StatusCode, "response had no access_token")
	}

	return AccessToken{Value: payload.AccessToken, ObtainedAt: time.Now()}, nil
}
