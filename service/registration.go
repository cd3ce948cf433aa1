package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/kineticfest/registration-core/config"
	"github.com/kineticfest/registration-core/googleauth"
	"github.com/kineticfest/registration-core/sheetdb"
)

var (
	ErrMissingEmail   = errors.New("email must not be empty")
	ErrMissingTabName = errors.New("tab name must not be empty")
	ErrEmptyRow       = errors.New("row data must not be empty")
)

type Signer interface {
	Sign(cred config.Credential, scope string) (string, error)
}

type Exchanger interface {
	Exchange(ctx context.Context, assertion string) (googleauth.AccessToken, error)
}

type Gateway interface {
	BatchGetColumns(ctx context.Context, token, spreadsheetID string, ranges []string) ([]sheetdb.RangeValues, error)
	AppendRow(ctx context.Context, token, spreadsheetID, tabName string, row []string) (string, error)
}

// RegistrationService chains signer, exchanger and gateway for the two
// operations. Each call mints a fresh assertion with the narrowest scope the
// operation needs; no token or assertion is reused across requests.
type RegistrationService struct {
	cred      config.Credential
	signer    Signer
	exchanger Exchanger
	gateway   Gateway
	logger    *slog.Logger
}

func NewRegistrationService(cred config.Credential, signer Signer, exchanger Exchanger, gateway Gateway, logger *slog.Logger) *RegistrationService {
	return &RegistrationService{
		cred:      cred,
		signer:    signer,
		exchanger: exchanger,
		gateway:   gateway,
		logger:    logger,
	}
}

func (s *RegistrationService) authorize(ctx context.Context, scope string) (googleauth.AccessToken, error) {
	assertion, err := s.signer.Sign(s.cred, scope)
	if err != nil {
		return googleauth.AccessToken{}, err
	}
	return s.exchanger.Exchange(ctx, assertion)
}

// CheckRegistration reports which events already have a row keyed on the
// given email. Matching is case-insensitive and whitespace-trimmed on both
// sides. A tab whose lookup column is empty counts as "not registered", not
// as an error. Results are live reads from the sheet; nothing is cached, so
// the staleness window is a single Sheets read.
func (s *RegistrationService) CheckRegistration(ctx context.Context, email string) ([]string, error) {
	probe := strings.ToLower(strings.TrimSpace(email))
	if probe == "" {
		return nil, ErrMissingEmail
	}

	token, err := s.authorize(ctx, googleauth.ScopeReadOnly)
	if err != nil {
		return nil, err
	}

	ranges := make([]string, 0, len(eventRanges))
	for _, er := range eventRanges {
		ranges = append(ranges, er.Range())
	}

	columns, err := s.gateway.BatchGetColumns(ctx, token.Value, s.cred.SpreadsheetID, ranges)
	if err != nil {
		return nil, err
	}

	registered := make([]string, 0, len(eventRanges))
	for i, er := range eventRanges {
		if i >= len(columns) {
			break
		}
		if columnContains(columns[i].Values, probe) {
			registered = append(registered, er.Event)
		}
	}
	return registered, nil
}

// Register appends one row to the named tab. There is no duplicate
// pre-check: the sheet has no unique constraint, so two registers for the
// same person both succeed and produce two rows. Callers that want
// suppression do a CheckRegistration first.
func (s *RegistrationService) Register(ctx context.Context, tabName string, row []string) (string, error) {
	if strings.TrimSpace(tabName) == "" {
		return "", ErrMissingTabName
	}
	if len(row) == 0 {
		return "", ErrEmptyRow
	}

	s.logger.Info("registering",
		"tab", tabName,
		"spreadsheet", truncateID(s.cred.SpreadsheetID),
		"serviceAccount", s.cred.AccountEmail,
	)

	token, err := s.authorize(ctx, googleauth.ScopeReadWrite)
	if err != nil {
		return "", err
	}

	return s.gateway.AppendRow(ctx, token.Value, s.cred.SpreadsheetID, tabName, row)
}

func columnContains(values [][]string, probe string) bool {
	for _, row := range values {
		for _, cell := range row {
			if strings.ToLower(strings.TrimSpace(cell)) == probe {
				return true
			}
		}
	}
	return false
}

// truncateID keeps log lines from spelling out the full spreadsheet id.
func truncateID(id string) string {
	if len(id) <= 5 {
		return id
	}
	return id[:5] + "..."
}
