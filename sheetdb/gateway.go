// Package sheetdb is the gateway to the Google Sheets v4 values API. The
// spreadsheet is the system's only datastore, so this package is kept
// deliberately small: one multi-range read and one row append, both
// schema-agnostic.
package sheetdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// RangeValues holds the cells returned for one requested range. Values is
// nil when the range has no data at all, which for a lookup column simply
// means nobody has registered yet.
type RangeValues struct {
	Range  string
	Values [][]string
}

// Gateway performs the two Sheets operations with a caller-supplied bearer
// token. It holds no credential state of its own.
type Gateway struct {
	endpoint string
	logger   *slog.Logger
}

func NewGateway(logger *slog.Logger) *Gateway {
	return &Gateway{logger: logger}
}

func (g *Gateway) service(ctx context.Context, token string) (*sheets.Service, error) {
	opts := []option.ClientOption{
		option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})),
	}
	if g.endpoint != "" {
		opts = append(opts, option.WithEndpoint(g.endpoint))
	}
	return sheets.NewService(ctx, opts...)
}

// BatchGetColumns reads every range in one API call. Checking registration
// across all event tabs is a single round-trip and a single rate-limit
// charge, no matter how many tabs there are.
func (g *Gateway) BatchGetColumns(ctx context.Context, token, spreadsheetID string, ranges []string) ([]RangeValues, error) {
	svc, err := g.service(ctx, token)
	if err != nil {
		return nil, NewUpstreamFailureError(0, err)
	}

	resp, err := svc.Spreadsheets.Values.BatchGet(spreadsheetID).
		Ranges(ranges...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, g.mapAPIError(err, "")
	}

	result := make([]RangeValues, 0, len(resp.ValueRanges))
	for _, vr := range resp.ValueRanges {
		result = append(result, RangeValues{
			Range:  vr.Range,
			Values: toStringCells(vr.Values),
		})
	}
	return result, nil
}

// AppendRow appends one row after the last row of the tab. USER_ENTERED
// makes the sheet interpret dates and numbers typed as text; INSERT_ROWS
// inserts instead of overwriting. Returns the range the row landed in.
func (g *Gateway) AppendRow(ctx context.Context, token, spreadsheetID, tabName string, row []string) (string, error) {
	svc, err := g.service(ctx, token)
	if err != nil {
		return "", NewUpstreamFailureError(0, err)
	}

	cells := make([]interface{}, len(row))
	for i, cell := range row {
		cells[i] = cell
	}

	tabRange := fmt.Sprintf("%s!A:Z", tabName)
	resp, err := svc.Spreadsheets.Values.Append(spreadsheetID, tabRange, &sheets.ValueRange{
		Values: [][]interface{}{cells},
	}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return "", g.mapAPIError(err, tabName)
	}

	if resp.Updates == nil {
		return "", nil
	}
	return resp.Updates.UpdatedRange, nil
}

// mapAPIError translates an API failure into the typed taxonomy. tabName is
// only known on the append path; batch reads use fixed configured ranges.
func (g *Gateway) mapAPIError(err error, tabName string) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return NewUpstreamFailureError(0, err)
	}

	g.logger.Error("sheets API error",
		"status", apiErr.Code,
		"message", apiErr.Message,
	)

	switch {
	case apiErr.Code == http.StatusForbidden:
		return NewPermissionDeniedError(err)
	case apiErr.Code == http.StatusNotFound:
		return NewSpreadsheetNotFoundError(err)
	case apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "Unable to parse range"):
		return NewUnknownTabError(tabName, err)
	default:
		return NewUpstreamFailureError(apiErr.Code, err)
	}
}

func toStringCells(values [][]interface{}) [][]string {
	if values == nil {
		return nil
	}
	rows := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}
	return rows
}
