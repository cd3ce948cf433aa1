package sheetdb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway(endpoint string) *Gateway {
	return &Gateway{
		endpoint: endpoint,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBatchGetColumns(t *testing.T) {
	var gotPath, gotAuth string
	var gotRanges []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotRanges = r.URL.Query()["ranges"]

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"spreadsheetId": "sheet-123",
			"valueRanges": [
				{"range": "BEDROCK!D1:D3", "values": [["captain@fest.com"], ["other@fest.com"]]},
				{"range": "DEHACK!D1:D1"}
			]
		}`))
	}))
	defer srv.Close()

	g := testGateway(srv.URL)
	result, err := g.BatchGetColumns(context.Background(), "test-token", "sheet-123", []string{"BEDROCK!D:D", "DEHACK!D:D"})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(gotPath, "/spreadsheets/sheet-123/values:batchGet"), "unexpected path %q", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, []string{"BEDROCK!D:D", "DEHACK!D:D"}, gotRanges)

	require.Len(t, result, 2)
	assert.Equal(t, [][]string{{"captain@fest.com"}, {"other@fest.com"}}, result[0].Values)

	// An empty column comes back with no values at all; callers must see
	// nil, not an error.
	assert.Nil(t, result[1].Values)
}

func TestAppendRow(t *testing.T) {
	var gotPath, gotBody string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"spreadsheetId": "sheet-123",
			"updates": {"updatedRange": "BEDROCK!A7:C7"}
		}`))
	}))
	defer srv.Close()

	g := testGateway(srv.URL)
	updatedRange, err := g.AppendRow(context.Background(), "test-token", "sheet-123", "BEDROCK", []string{"Ada", "ada@fest.com", "2026-02-10"})
	require.NoError(t, err)

	assert.Equal(t, "BEDROCK!A7:C7", updatedRange)
	assert.True(t, strings.Contains(gotPath, "BEDROCK!A:Z") && strings.HasSuffix(gotPath, ":append"), "unexpected path %q", gotPath)
	assert.Equal(t, []string{"USER_ENTERED"}, gotQuery["valueInputOption"])
	assert.Equal(t, []string{"INSERT_ROWS"}, gotQuery["insertDataOption"])
	assert.Contains(t, gotBody, `"ada@fest.com"`)
}

func errorServer(t *testing.T, status int, message string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"error":{"code":` + strconv.Itoa(status) + `,"message":"` + message + `","status":"ERROR"}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAppendRowErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		message    string
		wantReason ErrorReason
	}{
		{
			name:       "permission denied",
			status:     403,
			message:    "The caller does not have permission",
			wantReason: REASON_PERMISSION_DENIED,
		},
		{
			name:       "spreadsheet not found",
			status:     404,
			message:    "Requested entity was not found.",
			wantReason: REASON_SPREADSHEET_NOT_FOUND,
		},
		{
			name:       "unknown tab",
			status:     400,
			message:    "Unable to parse range: NOT_A_TAB!A:Z",
			wantReason: REASON_UNKNOWN_TAB,
		},
		{
			name:       "other bad request",
			status:     400,
			message:    "Invalid values",
			wantReason: REASON_UPSTREAM_FAILURE,
		},
		{
			name:       "server error",
			status:     500,
			message:    "Internal error encountered.",
			wantReason: REASON_UPSTREAM_FAILURE,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := errorServer(t, tt.status, tt.message)
			g := testGateway(srv.URL)

			_, err := g.AppendRow(context.Background(), "test-token", "sheet-123", "NOT_A_TAB", []string{"x"})
			require.Error(t, err)

			var sheetErr *Error
			require.True(t, errors.As(err, &sheetErr))
			assert.Equal(t, tt.wantReason, sheetErr.Reason)
			assert.Equal(t, tt.status, sheetErr.StatusCode)

			if tt.wantReason == REASON_UNKNOWN_TAB {
				assert.Equal(t, "NOT_A_TAB", sheetErr.TabName)
			}
		})
	}
}

func TestBatchGetErrorMapping(t *testing.T) {
	srv := errorServer(t, 403, "The caller does not have permission")
	g := testGateway(srv.URL)

	_, err := g.BatchGetColumns(context.Background(), "test-token", "sheet-123", []string{"BEDROCK!D:D"})
	require.Error(t, err)

	var sheetErr *Error
	require.True(t, errors.As(err, &sheetErr))
	assert.Equal(t, REASON_PERMISSION_DENIED, sheetErr.Reason)
}
