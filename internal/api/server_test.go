package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rankperm/app"
	"rankperm/internal"
	"rankperm/internal/testkit"
)

func newTestServer() *Server {
	kit := testkit.NewTestKit()
	service := app.NewSignificanceService(kit.Referee(), nil, internal.NewLogger(internal.LogLevelError))
	return NewServer(service)
}

func TestHealthz(t *testing.T) {
	server := newTestServer()

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignificanceEndpoint(t *testing.T) {
	server := newTestServer()

	body := `{
		"group_a": [[0,1,2],[0,1,2]],
		"group_b": [[2,1,0],[2,1,0]],
		"aggregator": "positional_points",
		"comparator": "l1",
		"trials": 50,
		"seed": 42
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/significance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result struct {
		Observed    float64   `json:"observed_statistic"`
		PValue      float64   `json:"p_value"`
		NullSamples []float64 `json:"null_samples"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, 4.0, result.Observed)
	assert.GreaterOrEqual(t, result.PValue, 0.0)
	assert.LessOrEqual(t, result.PValue, 1.0)
	assert.Len(t, result.NullSamples, 50)
}

func TestSignificanceEndpointHTMLMode(t *testing.T) {
	server := newTestServer()

	body := `{
		"group_a": [[0,1],[1,0]],
		"group_b": [[1,0],[0,1]],
		"aggregator": "top_choice",
		"comparator": "l2",
		"trials": 20,
		"seed": 1
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/significance", strings.NewReader(body))
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<h1")
}

func TestSignificanceEndpointValidationErrors(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "malformed ranking",
			body: `{"group_a":[[0,0,2]],"group_b":[[0,1,2]],"aggregator":"top_choice","comparator":"l1","trials":10}`,
		},
		{
			name: "empty group",
			body: `{"group_a":[],"group_b":[[0,1,2]],"aggregator":"top_choice","comparator":"l1","trials":10}`,
		},
		{
			name: "zero trials",
			body: `{"group_a":[[0,1]],"group_b":[[1,0]],"aggregator":"top_choice","comparator":"l1","trials":0}`,
		},
		{
			name: "unknown aggregator",
			body: `{"group_a":[[0,1]],"group_b":[[1,0]],"aggregator":"borda","comparator":"l1","trials":10}`,
		},
		{
			name: "not json",
			body: `not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/significance", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}
