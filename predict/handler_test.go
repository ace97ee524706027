package predict_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/letitsparse/dos/predict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer serves a predictor whose strategies cost 100ms (sm×sm) and
// 40ms (sm×dm).
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	p, err := predict.New(identityScaler(), constNet(t, 100), constNet(t, 40))
	require.NoError(t, err)

	srv := httptest.NewServer(predict.Handler(p))
	t.Cleanup(srv.Close)

	return srv
}

// TestHandler_Decision posts a workload and checks the JSON decision.
func TestHandler_Decision(t *testing.T) {
	srv := newTestServer(t)

	body := `{"rows_left":1000,"cols_left":500,"cols_right":200,
		"density_left":0.01,"density_right":0.05,"nnz_left":5000,"nnz_right":5000}`

	resp, err := http.Post(srv.URL, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got struct {
		SMSMLatency float64 `json:"smsm_latency_ms"`
		SMDMLatency float64 `json:"smdm_latency_ms"`
		Method      string  `json:"optim_method"`
		Report      string  `json:"report"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, 100.0, got.SMSMLatency)
	assert.Equal(t, 40.0, got.SMDMLatency)
	assert.Equal(t, predict.MethodDense, got.Method)
	assert.Equal(t,
		"sm*sm latency : 100ms , sm*dm latency : 40ms , optim_method : sm*dm",
		got.Report)
}

// TestHandler_BadRequest rejects malformed JSON.
func TestHandler_BadRequest(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL, "application/json", strings.NewReader("{nope"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestHandler_MethodNotAllowed rejects non-POST requests.
func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
