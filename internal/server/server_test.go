package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radcurve/internal/dose"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New().Routes())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/healthz")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestGetDose(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/dose?distance=2&dose=50&ref=1&att=1&op=1")

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var s dose.Sample
	require.NoError(t, json.Unmarshal(body, &s))
	assert.Equal(t, 2.0, s.Distance)
	assert.InDelta(t, 12.5, s.Dose, 1e-9)
}

func TestGetDose_Defaults(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/dose")

	require.Equal(t, http.StatusOK, resp.StatusCode)

	// All defaults: 50 μSv/h at the 1 m reference distance.
	var s dose.Sample
	require.NoError(t, json.Unmarshal(body, &s))
	assert.InDelta(t, 50.0, s.Dose, 1e-9)
}

func TestGetDose_BadNumber(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/dose?distance=abc")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "distance")
}

func TestGetCurve(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/curve?min=0.5&max=5&points=200")

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var samples []dose.Sample
	require.NoError(t, json.Unmarshal(body, &samples))
	require.Len(t, samples, 200)
	assert.Equal(t, 0.5, samples[0].Distance)
	assert.Equal(t, 5.0, samples[len(samples)-1].Distance)
	for i := 1; i < len(samples); i++ {
		assert.Greater(t, samples[i].Distance, samples[i-1].Distance)
	}
}

func TestGetCurve_InvalidRange(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts, "/curve?min=5&max=1")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "invalid curve range")
	assert.Contains(t, string(body), "max")
}

func TestGetCurve_BadPoints(t *testing.T) {
	ts := newTestServer(t)
	resp, _ := get(t, ts, "/curve?points=many")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := get(t, ts, "/curve?points=-5")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "points")
}
