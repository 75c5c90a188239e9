package utils_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuln-tools/euvd-mcp/utils"
)

func TestLookupEnv(t *testing.T) {
	t.Setenv("EUVD_TEST_KEY", "value")
	assert.Equal(t, "value", utils.LookupEnv("EUVD_TEST_KEY", "default"))
	assert.Equal(t, "default", utils.LookupEnv("EUVD_TEST_MISSING", "default"))
}

func TestFetchURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/json, text/plain, */*", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer ts.Close()

	headers := map[string]string{
		"User-Agent": "test-agent",
		"Accept":     "application/json, text/plain, */*",
	}
	body, err := utils.FetchURL(ts.URL, headers, 5*time.Second, 0)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(body))
}

func TestFetchURLRetriesTransientFailure(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer ts.Close()

	body, err := utils.FetchURL(ts.URL, nil, 5*time.Second, 1)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestFetchURLExhaustsRetries(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := utils.FetchURL(ts.URL, nil, 5*time.Second, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch URL")
	assert.Contains(t, err.Error(), "status code: 500")
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}
