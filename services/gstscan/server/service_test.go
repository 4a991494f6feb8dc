package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gstscan-backend/lib/telemetry"
	"gstscan-backend/services/gstscan"
)

func newTestServer(t *testing.T) *httptest.Server {
	scanner, err := gstscan.New(gstscan.Config{
		DemoMode:     true,
		OutputDir:    t.TempDir(),
		OutputFormat: "json",
	})
	require.NoError(t, err)

	server := httptest.NewServer(New(scanner).Router())
	t.Cleanup(server.Close)
	return server
}

func TestHealth(t *testing.T) {
	defer telemetry.SetupForTesting("test:gstscan/server")()
	server := newTestServer(t)

	res, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body struct {
		Status   string `json:"status"`
		DemoMode bool   `json:"demo_mode"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "healthy", body.Status)
	require.True(t, body.DemoMode)
}

func TestAPIScrapeSuccess(t *testing.T) {
	defer telemetry.SetupForTesting("test:gstscan/server")()
	server := newTestServer(t)

	payload, _ := json.Marshal(map[string]string{"gstin": "27AAPFU0939F1ZV"})
	res, err := http.Post(server.URL+"/api/scrape", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Gstin     string `json:"gstin"`
			LegalName string `json:"legal_name"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.True(t, body.Success)
	require.Equal(t, "27AAPFU0939F1ZV", body.Data.Gstin)
	require.Equal(t, "UBER INDIA SYSTEMS PRIVATE LIMITED", body.Data.LegalName)
}

func TestAPIScrapeMissingGstin(t *testing.T) {
	defer telemetry.SetupForTesting("test:gstscan/server")()
	server := newTestServer(t)

	res, err := http.Post(server.URL+"/api/scrape", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestAPIScrapeInvalidGstin(t *testing.T) {
	defer telemetry.SetupForTesting("test:gstscan/server")()
	server := newTestServer(t)

	payload, _ := json.Marshal(map[string]string{"gstin": "not-a-gstin"})
	res, err := http.Post(server.URL+"/api/scrape", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.False(t, body.Success)
	require.NotEmpty(t, body.Error)
}

func TestFormScrapeEmptyRedirects(t *testing.T) {
	defer telemetry.SetupForTesting("test:gstscan/server")()
	server := newTestServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	res, err := client.PostForm(server.URL+"/scrape", url.Values{"gstin": {""}})
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusSeeOther, res.StatusCode)
	require.Contains(t, res.Header.Get("Location"), "flash=")
}

func TestFormScrapeSuccessRendersResult(t *testing.T) {
	defer telemetry.SetupForTesting("test:gstscan/server")()
	server := newTestServer(t)

	res, err := http.PostForm(server.URL+"/scrape", url.Values{"gstin": {"29AABCT1332L1ZN"}})
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var page bytes.Buffer
	_, err = page.ReadFrom(res.Body)
	require.NoError(t, err)
	require.Contains(t, page.String(), "TATA CONSULTANCY SERVICES LIMITED")
}

func TestIndexShowsForm(t *testing.T) {
	defer telemetry.SetupForTesting("test:gstscan/server")()
	server := newTestServer(t)

	res, err := http.Get(server.URL + "/?flash=hello")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var page bytes.Buffer
	_, err = page.ReadFrom(res.Body)
	require.NoError(t, err)
	require.Contains(t, page.String(), `name="gstin"`)
	require.Contains(t, page.String(), "hello")
}
