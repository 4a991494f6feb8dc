package gstscan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gstscan-backend/lib/scrapers/gstportal"
	"gstscan-backend/lib/telemetry"
)

type sleepWindow struct {
	min time.Duration
	max time.Duration
}

type sleepRecorder struct {
	calls []sleepWindow
}

func (r *sleepRecorder) delay(ctx context.Context, min, max time.Duration) {
	r.calls = append(r.calls, sleepWindow{min: min, max: max})
}

func newDemoService(t *testing.T) *Service {
	s, err := New(Config{
		DemoMode:  true,
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	s.sleep = (&sleepRecorder{}).delay
	return s
}

func TestRunDemoBatchSkipsInvalidWithoutBreakingOrder(t *testing.T) {
	defer telemetry.SetupForTesting("test:gstscan")()

	s := newDemoService(t)
	result := s.Run(context.Background(), []string{
		"27AAPFU0939F1ZV",
		"not-a-gstin",
		"29AABCT1332L1ZN",
	})

	require.Equal(t, 2, result.Succeeded)
	require.Equal(t, 1, result.Failed)
	require.Len(t, result.Outcomes, 3)

	require.Equal(t, gstportal.OutcomeSucceeded, result.Outcomes[0].Kind)
	require.Equal(t, gstportal.OutcomeInvalid, result.Outcomes[1].Kind)
	require.Equal(t, gstportal.OutcomeSucceeded, result.Outcomes[2].Kind)

	records := result.Records()
	require.Len(t, records, 2)
	require.Equal(t, "UBER INDIA SYSTEMS PRIVATE LIMITED", records[0].LegalName)
	require.Equal(t, "TATA CONSULTANCY SERVICES LIMITED", records[1].LegalName)
}

func TestRunThrottlesBetweenIdentifiersNeverAfterLast(t *testing.T) {
	defer telemetry.SetupForTesting("test:gstscan")()

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`<html><body><div id="lgnm">SOMEONE</div></body></html>`))
	}))
	defer server.Close()

	s, err := New(Config{
		BaseURL:         server.URL,
		OutputDir:       t.TempDir(),
		DelayMinSeconds: 2,
		DelayMaxSeconds: 4,
	})
	require.NoError(t, err)
	recorder := &sleepRecorder{}
	s.sleep = recorder.delay

	result := s.Run(context.Background(), []string{
		"27AAPFU0939F1ZV",
		"29AABCT1332L1ZN",
		"27AADCI7885M1ZJ",
	})

	require.Equal(t, 3, result.Succeeded)
	require.EqualValues(t, 3, hits.Load())

	require.Len(t, recorder.calls, 2)
	for _, call := range recorder.calls {
		require.Equal(t, 2*time.Second, call.min)
		require.Equal(t, 4*time.Second, call.max)
	}
}

func TestRunNoNetworkCallForInvalidIdentifier(t *testing.T) {
	defer telemetry.SetupForTesting("test:gstscan")()

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`<html><body></body></html>`))
	}))
	defer server.Close()

	s, err := New(Config{BaseURL: server.URL, OutputDir: t.TempDir()})
	require.NoError(t, err)
	s.sleep = (&sleepRecorder{}).delay

	result := s.Run(context.Background(), []string{
		"27AAPFU0939F1ZV",
		"definitely-wrong",
		"29AABCT1332L1ZN",
	})

	require.Equal(t, 2, result.Succeeded)
	require.Equal(t, 1, result.Failed)
	// only the two valid identifiers reached the network
	require.EqualValues(t, 2, hits.Load())
}
