package cli

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore records how many requests reach it. Used to prove the
// registration gate rejects locally before anything goes on the wire.
func countingStore(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"_id":"5f4e1c2b3a4d5e6f7a8b9c0d","paid":false}`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func storeEnv(srv *httptest.Server) map[string]string {
	return map[string]string{
		"COURSEDASH_BASE_URL": srv.URL,
		"COURSEDASH_API_KEY":  "test-key",
		"COURSEDASH_CONFIG":   "",
	}
}

func TestRegisterMissingCourseIsRejectedWithZeroNetworkCalls(t *testing.T) {
	srv, calls := countingStore(t)

	_, _, err := execute(t, storeEnv(srv),
		"register", "--participant", "6a5b4c3d2e1f0a9b8c7d6e5f")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "course")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, int32(0), calls.Load(), "validation must reject before any network call")
}

func TestRegisterMissingBothReferences(t *testing.T) {
	srv, calls := countingStore(t)

	_, _, err := execute(t, storeEnv(srv), "register")

	require.Error(t, err)
	assert.Equal(t, int32(0), calls.Load())
}

func TestRegisterMalformedIDIsRejectedLocally(t *testing.T) {
	srv, calls := countingStore(t)

	_, _, err := execute(t, storeEnv(srv),
		"register", "--participant", "who", "--course", "what")

	require.Error(t, err)
	assert.Equal(t, int32(0), calls.Load())
}

func TestRegisterCreatesAndReloads(t *testing.T) {
	srv, calls := countingStore(t)

	out, _, err := execute(t, storeEnv(srv),
		"register",
		"--participant", "6a5b4c3d2e1f0a9b8c7d6e5f",
		"--course", "5f4e1c2b3a4d5e6f7a8b9c0d",
		"--date", "2024-06-10")

	require.NoError(t, err)
	assert.Contains(t, out, "registered: 5f4e1c2b3a4d5e6f7a8b9c0d")
	// One create plus the five-collection reload.
	assert.Equal(t, int32(6), calls.Load())
}

func TestCreateRegistrationGateOnGenericCreate(t *testing.T) {
	srv, calls := countingStore(t)

	_, _, err := execute(t, storeEnv(srv),
		"create", "registrations",
		"--set", "participant=6a5b4c3d2e1f0a9b8c7d6e5f")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, int32(0), calls.Load())
}
