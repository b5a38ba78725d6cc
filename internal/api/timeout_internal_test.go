package api

import (
	"debroglie/internal/api/specs/v1specs"
	"debroglie/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeoutBody(t *testing.T) {
	var res v1specs.Error
	require.NoError(t, res.UnmarshalJSON([]byte(timeoutBody())))
	require.Equal(t, serrors.ErrTimeout.Error(), res.Kind)
	require.Equal(t, "request timed out", res.Message)
}

func TestTimeoutHandler_WritesTimeoutKind(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	handler := http.TimeoutHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}), 10*time.Millisecond, timeoutBody())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bands", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), `"kind":"TIMEOUT"`)
}
