package controller_test

import (
	"debroglie/pkg/controller"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestPprofMux_Index(t *testing.T) {
	rec := serve(controller.PprofMux(), "/debug/pprof/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestWithPprof_CustomPrefix(t *testing.T) {
	h := controller.WithPprof("ops/pprof/")

	rec := serve(h, "/ops/pprof/goroutine?debug=1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "goroutine profile:")

	rec = serve(h, "/ops/pprof/heap?debug=1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "heap profile:")

	rec = serve(h, "/ops/pprof/cmdline")
	require.Equal(t, http.StatusOK, rec.Code)

	for _, path := range []string{"/ops/pprof", "/ops/pprof/"} {
		rec = serve(h, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Contains(t, rec.Body.String(), "Types of profiles available", path)
	}

	rec = serve(h, "/ops/pprofile")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWithPprof_ProfileFitsWriteTimeout(t *testing.T) {
	srv := httptest.NewUnstartedServer(controller.WithPprof("/debug/pprof"))
	srv.Config.WriteTimeout = 2 * time.Second
	srv.Start()
	t.Cleanup(srv.Close)

	res, err := http.Get(srv.URL + "/debug/pprof/profile") //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode, string(body))
	require.Equal(t, "application/octet-stream", res.Header.Get("Content-Type"))
	require.NotEmpty(t, body)
}
