package controller

import (
	"net/http"
	"net/http/pprof"
	"strconv"
	"strings"
	"time"
)

// pprofBase is the path pprof.Index resolves named profiles against.
const pprofBase = "/debug/pprof"

// defaultProfileDuration is how long pprof.Profile samples when no seconds
// parameter is given.
const defaultProfileDuration = 30 * time.Second

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// under /debug/pprof/.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(pprofBase+"/", pprof.Index)
	mux.HandleFunc(pprofBase+"/cmdline", pprof.Cmdline)
	mux.HandleFunc(pprofBase+"/profile", pprof.Profile)
	mux.HandleFunc(pprofBase+"/symbol", pprof.Symbol)
	mux.HandleFunc(pprofBase+"/trace", pprof.Trace)

	return mux
}

// PprofPrefix normalizes prefix to a leading slash and no trailing slash.
func PprofPrefix(prefix string) string {
	return "/" + strings.Trim(prefix, "/")
}

// WithPprof serves PprofMux under prefix, e.g. "/ops/pprof". Request paths are
// rewritten onto /debug/pprof so named profiles resolve under any prefix.
func WithPprof(prefix string) http.Handler {
	prefix = PprofPrefix(prefix)
	mux := PprofMux()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rest, ok := strings.CutPrefix(r.URL.Path, prefix)
		if !ok || (rest != "" && rest[0] != '/') {
			http.NotFound(w, r)

			return
		}
		if rest == "" {
			rest = "/"
		}

		r = r.Clone(r.Context())
		r.URL.Path = pprofBase + rest
		r.URL.RawPath = ""
		fitProfileDuration(r)

		mux.ServeHTTP(w, r)
	})
}

// fitProfileDuration shortens the default CPU profile below the server's
// write timeout; pprof.Profile rejects durations that would outlive it.
func fitProfileDuration(r *http.Request) {
	if r.URL.Path != pprofBase+"/profile" {
		return
	}
	q := r.URL.Query()
	if q.Get("seconds") != "" {
		return
	}
	srv, ok := r.Context().Value(http.ServerContextKey).(*http.Server)
	if !ok || srv.WriteTimeout <= 0 || srv.WriteTimeout > defaultProfileDuration {
		return
	}

	seconds := max(int(srv.WriteTimeout/time.Second)-1, 1)
	q.Set("seconds", strconv.Itoa(seconds))
	r.URL.RawQuery = q.Encode()
}
