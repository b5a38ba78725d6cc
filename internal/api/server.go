// Package api configures and exposes the optional HTTP server of the
// calculator: the v1 JSON API, prometheus metrics, the OpenAPI document
// and its swagger UI.
package api

import (
	"debroglie/internal/api/handler/v1handler"
	"debroglie/internal/api/specs/v1specs"
	"debroglie/internal/config"
	"debroglie/pkg/controller"
	"debroglie/pkg/metrics"
	"debroglie/pkg/serrors"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --target specs/v1specs --package v1specs --clean specs/v1.yaml

// maxBodyBytes bounds v1 request bodies.
const maxBodyBytes = 1 << 16

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is applied to every request through http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes limits the size of request headers.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigin is the CORS origin allowed to call the API.
	AllowedOrigin string
	// PprofPath mounts net/http/pprof under this path when non-empty. The
	// profiling endpoints are not subject to RequestTimeout.
	PprofPath string
	// Registry receives the HTTP collectors and is served at MetricsPath.
	Registry *prometheus.Registry
	// MeterProvider receives the v1 server's otel instruments; the global provider when nil.
	MeterProvider metric.MeterProvider
}

// NewOptions maps the HTTP section of the configuration to Options.
func NewOptions(cfg *config.Config, registry *prometheus.Registry, mp metric.MeterProvider) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigin:     cfg.HTTP.AllowedOrigin,
		PprofPath:         cfg.HTTP.PprofPath,
		Registry:          registry,
		MeterProvider:     mp,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are exported through registry.
func NewMeterProvider(registry prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// timeoutBody is the response written by http.TimeoutHandler.
func timeoutBody() string {
	body, _ := (&v1specs.Error{
		Kind:    serrors.ErrTimeout.Error(),
		Message: "request timed out",
	}).MarshalJSON()

	return string(body)
}

// Handler builds the routed and wrapped HTTP handler.
func Handler(deps Deps, opts Options) (http.Handler, error) {
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	httpMetrics, err := metrics.NewHTTP(opts.Registry)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"De Broglie Calculator",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	v1Srv, err := v1handler.NewServer(deps.Deps,
		v1specs.WithMeterProvider(opts.MeterProvider),
		v1specs.WithPathPrefix("/v1"))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	mux.Handle("/v1/", http.MaxBytesHandler(v1Srv, maxBodyBytes))

	var handler http.Handler = mux
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody())
	}

	// pprof, outside the request timeout
	if opts.PprofPath != "" {
		prefix := controller.PprofPrefix(opts.PprofPath)
		if prefix == "/" {
			return nil, fmt.Errorf("pprof path %q would shadow every route", opts.PprofPath)
		}
		root := http.NewServeMux()
		root.Handle(prefix, controller.WithPprof(prefix))
		root.Handle(prefix+"/", controller.WithPprof(prefix))
		root.Handle("/", handler)
		handler = root
	}

	// cors, metrics and logger
	handler = controller.WithCORS(opts.AllowedOrigin, handler)
	handler = controller.WithMetrics(httpMetrics, handler)
	handler = controller.WithLogger(handler)

	return handler, nil
}

// NewServer wires up and returns a configured *http.Server.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := Handler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
