// Package v1handler implements the generated v1 API on top of calculator.Calculator.
package v1handler

import (
	"context"
	"debroglie/internal/api/specs/v1specs"
	"debroglie/internal/calculator"
	"debroglie/pkg/logger"
	"debroglie/pkg/serrors"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Deps are the services the handlers call into.
type Deps struct {
	Calculator calculator.Calculator
}

// Handler serves the v1 operations. Routing, request decoding and response
// encoding are done by the generated v1specs.Server.
type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

// New returns a Handler calling into deps.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// NewServer returns the generated v1 server backed by a Handler, with
// HandleError installed for requests rejected before reaching the handler.
func NewServer(deps Deps, opts ...v1specs.ServerOption) (*v1specs.Server, error) {
	h := New(deps)
	opts = append([]v1specs.ServerOption{v1specs.WithErrorHandler(h.HandleError)}, opts...)

	srv, err := v1specs.NewServer(h, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 api server: %w", err)
	}

	return srv, nil
}

// StatusCode maps a semantic error kind to an HTTP status code.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, serrors.ErrDomain), errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewError converts err into the API error body. Internal errors are logged
// and their message is not exposed.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	status := StatusCode(err)
	kind := serrors.ErrInternal
	if k := serrors.KindOf(err); k != nil {
		kind = k
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
		message = http.StatusText(status)
	}

	return &v1specs.ErrorStatusCode{
		StatusCode: status,
		Response: v1specs.Error{
			Kind:    kind.Error(),
			Message: message,
		},
	}
}

// HandleError renders errors raised by the generated server itself. Request
// bodies and query parameters that fail to decode are reported as BAD_REQUEST.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	var (
		reqErr    *ogenerrors.DecodeRequestError
		paramsErr *ogenerrors.DecodeParamsError
	)
	if errors.As(err, &reqErr) || errors.As(err, &paramsErr) {
		err = serrors.Wrap(serrors.ErrBadRequest, err, "invalid request")
	}

	WriteError(ctx, w, h.NewError(ctx, err))
}

// WriteError writes res as a JSON error response.
func WriteError(ctx context.Context, w http.ResponseWriter, res *v1specs.ErrorStatusCode) {
	var e jx.Encoder
	res.Response.Encode(&e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Warn(ctx, "could not write error response", zap.Error(err))
	}
}
