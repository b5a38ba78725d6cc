package v1handler_test

import (
	"context"
	"debroglie/internal/api/handler/v1handler"
	"debroglie/pkg/serrors"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/stretchr/testify/require"
)

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Kind)
	require.Equal(t, "Internal Server Error", res.Response.Message)
}

func TestNewError_Kinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   serrors.Kind
	}{
		{serrors.With(serrors.ErrDomain, "mass must be positive"), http.StatusBadRequest, serrors.ErrDomain},
		{serrors.KindOnly(serrors.ErrBadRequest), http.StatusBadRequest, serrors.ErrBadRequest},
		{serrors.With(serrors.ErrNotFound, "unknown particle"), http.StatusNotFound, serrors.ErrNotFound},
		{serrors.KindOnly(serrors.ErrTimeout), http.StatusServiceUnavailable, serrors.ErrTimeout},
		{serrors.With(serrors.ErrDataLoad, "band table is not loaded"), http.StatusInternalServerError, serrors.ErrDataLoad},
	}
	h := v1handler.New(v1handler.Deps{})
	for _, tc := range cases {
		t.Run(tc.kind.Error(), func(t *testing.T) {
			res := h.NewError(context.Background(), tc.err)
			require.Equal(t, tc.status, res.StatusCode)
			require.Equal(t, tc.kind.Error(), res.Response.Kind)
			require.Equal(t, tc.status, v1handler.StatusCode(tc.err))
		})
	}
}

func TestNewError_KeepsMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrDomain, "velocity must be a finite non-zero number, got 0"))
	require.Equal(t, "velocity must be a finite non-zero number, got 0", res.Response.Message)
}

func TestHandleError_DecodeErrorsAreBadRequests(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	rec := httptest.NewRecorder()
	h.HandleError(context.Background(), rec, nil, &ogenerrors.DecodeRequestError{Err: errors.New("unexpected EOF")})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	require.Contains(t, rec.Body.String(), `"kind":"BAD_REQUEST"`)
	require.Contains(t, rec.Body.String(), "unexpected EOF")

	rec = httptest.NewRecorder()
	h.HandleError(context.Background(), rec, nil, errors.New("not implemented"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), `"kind":"INTERNAL"`)
}
