package serrors_test

import (
	"debroglie/pkg/serrors"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type parseError struct{ field string }

func (e parseError) Error() string { return "could not parse " + e.field }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrDomain,
		serrors.ErrDataLoad,
		serrors.ErrBadRequest,
		serrors.ErrNotFound,
		serrors.ErrInternal,
		serrors.ErrTimeout,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("file not found")

	e1 := serrors.With(serrors.ErrDomain, "velocity must be non-zero, got %g", 0.0)
	require.Equal(t, "velocity must be non-zero, got 0", e1.Error())

	e2 := serrors.Wrap(serrors.ErrDataLoad, base, "reading band table")
	require.Equal(t, "reading band table: file not found", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrDomain)
	require.Equal(t, "DOMAIN", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := parseError{"lower"}
	e := serrors.Wrap(serrors.ErrDataLoad, base, "row 3")

	require.ErrorIs(t, e, serrors.ErrDataLoad)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrDomain)

	wrapped := fmt.Errorf("loading table: %w", e)
	require.ErrorIs(t, wrapped, serrors.ErrDataLoad)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &parseError{"upper"}
	e := serrors.Wrap(serrors.ErrDataLoad, base, "row 4")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrDataLoad, k)

	var pe *parseError
	require.ErrorAs(t, e, &pe)
	require.Equal(t, base, pe)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrInternal, base, "rendering")
	require.Equal(t, serrors.ErrInternal, e.Kind())
	require.Equal(t, "rendering", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrDomain, serrors.KindOf(
		fmt.Errorf("calculating: %w", serrors.With(serrors.ErrDomain, "mass must be positive"))))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}
