package serrors_test

import (
	"errors"
	"fmt"
	"testing"
	"toolserver/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestWith_MatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrNotFound, "todo %d not found", 42)

	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.NotErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "todo 42 not found", err.Error())
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := serrors.Wrap(serrors.ErrInternal, cause, "could not reach database")

	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "could not reach database: connection refused", err.Error())
}

func TestWrap_SurvivesFurtherWrapping(t *testing.T) {
	err := serrors.With(serrors.ErrUnauthorized, "bad token")
	wrapped := fmt.Errorf("handling request: %w", err)

	require.ErrorIs(t, wrapped, serrors.ErrUnauthorized)

	var sErr *serrors.Error
	require.ErrorAs(t, wrapped, &sErr)
	require.Equal(t, serrors.ErrUnauthorized, sErr.Kind())
	require.Equal(t, "bad token", sErr.Message())
}

func TestKindsAreDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrTimeout,
	}
	for i, a := range kinds {
		for j, b := range kinds {
			if i == j {
				continue
			}
			require.NotErrorIs(t, serrors.With(a, "x"), b)
		}
	}
}
