package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	xerr := ErrBadNonce.Wrapf("expected: %d, actual: %d", 1, 0)
	require.ErrorIs(t, xerr, ErrBadNonce)
	require.NotErrorIs(t, xerr, ErrExpired)
	require.Equal(t, ErrCodeBadNonce, xerr.Code())
	require.Equal(t, "invalid nonce<<expected: 1, actual: 0", xerr.Error())

	// wrapped by fmt
	err := fmt.Errorf("delegateBySig: %w", xerr)
	require.ErrorIs(t, err, ErrBadNonce)
	require.Equal(t, ErrCodeBadNonce, From(err).Code())

	// generic errors only match themselves
	g0, g1 := New("a"), New("a")
	require.ErrorIs(t, g0, g0)
	require.NotErrorIs(t, g0, g1)
}

func TestFrom(t *testing.T) {
	require.Nil(t, From(nil))

	xerr := From(errors.New("disk"))
	require.Equal(t, ErrCodeGeneric, xerr.Code())
	require.Equal(t, "disk", xerr.Error())

	cause := errors.New("cause")
	require.Equal(t, cause, ErrQuery.Wrap(cause).Unwrap())
}
