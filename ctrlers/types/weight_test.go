package types

import (
	"testing"

	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestMaxWeight(t *testing.T) {
	require.Equal(t, MaxWeightBits, MaxWeight.BitLen())
	require.NoError(t, CheckWeight(MaxWeight))

	over := new(uint256.Int).AddUint64(MaxWeight, 1)
	require.ErrorIs(t, CheckWeight(over), xerrors.ErrOverflow)
}

func TestAddWeight(t *testing.T) {
	w, xerr := AddWeight(uint256.NewInt(100), uint256.NewInt(20))
	require.NoError(t, xerr)
	require.Equal(t, uint64(120), w.Uint64())

	_, xerr = AddWeight(MaxWeight, uint256.NewInt(1))
	require.ErrorIs(t, xerr, xerrors.ErrOverflow)

	maxU256 := new(uint256.Int).SetAllOne()
	_, xerr = AddWeight(maxU256, uint256.NewInt(1))
	require.ErrorIs(t, xerr, xerrors.ErrOverflow)
}

func TestSubWeight(t *testing.T) {
	a := uint256.NewInt(100)
	w, xerr := SubWeight(a, uint256.NewInt(100))
	require.NoError(t, xerr)
	require.True(t, w.IsZero())
	// operands are never modified
	require.Equal(t, uint64(100), a.Uint64())

	_, xerr = SubWeight(uint256.NewInt(1), uint256.NewInt(2))
	require.ErrorIs(t, xerr, xerrors.ErrUnderflow)
}
