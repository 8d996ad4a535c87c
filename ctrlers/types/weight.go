package types

import (
	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
)

const MaxWeightBits = 96

// MaxWeight is 2^96 - 1. No balance, total supply or voting weight may exceed it.
var MaxWeight = new(uint256.Int).Sub(
	new(uint256.Int).Lsh(uint256.NewInt(1), MaxWeightBits),
	uint256.NewInt(1))

func CheckWeight(w *uint256.Int) xerrors.XError {
	if w.Cmp(MaxWeight) > 0 {
		return xerrors.ErrOverflow.Wrapf("%v exceeds %d bits", w.Dec(), MaxWeightBits)
	}
	return nil
}

// AddWeight returns a new a+b or ErrOverflow.
func AddWeight(a, b *uint256.Int) (*uint256.Int, xerrors.XError) {
	ret, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, xerrors.ErrOverflow.Wrapf("%v + %v overflows 256 bits", a.Dec(), b.Dec())
	}
	if xerr := CheckWeight(ret); xerr != nil {
		return nil, xerr
	}
	return ret, nil
}

// SubWeight returns a new a-b or ErrUnderflow.
func SubWeight(a, b *uint256.Int) (*uint256.Int, xerrors.XError) {
	if a.Lt(b) {
		return nil, xerrors.ErrUnderflow.Wrapf("%v - %v", a.Dec(), b.Dec())
	}
	return new(uint256.Int).Sub(a, b), nil
}
