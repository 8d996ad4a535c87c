package types

import (
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
	abcitypes "github.com/tendermint/tendermint/abci/types"
)

type ILedgerHandler interface {
	Query(abcitypes.RequestQuery) ([]byte, xerrors.XError)
	Close() xerrors.XError
}

type IPauseOracle interface {
	IsPaused() bool
}

type IRoleOracle interface {
	HasRole(types.Role, types.Address) bool
}

// IBalanceHelper gives the votes controller the delegator's current balance.
type IBalanceHelper interface {
	BalanceOf(types.Address) *uint256.Int
}

type IAccessGate interface {
	IPauseOracle
	IRoleOracle
}
