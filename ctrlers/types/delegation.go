package types

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/finaswap/finatoken/ledger"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
)

// Delegation is the delegation edge of one account and its signature nonce.
// The zero Delegatee means the account has not delegated.
type Delegation struct {
	Delegator types.Address `json:"delegator"`
	Delegatee types.Address `json:"delegatee"`
	Nonce     uint64        `json:"nonce,string"`
}

func NewDelegation(delegator types.Address) *Delegation {
	return &Delegation{
		Delegator: delegator,
	}
}

func (d *Delegation) HasDelegatee() bool {
	return !types.IsZeroAddress(d.Delegatee)
}

func (d *Delegation) CheckNonce(n uint64) xerrors.XError {
	if d.Nonce != n {
		return xerrors.ErrBadNonce.Wrapf("expected: %v, actual: %v, address: %v", d.Nonce, n, d.Delegator)
	}
	return nil
}

// UseNonce consumes n if it is the current nonce.
func (d *Delegation) UseNonce(n uint64) xerrors.XError {
	if xerr := d.CheckNonce(n); xerr != nil {
		return xerr
	}
	d.Nonce++
	return nil
}

func (d *Delegation) Key() ledger.LedgerKey {
	return ledger.ToLedgerKey(d.Delegator[:])
}

func (d *Delegation) Encode() ([]byte, xerrors.XError) {
	if bz, err := rlp.EncodeToBytes(d); err != nil {
		return nil, xerrors.From(err)
	} else {
		return bz, nil
	}
}

func (d *Delegation) Decode(bz []byte) xerrors.XError {
	if err := rlp.DecodeBytes(bz, d); err != nil {
		return xerrors.From(err)
	}
	return nil
}

var _ ledger.ILedgerItem = (*Delegation)(nil)
