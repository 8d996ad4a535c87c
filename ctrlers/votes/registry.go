package votes

import (
	"errors"

	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/ledger"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
)

// registry keeps delegation edges and signature nonces.
// Changes are staged in delegLedger until commit.
type registry struct {
	delegLedger ledger.ILedger[*ctrlertypes.Delegation]
}

func newRegistry() *registry {
	return &registry{
		delegLedger: ledger.NewMemLedger[*ctrlertypes.Delegation](func() *ctrlertypes.Delegation {
			return &ctrlertypes.Delegation{}
		}),
	}
}

// get returns the staged record of addr, or a new default one.
func (reg *registry) get(addr types.Address) (*ctrlertypes.Delegation, xerrors.XError) {
	d, xerr := reg.delegLedger.Get(ledger.ToLedgerKey(addr[:]))
	if xerr != nil {
		if errors.Is(xerr, xerrors.ErrNotFoundResult) {
			return ctrlertypes.NewDelegation(addr), nil
		}
		return nil, xerr
	}
	return d, nil
}

// read returns the committed record of addr.
func (reg *registry) read(addr types.Address) *ctrlertypes.Delegation {
	d, xerr := reg.delegLedger.Read(ledger.ToLedgerKey(addr[:]))
	if xerr != nil {
		return ctrlertypes.NewDelegation(addr)
	}
	return d
}

func (reg *registry) set(d *ctrlertypes.Delegation) xerrors.XError {
	return reg.delegLedger.Set(d)
}

func (reg *registry) commit() xerrors.XError {
	return reg.delegLedger.Commit()
}

func (reg *registry) revert() {
	reg.delegLedger.Revert()
}

func (reg *registry) close() xerrors.XError {
	return reg.delegLedger.Close()
}

// DelegateeOf returns the delegatee of addr.
// The second value is false if addr has never delegated or delegated to the zero address.
func (reg *registry) DelegateeOf(addr types.Address) (types.Address, bool) {
	d := reg.read(addr)
	return d.Delegatee, d.HasDelegatee()
}

func (reg *registry) NonceOf(addr types.Address) uint64 {
	return reg.read(addr).Nonce
}
