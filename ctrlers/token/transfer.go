package token

import (
	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
)

// Mint creates amt tokens for `to`. The caller must have MINTER_ROLE.
func (ctrler *TokenCtrler) Mint(caller, to types.Address, amt *uint256.Int) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if !ctrler.gate.HasRole(types.MINTER_ROLE, caller) {
		return xerrors.ErrUnauthorized.Wrapf("must have minter role to mint")
	}
	if xerr := ctrler.checkPaused(); xerr != nil {
		return xerr
	}
	if types.IsZeroAddress(to) {
		return xerrors.ErrZeroAddress.Wrapf("mint to the zero address")
	}

	height := ctrler.height.Load()
	supply, xerr := ctrlertypes.AddWeight(ctrler.supply.Latest(supplyKey), amt)
	if xerr != nil {
		return xerr
	}
	if xerr := ctrler.supply.CheckWrite(supplyKey, height); xerr != nil {
		return xerr
	}

	acct, xerr := ctrler.findAccount(to)
	if xerr != nil {
		return xerr
	}
	if xerr := acct.AddBalance(amt); xerr != nil {
		ctrler.acctLedger.Revert()
		return xerr
	}

	return ctrler.commitBalanceChange(nil, &to, amt, func() xerrors.XError {
		return ctrler.supply.Write(supplyKey, height, supply)
	}, acct)
}

// Burn destroys amt tokens of caller.
func (ctrler *TokenCtrler) Burn(caller types.Address, amt *uint256.Int) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if xerr := ctrler.checkPaused(); xerr != nil {
		return xerr
	}

	acct, xerr := ctrler.findAccount(caller)
	if xerr != nil {
		return xerr
	}
	if xerr := acct.SubBalance(amt); xerr != nil {
		ctrler.acctLedger.Revert()
		return xerr.Wrapf("burn amount exceeds balance")
	}

	height := ctrler.height.Load()
	supply, xerr := ctrlertypes.SubWeight(ctrler.supply.Latest(supplyKey), amt)
	if xerr != nil {
		ctrler.acctLedger.Revert()
		return xerr
	}
	if xerr := ctrler.supply.CheckWrite(supplyKey, height); xerr != nil {
		ctrler.acctLedger.Revert()
		return xerr
	}

	return ctrler.commitBalanceChange(&caller, nil, amt, func() xerrors.XError {
		return ctrler.supply.Write(supplyKey, height, supply)
	}, acct)
}

// Transfer moves amt tokens from `from` to `to`.
func (ctrler *TokenCtrler) Transfer(from, to types.Address, amt *uint256.Int) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if xerr := ctrler.checkPaused(); xerr != nil {
		return xerr
	}
	if types.IsZeroAddress(from) {
		return xerrors.ErrZeroAddress.Wrapf("transfer from the zero address")
	}
	if types.IsZeroAddress(to) {
		return xerrors.ErrZeroAddress.Wrapf("transfer to the zero address")
	}

	sender, xerr := ctrler.findAccount(from)
	if xerr != nil {
		return xerr
	}
	if xerr := sender.SubBalance(amt); xerr != nil {
		ctrler.acctLedger.Revert()
		return xerr.Wrapf("transfer amount exceeds balance")
	}

	// findAccount returns the same staged item for the same address
	receiver, xerr := ctrler.findAccount(to)
	if xerr != nil {
		ctrler.acctLedger.Revert()
		return xerr
	}
	if xerr := receiver.AddBalance(amt); xerr != nil {
		ctrler.acctLedger.Revert()
		return xerr
	}

	return ctrler.commitBalanceChange(&from, &to, amt, nil, sender, receiver)
}

// commitBalanceChange moves votes, runs after and commits the staged accounts.
// If moving votes fails, the staged accounts are dropped.
func (ctrler *TokenCtrler) commitBalanceChange(from, to *types.Address, amt *uint256.Int, after func() xerrors.XError, accts ...*ctrlertypes.Account) xerrors.XError {
	for _, acct := range accts {
		if xerr := ctrler.acctLedger.Set(acct); xerr != nil {
			ctrler.acctLedger.Revert()
			return xerr
		}
	}

	if xerr := ctrler.votes.OnBalanceChange(from, to, amt); xerr != nil {
		ctrler.acctLedger.Revert()
		return xerr
	}
	if after != nil {
		if xerr := after(); xerr != nil {
			ctrler.logger.Error("balance change is partially applied", "error", xerr.Error())
			ctrler.acctLedger.Revert()
			return xerr
		}
	}
	_ = ctrler.acctLedger.IterateUpdatedItems(func(acct *ctrlertypes.Account) xerrors.XError {
		ctrler.logger.Debug("commit account", "address", acct.Address.Hex(), "balance", acct.Balance.Dec())
		return nil
	})
	if xerr := ctrler.acctLedger.Commit(); xerr != nil {
		ctrler.logger.Error("fail to commit accounts", "error", xerr.Error())
		return xerr
	}

	var _from, _to types.Address
	if from != nil {
		_from = *from
	}
	if to != nil {
		_to = *to
	}
	ctrler.emit(ctrlertypes.TransferEvent(_from, _to, amt))
	ctrler.logger.Debug("transfer", "from", _from.Hex(), "to", _to.Hex(), "amount", amt.Dec())
	return nil
}
