package token

import (
	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/ctrlers/votes"
	"github.com/finaswap/finatoken/genesis"
	"github.com/finaswap/finatoken/types/xerrors"
)

// InitLedger allocates the genesis balances and delegations at height 0.
// It is allowed once, before any block has begun and before any supply has been written.
// Either the whole allocation is committed or nothing.
func (ctrler *TokenCtrler) InitLedger(appState *genesis.GenesisAppState) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if ctrler.initialized {
		return xerrors.New("token ledger is already initialized")
	}
	height := ctrler.height.Load()
	if ctrler.bctx != nil || height > 0 || ctrler.supply.NumCheckpoints(supplyKey) > 0 {
		return xerrors.ErrOrderingViolation.Wrapf("genesis after the ledger has started, height: %d", height)
	}
	if xerr := appState.Validate(); xerr != nil {
		return xerr
	}

	supply := appState.TotalSupply()
	if xerr := ctrler.supply.CheckWrite(supplyKey, height); xerr != nil {
		return xerr
	}

	var delegs []*votes.InitialDelegation
	for _, h := range appState.Holders {
		acct, xerr := ctrler.findAccount(h.Address)
		if xerr != nil {
			ctrler.acctLedger.Revert()
			return xerr
		}
		if xerr := acct.AddBalance(h.Balance); xerr != nil {
			ctrler.acctLedger.Revert()
			return xerr
		}
		if xerr := ctrler.acctLedger.Set(acct); xerr != nil {
			ctrler.acctLedger.Revert()
			return xerr
		}
		delegs = append(delegs, &votes.InitialDelegation{
			Delegator: h.Address,
			Delegatee: h.Delegatee,
			Votes:     h.Balance.Clone(),
		})
	}

	if xerr := ctrler.votes.InitDelegations(delegs); xerr != nil {
		ctrler.acctLedger.Revert()
		return xerr
	}
	if xerr := ctrler.supply.Write(supplyKey, height, supply); xerr != nil {
		ctrler.logger.Error("genesis is partially applied", "error", xerr.Error())
		ctrler.acctLedger.Revert()
		return xerr
	}
	if xerr := ctrler.acctLedger.Commit(); xerr != nil {
		ctrler.logger.Error("fail to commit genesis accounts", "error", xerr.Error())
		return xerr
	}

	ctrler.initialized = true
	ctrler.logger.Info("genesis allocated", "holders", len(appState.Holders), "supply", supply.Dec(), "height", height)
	return nil
}

// ExportLedger returns the committed non-zero balances and their delegatees as a genesis app state.
func (ctrler *TokenCtrler) ExportLedger() (*genesis.GenesisAppState, xerrors.XError) {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	appState := genesis.NewGenesisAppState()
	xerr := ctrler.acctLedger.IterateReadAllItems(func(acct *ctrlertypes.Account) xerrors.XError {
		if acct.Balance.IsZero() {
			return nil
		}
		appState.Holders = append(appState.Holders, &genesis.GenesisHolder{
			Address:   acct.Address,
			Balance:   acct.Balance.Clone(),
			Delegatee: ctrler.votes.Delegates(acct.Address),
		})
		return nil
	})
	if xerr != nil {
		return nil, xerr
	}
	return appState, nil
}
