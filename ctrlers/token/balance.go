package token

import (
	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/ledger"
	"github.com/finaswap/finatoken/types"
	"github.com/holiman/uint256"
)

func readBalance(acctLedger ledger.ILedger[*ctrlertypes.Account], addr types.Address) *uint256.Int {
	if acct, xerr := acctLedger.Read(ledger.ToLedgerKey(addr[:])); xerr != nil {
		// not found
		return uint256.NewInt(0)
	} else {
		return acct.GetBalance()
	}
}

// balanceReader reads committed balances without TokenCtrler.mtx,
// which is already held whenever the votes controller asks for one.
type balanceReader struct {
	acctLedger ledger.ILedger[*ctrlertypes.Account]
}

func (r *balanceReader) BalanceOf(addr types.Address) *uint256.Int {
	return readBalance(r.acctLedger, addr)
}

var _ ctrlertypes.IBalanceHelper = (*balanceReader)(nil)
