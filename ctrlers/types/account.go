package types

import (
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/finaswap/finatoken/ledger"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
)

// Account is a token holder's balance record.
type Account struct {
	Address types.Address `json:"address"`
	Balance *uint256.Int  `json:"balance"`
}

type acctRLP struct {
	Address types.Address
	Balance []byte
}

func NewAccount(addr types.Address) *Account {
	return &Account{
		Address: addr,
		Balance: uint256.NewInt(0),
	}
}

func (acct *Account) AddBalance(amt *uint256.Int) xerrors.XError {
	if bal, xerr := AddWeight(acct.Balance, amt); xerr != nil {
		return xerr
	} else {
		acct.Balance = bal
	}
	return nil
}

func (acct *Account) SubBalance(amt *uint256.Int) xerrors.XError {
	if xerr := acct.CheckBalance(amt); xerr != nil {
		return xerr
	}
	acct.Balance = new(uint256.Int).Sub(acct.Balance, amt)
	return nil
}

func (acct *Account) CheckBalance(amt *uint256.Int) xerrors.XError {
	if amt.Cmp(acct.Balance) > 0 {
		return xerrors.ErrInsufficientFund.Wrapf("balance: %v, amount: %v", acct.Balance.Dec(), amt.Dec())
	}
	return nil
}

func (acct *Account) GetBalance() *uint256.Int {
	return new(uint256.Int).Set(acct.Balance)
}

func (acct *Account) Key() ledger.LedgerKey {
	return ledger.ToLedgerKey(acct.Address[:])
}

func (acct *Account) Encode() ([]byte, xerrors.XError) {
	if bz, err := rlp.EncodeToBytes(&acctRLP{
		Address: acct.Address,
		Balance: acct.Balance.Bytes(),
	}); err != nil {
		return nil, xerrors.From(err)
	} else {
		return bz, nil
	}
}

func (acct *Account) Decode(d []byte) xerrors.XError {
	r := &acctRLP{}
	if err := rlp.DecodeBytes(d, r); err != nil {
		return xerrors.From(err)
	}
	acct.Address = r.Address
	acct.Balance = new(uint256.Int).SetBytes(r.Balance)
	return nil
}

var _ ledger.ILedgerItem = (*Account)(nil)
