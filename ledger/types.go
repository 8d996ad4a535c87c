package ledger

import (
	"bytes"
	"sort"

	"github.com/finaswap/finatoken/types/xerrors"
)

const LEDGERKEYSIZE = 32

type LedgerKey = [32]byte

func ToLedgerKey(s []byte) LedgerKey {
	var ret LedgerKey
	n := len(s)
	if n > LEDGERKEYSIZE {
		n = LEDGERKEYSIZE
	}
	copy(ret[:], s[:n])
	return ret
}

type LedgerKeyList []LedgerKey

func (a LedgerKeyList) Len() int {
	return len(a)
}
func (a LedgerKeyList) Less(i, j int) bool {
	return bytes.Compare(a[i][:], a[j][:]) < 0
}
func (a LedgerKeyList) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

var _ sort.Interface = LedgerKeyList(nil)

type ILedgerItem interface {
	Key() LedgerKey
	Encode() ([]byte, xerrors.XError)
	Decode([]byte) xerrors.XError
}

// ILedger stages items until Commit.
// Items returned by Get are decoded copies, so mutating them never touches
// committed state until they are Set and committed.
type ILedger[T ILedgerItem] interface {
	Set(T) xerrors.XError
	Get(LedgerKey) (T, xerrors.XError)
	Read(LedgerKey) (T, xerrors.XError)
	IterateReadAllItems(func(T) xerrors.XError) xerrors.XError
	IterateUpdatedItems(func(T) xerrors.XError) xerrors.XError
	Commit() xerrors.XError
	Revert()
	Close() xerrors.XError
}
