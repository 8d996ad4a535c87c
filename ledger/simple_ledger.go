package ledger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/finaswap/finatoken/types/xerrors"
	tmdb "github.com/tendermint/tm-db"
)

type SimpleLedger[T ILedgerItem] struct {
	db          tmdb.DB
	cachedItems *memItems[T]
	getNewItem  func() T

	mtx sync.RWMutex
}

func NewSimpleLedger[T ILedgerItem](db tmdb.DB, cb func() T) *SimpleLedger[T] {
	return &SimpleLedger[T]{
		db:          db,
		cachedItems: newMemItems[T](),
		getNewItem:  cb,
	}
}

// NewMemLedger keeps committed items in an in-process tm-db MemDB.
func NewMemLedger[T ILedgerItem](cb func() T) *SimpleLedger[T] {
	return NewSimpleLedger[T](tmdb.NewMemDB(), cb)
}

func (ledger *SimpleLedger[T]) Set(item T) xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	ledger.cachedItems.setUpdatedItem(item)
	ledger.cachedItems.setGotItem(item)
	return nil
}

func (ledger *SimpleLedger[T]) Get(key LedgerKey) (T, xerrors.XError) {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	return ledger.get(key)
}

func (ledger *SimpleLedger[T]) get(key LedgerKey) (T, xerrors.XError) {
	// search in cachedItems
	if item, ok := ledger.cachedItems.getGotItem(key); ok {
		return item, nil
	}

	var emptyNil T
	if item, xerr := ledger.read(key); xerr != nil {
		return emptyNil, xerr
	} else {
		ledger.cachedItems.setGotItem(item)
		return item, nil
	}
}

// Read only reads a committed item. It never fills cachedItems.
func (ledger *SimpleLedger[T]) Read(key LedgerKey) (T, xerrors.XError) {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	return ledger.read(key)
}

func (ledger *SimpleLedger[T]) read(key LedgerKey) (T, xerrors.XError) {
	var emptyNil T
	item := ledger.getNewItem()

	if bz, err := ledger.db.Get(key[:]); err != nil {
		return emptyNil, xerrors.From(err)
	} else if bz == nil {
		return emptyNil, xerrors.ErrNotFoundResult
	} else if xerr := item.Decode(bz); xerr != nil {
		return emptyNil, xerr
	} else if key != item.Key() {
		return emptyNil, xerrors.New("simple_ledger: the key is compromised - the requested key is not equal to the key encoded in value")
	} else {
		return item, nil
	}
}

func (ledger *SimpleLedger[T]) IterateReadAllItems(cb func(T) xerrors.XError) xerrors.XError {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	iter, err := ledger.db.Iterator(nil, nil)
	if err != nil {
		return xerrors.From(err)
	}
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		item := ledger.getNewItem()
		if xerr := item.Decode(iter.Value()); xerr != nil {
			return xerrors.From(fmt.Errorf("unable to decode item - key:%X, error:%v", iter.Key(), xerr))
		} else if item.Key() != ToLedgerKey(iter.Key()) {
			return xerrors.From(fmt.Errorf("wrong key - key:%X vs. item's key:%X", iter.Key(), item.Key()))
		} else if xerr := cb(item); xerr != nil {
			return xerr
		}
	}
	return xerrors.From(iter.Error())
}

func (ledger *SimpleLedger[T]) IterateUpdatedItems(cb func(T) xerrors.XError) xerrors.XError {
	ledger.mtx.RLock()
	defer ledger.mtx.RUnlock()

	return iterateItems(ledger.cachedItems.updatedItems, cb)
}

// Commit writes all updated items in one batch.
func (ledger *SimpleLedger[T]) Commit() xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	var keys LedgerKeyList
	for k := range ledger.cachedItems.updatedItems {
		keys = append(keys, k)
	}
	sort.Sort(keys)

	batch := ledger.db.NewBatch()
	defer batch.Close()

	for _, k := range keys {
		_val := ledger.cachedItems.updatedItems[k]
		_key := _val.Key()
		if bz, xerr := _val.Encode(); xerr != nil {
			return xerr
		} else if err := batch.Set(_key[:], bz); err != nil {
			return xerrors.From(err)
		}
	}

	if err := batch.Write(); err != nil {
		return xerrors.From(err)
	}
	ledger.cachedItems.reset()
	return nil
}

// Revert drops every staged item.
func (ledger *SimpleLedger[T]) Revert() {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	ledger.cachedItems.reset()
}

func (ledger *SimpleLedger[T]) Close() xerrors.XError {
	ledger.mtx.Lock()
	defer ledger.mtx.Unlock()

	if ledger.db != nil {
		if err := ledger.db.Close(); err != nil {
			return xerrors.From(err)
		}
	}

	ledger.db = nil
	ledger.cachedItems.reset()
	return nil
}

var _ ILedger[ILedgerItem] = (*SimpleLedger[ILedgerItem])(nil)
