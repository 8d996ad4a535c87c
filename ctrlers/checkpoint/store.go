package checkpoint

import (
	"sync"

	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
)

// Store keeps a History per account.
// Readers only take the read lock; past checkpoints never change once written.
type Store struct {
	histories map[types.Address]*History

	mtx sync.RWMutex
}

func NewStore() *Store {
	return &Store{
		histories: make(map[types.Address]*History),
	}
}

func (store *Store) CheckWrite(addr types.Address, height int64) xerrors.XError {
	store.mtx.RLock()
	defer store.mtx.RUnlock()

	if h, ok := store.histories[addr]; ok {
		return h.CheckPush(height)
	}
	return nil
}

func (store *Store) Write(addr types.Address, height int64, weight *uint256.Int) xerrors.XError {
	if xerr := ctrlertypes.CheckWeight(weight); xerr != nil {
		return xerr
	}

	store.mtx.Lock()
	defer store.mtx.Unlock()

	h, ok := store.histories[addr]
	if !ok {
		h = &History{}
	}
	if xerr := h.Push(height, weight); xerr != nil {
		return xerr
	}
	if !ok {
		store.histories[addr] = h
	}
	return nil
}

func (store *Store) NumCheckpoints(addr types.Address) int {
	store.mtx.RLock()
	defer store.mtx.RUnlock()

	if h, ok := store.histories[addr]; ok {
		return h.Len()
	}
	return 0
}

func (store *Store) CheckpointAt(addr types.Address, idx int) (Checkpoint, xerrors.XError) {
	store.mtx.RLock()
	defer store.mtx.RUnlock()

	h, ok := store.histories[addr]
	if !ok {
		h = &History{}
	}
	return h.At(idx)
}

func (store *Store) Checkpoints(addr types.Address) []Checkpoint {
	store.mtx.RLock()
	defer store.mtx.RUnlock()

	if h, ok := store.histories[addr]; ok {
		return h.All()
	}
	return nil
}

func (store *Store) Latest(addr types.Address) *uint256.Int {
	store.mtx.RLock()
	defer store.mtx.RUnlock()

	if h, ok := store.histories[addr]; ok {
		return h.Latest()
	}
	return uint256.NewInt(0)
}

// WeightAt returns the weight of addr at the end of block height.
// Blocks at or after current are not finished yet and can not be queried.
func (store *Store) WeightAt(addr types.Address, height, current int64) (*uint256.Int, xerrors.XError) {
	if height >= current {
		return nil, xerrors.ErrFutureQuery.Wrapf("requested: %d, current: %d", height, current)
	}

	store.mtx.RLock()
	defer store.mtx.RUnlock()

	if h, ok := store.histories[addr]; ok {
		return h.LowerLookup(height), nil
	}
	return uint256.NewInt(0), nil
}
