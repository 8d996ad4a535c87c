package votes

import (
	"github.com/finaswap/finatoken/ctrlers/checkpoint"
	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
	abcitypes "github.com/tendermint/tendermint/abci/types"
)

type weightChange struct {
	addr types.Address
	prev *uint256.Int
	curr *uint256.Int
}

// moveOp is a validated vote move. Applying it can not fail
// as long as nothing else writes to the store in between.
type moveOp struct {
	height  int64
	changes []weightChange
}

func sameDelegate(a, b *types.Address) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// prepareMove checks that amt can be moved from the weight of `from` to the weight of `to`
// at height. A nil side means votes come from or go to nowhere.
func prepareMove(store *checkpoint.Store, from, to *types.Address, amt *uint256.Int, height int64) (*moveOp, xerrors.XError) {
	op := &moveOp{height: height}
	if amt.IsZero() || sameDelegate(from, to) {
		return op, nil
	}

	if from != nil {
		if xerr := store.CheckWrite(*from, height); xerr != nil {
			return nil, xerr
		}
		prev := store.Latest(*from)
		curr, xerr := ctrlertypes.SubWeight(prev, amt)
		if xerr != nil {
			return nil, xerr.Wrapf("delegate: %v", from.Hex())
		}
		op.changes = append(op.changes, weightChange{addr: *from, prev: prev, curr: curr})
	}

	if to != nil {
		if xerr := store.CheckWrite(*to, height); xerr != nil {
			return nil, xerr
		}
		prev := store.Latest(*to)
		curr, xerr := ctrlertypes.AddWeight(prev, amt)
		if xerr != nil {
			return nil, xerr.Wrapf("delegate: %v", to.Hex())
		}
		op.changes = append(op.changes, weightChange{addr: *to, prev: prev, curr: curr})
	}

	return op, nil
}

func (op *moveOp) apply(store *checkpoint.Store) ([]abcitypes.Event, xerrors.XError) {
	var evts []abcitypes.Event
	for _, c := range op.changes {
		if xerr := store.Write(c.addr, op.height, c.curr); xerr != nil {
			return evts, xerr
		}
		evts = append(evts, ctrlertypes.DelegateVotesChangedEvent(c.addr, c.prev, c.curr))
	}
	return evts, nil
}

// OnBalanceChange moves amt votes from the delegatee of sender to the delegatee of receiver.
// A nil sender means minting and a nil receiver means burning.
// Either all affected checkpoints are written or none.
func (ctrler *VotesCtrler) OnBalanceChange(sender, receiver *types.Address, amt *uint256.Int) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	var from, to *types.Address
	if sender != nil {
		if d, ok := ctrler.reg.DelegateeOf(*sender); ok {
			from = &d
		}
	}
	if receiver != nil {
		if d, ok := ctrler.reg.DelegateeOf(*receiver); ok {
			to = &d
		}
	}

	op, xerr := prepareMove(ctrler.store, from, to, amt, ctrler.height.Load())
	if xerr != nil {
		ctrler.logger.Debug("reject balance change", "amount", amt.Dec(), "error", xerr.Error())
		return xerr
	}
	return ctrler.applyMove(op)
}

func (ctrler *VotesCtrler) applyMove(op *moveOp) xerrors.XError {
	evts, xerr := op.apply(ctrler.store)
	if xerr != nil {
		ctrler.logger.Error("fail to write checkpoint", "height", op.height, "error", xerr.Error())
		return xerr
	}
	for _, c := range op.changes {
		ctrler.logger.Debug("write checkpoint", "delegate", c.addr.Hex(), "height", op.height, "votes", c.curr.Dec())
	}
	ctrler.emit(evts...)
	return nil
}
