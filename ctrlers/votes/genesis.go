package votes

import (
	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
)

// InitialDelegation is a genesis balance of Delegator and its delegatee.
// The zero Delegatee keeps the delegation Delegator already has, if any.
// Votes is the balance of Delegator, which is not committed yet at that time.
type InitialDelegation struct {
	Delegator types.Address
	Delegatee types.Address
	Votes     *uint256.Int
}

// InitDelegations records genesis delegations and votes at the current height.
// It is not gated by pause. Either every delegation and checkpoint is written or none.
func (ctrler *VotesCtrler) InitDelegations(delegs []*InitialDelegation) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if ctrler.bctx != nil {
		return xerrors.ErrOrderingViolation.Wrapf("delegations can be initialized only before the first block")
	}

	height := ctrler.height.Load()
	op, xerr := ctrler.prepareInitDelegations(delegs, height)
	if xerr != nil {
		ctrler.reg.revert()
		return xerr
	}
	if xerr := ctrler.reg.commit(); xerr != nil {
		ctrler.reg.revert()
		return xerr
	}
	for _, c := range op.changes {
		ctrler.logger.Info("genesis votes", "delegate", c.addr.Hex(), "votes", c.curr.Dec())
	}
	return ctrler.applyMove(op)
}

// prepareInitDelegations stages the registry and sums the votes of every delegatee.
func (ctrler *VotesCtrler) prepareInitDelegations(delegs []*InitialDelegation, height int64) (*moveOp, xerrors.XError) {
	sums := make(map[types.Address]*uint256.Int)
	var order []types.Address

	for _, dg := range delegs {
		if types.IsZeroAddress(dg.Delegator) {
			return nil, xerrors.ErrZeroAddress.Wrapf("genesis delegator")
		}
		if dg.Votes == nil {
			return nil, xerrors.New("no votes for " + dg.Delegator.Hex())
		}

		d, xerr := ctrler.reg.get(dg.Delegator)
		if xerr != nil {
			return nil, xerr
		}
		if !types.IsZeroAddress(dg.Delegatee) {
			if d.HasDelegatee() && d.Delegatee != dg.Delegatee {
				return nil, xerrors.New("already delegated: " + dg.Delegator.Hex())
			}
			d.Delegatee = dg.Delegatee
			if xerr := ctrler.reg.set(d); xerr != nil {
				return nil, xerr
			}
		}

		if !d.HasDelegatee() || dg.Votes.IsZero() {
			continue
		}
		sum, ok := sums[d.Delegatee]
		if !ok {
			sum = uint256.NewInt(0)
			order = append(order, d.Delegatee)
		}
		s, xerr := ctrlertypes.AddWeight(sum, dg.Votes)
		if xerr != nil {
			return nil, xerr.Wrapf("delegate: %v", d.Delegatee.Hex())
		}
		sums[d.Delegatee] = s
	}

	op := &moveOp{height: height}
	for _, addr := range order {
		if xerr := ctrler.store.CheckWrite(addr, height); xerr != nil {
			return nil, xerr
		}
		prev := ctrler.store.Latest(addr)
		curr, xerr := ctrlertypes.AddWeight(prev, sums[addr])
		if xerr != nil {
			return nil, xerr.Wrapf("delegate: %v", addr.Hex())
		}
		op.changes = append(op.changes, weightChange{addr: addr, prev: prev, curr: curr})
	}
	return op, nil
}
