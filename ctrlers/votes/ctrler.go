package votes

import (
	"sync"
	"sync/atomic"

	"github.com/finaswap/finatoken/ctrlers/checkpoint"
	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/crypto"
	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
	abcitypes "github.com/tendermint/tendermint/abci/types"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

// VotesCtrler owns the delegation registry and the checkpoint store of delegates.
type VotesCtrler struct {
	reg   *registry
	store *checkpoint.Store

	balances ctrlertypes.IBalanceHelper
	pauser   ctrlertypes.IPauseOracle
	domain   *crypto.Domain

	// the current block; read without holding mtx
	height    atomic.Int64
	blockTime atomic.Int64
	bctx      *ctrlertypes.BlockContext

	logger tmlog.Logger
	mtx    sync.Mutex
}

func NewVotesCtrler(domain *crypto.Domain, balances ctrlertypes.IBalanceHelper, pauser ctrlertypes.IPauseOracle, logger tmlog.Logger) *VotesCtrler {
	return &VotesCtrler{
		reg:      newRegistry(),
		store:    checkpoint.NewStore(),
		balances: balances,
		pauser:   pauser,
		domain:   domain,
		logger:   logger.With("module", "votes"),
	}
}

// BeginBlock sets the sequence point of every following operation until the next block.
func (ctrler *VotesCtrler) BeginBlock(bctx *ctrlertypes.BlockContext) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if bctx.Height() < ctrler.height.Load() {
		return xerrors.ErrOrderingViolation.Wrapf("current height: %d, new height: %d", ctrler.height.Load(), bctx.Height())
	}
	if bctx.Time().Unix() < ctrler.blockTime.Load() {
		return xerrors.ErrOrderingViolation.Wrapf("current time: %d, new time: %d", ctrler.blockTime.Load(), bctx.Time().Unix())
	}

	ctrler.bctx = bctx
	ctrler.height.Store(bctx.Height())
	ctrler.blockTime.Store(bctx.Time().Unix())
	return nil
}

func (ctrler *VotesCtrler) Height() int64 {
	return ctrler.height.Load()
}

func (ctrler *VotesCtrler) emit(evts ...abcitypes.Event) {
	if ctrler.bctx != nil && len(evts) > 0 {
		ctrler.bctx.AddEvent(evts...)
	}
}

func (ctrler *VotesCtrler) checkPaused() xerrors.XError {
	if ctrler.pauser != nil && ctrler.pauser.IsPaused() {
		return xerrors.ErrPaused
	}
	return nil
}

// Delegate moves all votes of delegator to delegatee.
// Delegating to the zero address removes the delegation.
func (ctrler *VotesCtrler) Delegate(delegator, delegatee types.Address) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if xerr := ctrler.checkPaused(); xerr != nil {
		return xerr
	}

	d, xerr := ctrler.reg.get(delegator)
	if xerr != nil {
		return xerr
	}
	if xerr := ctrler.delegate(d, delegatee); xerr != nil {
		ctrler.reg.revert()
		return xerr
	}
	return nil
}

// delegate changes the delegatee of d, commits the registry and writes checkpoints.
// On error nothing has been committed and the caller reverts the registry.
func (ctrler *VotesCtrler) delegate(d *ctrlertypes.Delegation, delegatee types.Address) xerrors.XError {
	prevDelegatee := d.Delegatee
	amt := ctrler.balances.BalanceOf(d.Delegator)

	op, xerr := prepareMove(ctrler.store, types.AddrPtr(prevDelegatee), types.AddrPtr(delegatee), amt, ctrler.height.Load())
	if xerr != nil {
		ctrler.logger.Debug("reject delegation", "delegator", d.Delegator.Hex(), "delegatee", delegatee.Hex(), "error", xerr.Error())
		return xerr
	}

	d.Delegatee = delegatee
	if xerr := ctrler.reg.set(d); xerr != nil {
		return xerr
	}
	if xerr := ctrler.reg.commit(); xerr != nil {
		return xerr
	}

	ctrler.logger.Info("delegate changed",
		"delegator", d.Delegator.Hex(), "from", prevDelegatee.Hex(), "to", delegatee.Hex(), "votes", amt.Dec())
	ctrler.emit(ctrlertypes.DelegateChangedEvent(d.Delegator, prevDelegatee, delegatee))
	return ctrler.applyMove(op)
}

func (ctrler *VotesCtrler) GetVotes(addr types.Address) *uint256.Int {
	return ctrler.store.Latest(addr)
}

// GetPastVotes returns the votes of addr at the end of block height.
// Only finished blocks can be queried.
func (ctrler *VotesCtrler) GetPastVotes(addr types.Address, height int64) (*uint256.Int, xerrors.XError) {
	return ctrler.store.WeightAt(addr, height, ctrler.height.Load())
}

func (ctrler *VotesCtrler) NumCheckpoints(addr types.Address) int {
	return ctrler.store.NumCheckpoints(addr)
}

func (ctrler *VotesCtrler) CheckpointAt(addr types.Address, idx int) (checkpoint.Checkpoint, xerrors.XError) {
	return ctrler.store.CheckpointAt(addr, idx)
}

func (ctrler *VotesCtrler) Checkpoints(addr types.Address) []checkpoint.Checkpoint {
	return ctrler.store.Checkpoints(addr)
}

// Delegates returns the delegatee of addr or the zero address.
func (ctrler *VotesCtrler) Delegates(addr types.Address) types.Address {
	d, _ := ctrler.reg.DelegateeOf(addr)
	return d
}

func (ctrler *VotesCtrler) Nonces(addr types.Address) uint64 {
	return ctrler.reg.NonceOf(addr)
}

func (ctrler *VotesCtrler) DomainSeparator() ([]byte, xerrors.XError) {
	return ctrler.domain.Separator()
}

func (ctrler *VotesCtrler) Close() xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if ctrler.reg != nil {
		if xerr := ctrler.reg.close(); xerr != nil {
			ctrler.logger.Error("VotesCtrler", "registry.close() returns error", xerr.Error())
		}
		ctrler.reg = nil
	}
	return nil
}

// IVotesQuerier is the read-only side of VotesCtrler.
type IVotesQuerier interface {
	Height() int64
	GetVotes(types.Address) *uint256.Int
	GetPastVotes(types.Address, int64) (*uint256.Int, xerrors.XError)
	NumCheckpoints(types.Address) int
	CheckpointAt(types.Address, int) (checkpoint.Checkpoint, xerrors.XError)
	Checkpoints(types.Address) []checkpoint.Checkpoint
	Delegates(types.Address) types.Address
	Nonces(types.Address) uint64
	DomainSeparator() ([]byte, xerrors.XError)
	Query(abcitypes.RequestQuery) ([]byte, xerrors.XError)
}

var _ IVotesQuerier = (*VotesCtrler)(nil)
var _ ctrlertypes.ILedgerHandler = (*VotesCtrler)(nil)
var _ ctrlertypes.IBlockHandler = (*VotesCtrler)(nil)
