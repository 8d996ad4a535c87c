package votes

import (
	"testing"
	"time"

	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestDelegate(t *testing.T) {
	env := newTestEnv()
	holder, delegatee := types.RandAddress(), types.RandAddress()

	require.NoError(t, env.mint(holder, 100))
	// no delegatee, no votes
	require.Equal(t, 0, env.ctrler.NumCheckpoints(holder))
	require.True(t, env.ctrler.GetVotes(holder).IsZero())

	h := env.nextBlock()
	require.NoError(t, env.ctrler.Delegate(holder, delegatee))
	require.Equal(t, delegatee, env.ctrler.Delegates(holder))
	require.Equal(t, uint64(100), env.ctrler.GetVotes(delegatee).Uint64())
	require.Equal(t, 1, env.ctrler.NumCheckpoints(delegatee))

	cp, xerr := env.ctrler.CheckpointAt(delegatee, 0)
	require.NoError(t, xerr)
	require.Equal(t, h, cp.FromBlock)

	// events of this block
	evts := env.bctx.Events()
	require.Len(t, evts, 2)
	require.Equal(t, ctrlertypes.EVENT_TYPE_DELEGATE_CHANGED, evts[0].Type)
	require.Equal(t, ctrlertypes.EVENT_TYPE_DELEGATE_VOTES_CHANGED, evts[1].Type)
	v, ok := ctrlertypes.AttrValue(evts[1], ctrlertypes.EVENT_ATTR_NEW_BALANCE)
	require.True(t, ok)
	require.Equal(t, "100", v)

	// same delegatee again: no move
	env.nextBlock()
	require.NoError(t, env.ctrler.Delegate(holder, delegatee))
	require.Equal(t, 1, env.ctrler.NumCheckpoints(delegatee))

	// self delegation differs from no delegation
	env.nextBlock()
	require.NoError(t, env.ctrler.Delegate(holder, holder))
	require.True(t, env.ctrler.GetVotes(delegatee).IsZero())
	require.Equal(t, 2, env.ctrler.NumCheckpoints(delegatee))
	require.Equal(t, uint64(100), env.ctrler.GetVotes(holder).Uint64())

	// delegating to the zero address removes the delegation
	env.nextBlock()
	require.NoError(t, env.ctrler.Delegate(holder, types.ZeroAddress()))
	require.True(t, env.ctrler.GetVotes(holder).IsZero())
	_, ok = env.ctrler.reg.DelegateeOf(holder)
	require.False(t, ok)
}

func TestBalanceChange(t *testing.T) {
	env := newTestEnv()
	alice, bob, carol := types.RandAddress(), types.RandAddress(), types.RandAddress()

	require.NoError(t, env.ctrler.Delegate(alice, alice))
	require.NoError(t, env.ctrler.Delegate(bob, carol))

	h1 := env.nextBlock()
	require.NoError(t, env.mint(alice, 100))

	h2 := env.nextBlock()
	require.NoError(t, env.transfer(alice, bob, 10))

	h3 := env.nextBlock()
	require.NoError(t, env.transfer(alice, bob, 10))

	h4 := env.nextBlock()
	require.NoError(t, env.burn(bob, 20))
	require.NoError(t, env.mint(alice, 20))

	env.nextBlock()
	require.Equal(t, 4, env.ctrler.NumCheckpoints(alice))
	expected := []uint64{100, 90, 80, 100}
	for i, h := range []int64{h1, h2, h3, h4} {
		cp, xerr := env.ctrler.CheckpointAt(alice, i)
		require.NoError(t, xerr)
		require.Equal(t, h, cp.FromBlock)
		require.Equal(t, expected[i], cp.Votes.Uint64())

		v, xerr := env.ctrler.GetPastVotes(alice, h)
		require.NoError(t, xerr)
		require.Equal(t, expected[i], v.Uint64())
	}

	require.Equal(t, 3, env.ctrler.NumCheckpoints(carol))
	require.True(t, env.ctrler.GetVotes(carol).IsZero())
	// bob has not delegated to himself
	require.Equal(t, 0, env.ctrler.NumCheckpoints(bob))
}

func TestSameBlockCollapse(t *testing.T) {
	env := newTestEnv()
	alice, bob := types.RandAddress(), types.RandAddress()

	require.NoError(t, env.ctrler.Delegate(alice, alice))

	h := env.nextBlock()
	require.NoError(t, env.mint(alice, 100))
	require.NoError(t, env.transfer(alice, bob, 10))
	require.NoError(t, env.transfer(alice, bob, 10))

	require.Equal(t, 1, env.ctrler.NumCheckpoints(alice))
	cp, xerr := env.ctrler.CheckpointAt(alice, 0)
	require.NoError(t, xerr)
	require.Equal(t, h, cp.FromBlock)
	require.Equal(t, uint64(80), cp.Votes.Uint64())

	h2 := env.nextBlock()
	require.NoError(t, env.mint(alice, 20))
	require.Equal(t, 2, env.ctrler.NumCheckpoints(alice))
	cp, xerr = env.ctrler.CheckpointAt(alice, 1)
	require.NoError(t, xerr)
	require.Equal(t, h2, cp.FromBlock)
	require.Equal(t, uint64(100), cp.Votes.Uint64())
}

func TestGetPastVotes(t *testing.T) {
	env := newTestEnv()
	alice := types.RandAddress()

	// current block can not be queried
	_, xerr := env.ctrler.GetPastVotes(alice, env.ctrler.Height())
	require.ErrorIs(t, xerr, xerrors.ErrFutureQuery)
	_, xerr = env.ctrler.GetPastVotes(alice, env.ctrler.Height()+5)
	require.ErrorIs(t, xerr, xerrors.ErrFutureQuery)

	// no checkpoints
	v, xerr := env.ctrler.GetPastVotes(alice, 0)
	require.NoError(t, xerr)
	require.True(t, v.IsZero())

	require.NoError(t, env.ctrler.Delegate(alice, alice))
	h1 := env.nextBlock()
	require.NoError(t, env.mint(alice, 100))
	env.nextBlock()
	env.nextBlock()
	h4 := env.nextBlock()
	require.NoError(t, env.burn(alice, 30))
	env.nextBlock()

	v, xerr = env.ctrler.GetPastVotes(alice, h1-1)
	require.NoError(t, xerr)
	require.True(t, v.IsZero())
	for h := h1; h < h4; h++ {
		v, xerr = env.ctrler.GetPastVotes(alice, h)
		require.NoError(t, xerr)
		require.Equal(t, uint64(100), v.Uint64())
	}
	v, xerr = env.ctrler.GetPastVotes(alice, h4)
	require.NoError(t, xerr)
	require.Equal(t, uint64(70), v.Uint64())
}

func TestMoveIsAtomic(t *testing.T) {
	env := newTestEnv()
	whale, minnow, delegatee := types.RandAddress(), types.RandAddress(), types.RandAddress()

	require.NoError(t, env.ctrler.Delegate(whale, delegatee))
	env.nextBlock()
	require.NoError(t, env.ctrler.OnBalanceChange(nil, &whale, ctrlertypes.MaxWeight))
	env.balances.set(whale, ctrlertypes.MaxWeight.Clone())
	require.NoError(t, env.mint(minnow, 1))

	before := env.ctrler.Checkpoints(delegatee)

	env.nextBlock()
	// overflow on delegation
	require.ErrorIs(t, env.ctrler.Delegate(minnow, delegatee), xerrors.ErrOverflow)
	require.Equal(t, types.ZeroAddress(), env.ctrler.Delegates(minnow))
	require.Equal(t, before, env.ctrler.Checkpoints(delegatee))

	// overflow on mint
	require.ErrorIs(t, env.mint(whale, 1), xerrors.ErrOverflow)
	require.Equal(t, before, env.ctrler.Checkpoints(delegatee))

	// underflow: the delegatee of the sender has fewer votes than moved
	other := types.RandAddress()
	require.NoError(t, env.ctrler.Delegate(other, other))
	require.ErrorIs(t, env.transfer(other, whale, 1), xerrors.ErrUnderflow)
	require.Equal(t, before, env.ctrler.Checkpoints(delegatee))
	require.Equal(t, 0, env.ctrler.NumCheckpoints(other))
}

func TestPaused(t *testing.T) {
	env := newTestEnv()
	alice := types.RandAddress()

	env.pauser.paused = true
	require.ErrorIs(t, env.ctrler.Delegate(alice, alice), xerrors.ErrPaused)
	_, xerr := env.ctrler.DelegateBySig(alice, 0, 1<<62, make([]byte, 65))
	require.ErrorIs(t, xerr, xerrors.ErrPaused)

	env.pauser.paused = false
	require.NoError(t, env.ctrler.Delegate(alice, alice))
}

func TestBeginBlock(t *testing.T) {
	ctrler := NewVotesCtrler(testDomain, newMockBalances(), nil, log.NewNopLogger())

	require.NoError(t, ctrler.BeginBlock(ctrlertypes.NewBlockContext(10, genesisTime)))
	require.Equal(t, int64(10), ctrler.Height())

	require.ErrorIs(t, ctrler.BeginBlock(ctrlertypes.NewBlockContext(9, genesisTime)), xerrors.ErrOrderingViolation)
	require.ErrorIs(t, ctrler.BeginBlock(ctrlertypes.NewBlockContext(11, genesisTime.Add(-time.Second))), xerrors.ErrOrderingViolation)
	require.Equal(t, int64(10), ctrler.Height())

	require.NoError(t, ctrler.BeginBlock(ctrlertypes.NewBlockContext(11, genesisTime.Add(time.Second))))
	require.Equal(t, int64(11), ctrler.Height())
}
