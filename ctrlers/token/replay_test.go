package token

import (
	"math/rand"
	"testing"

	"github.com/finaswap/finatoken/types"
	"github.com/stretchr/testify/require"
)

// TestRandomReplay applies random mints, burns, transfers and delegations
// and recomputes every delegate's votes from balances and delegation edges.
func TestRandomReplay(t *testing.T) {
	env := newTestEnv(t)
	votes := env.token.Votes()

	var holders []types.Address
	for i := 0; i < 8; i++ {
		holders = append(holders, types.RandAddress())
	}
	pick := func() types.Address {
		return holders[rand.Intn(len(holders))]
	}

	expectedVotes := func() map[types.Address]uint64 {
		ret := make(map[types.Address]uint64)
		for _, h := range holders {
			if d, ok := votesDelegatee(env, h); ok {
				ret[d] += env.balance(h)
			}
		}
		return ret
	}

	history := make(map[int64]map[types.Address]uint64)

	for blk := 0; blk < 60; blk++ {
		h := env.nextBlock(t)
		for op := 0; op < rand.Intn(4)+1; op++ {
			switch rand.Intn(5) {
			case 0:
				_ = env.token.Mint(env.alice.addr, pick(), u256(uint64(rand.Intn(1000))))
			case 1:
				addr := pick()
				_ = env.token.Burn(addr, u256(uint64(rand.Int63n(int64(env.balance(addr)+1)))))
			case 2, 3:
				from := pick()
				_ = env.token.Transfer(from, pick(), u256(uint64(rand.Int63n(int64(env.balance(from)+2)))))
			case 4:
				delegatee := pick()
				if rand.Intn(5) == 0 {
					delegatee = types.ZeroAddress()
				}
				require.NoError(t, env.token.Delegate(pick(), delegatee))
			}
		}

		exp := expectedVotes()
		for _, addr := range holders {
			require.Equal(t, exp[addr], votes.GetVotes(addr).Uint64(), "block %d", h)
		}
		history[h] = exp
	}

	env.nextBlock(t)
	for h, exp := range history {
		for _, addr := range holders {
			require.Equal(t, exp[addr], env.pastVotes(t, addr, h), "block %d", h)
		}
	}

	// checkpoints of every account are strictly ordered
	for _, addr := range holders {
		cps := votes.Checkpoints(addr)
		for i := 1; i < len(cps); i++ {
			require.Less(t, cps[i-1].FromBlock, cps[i].FromBlock)
		}
	}
}

func votesDelegatee(env *testEnv, addr types.Address) (types.Address, bool) {
	d := env.token.Votes().Delegates(addr)
	return d, !types.IsZeroAddress(d)
}
