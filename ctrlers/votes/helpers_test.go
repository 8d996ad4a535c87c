package votes

import (
	"sync"
	"time"

	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/crypto"
	"github.com/holiman/uint256"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

var (
	testDomain = &crypto.Domain{
		Name:              "FinaToken",
		Version:           "1",
		ChainID:           31337,
		VerifyingContract: types.RandAddress(),
	}
	genesisTime = time.Unix(1_700_000_000, 0)
)

type mockBalances struct {
	bals map[types.Address]*uint256.Int
	mtx  sync.RWMutex
}

func newMockBalances() *mockBalances {
	return &mockBalances{bals: make(map[types.Address]*uint256.Int)}
}

func (m *mockBalances) BalanceOf(addr types.Address) *uint256.Int {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	if b, ok := m.bals[addr]; ok {
		return new(uint256.Int).Set(b)
	}
	return uint256.NewInt(0)
}

func (m *mockBalances) set(addr types.Address, amt *uint256.Int) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.bals[addr] = amt
}

type mockPauser struct {
	paused bool
}

func (m *mockPauser) IsPaused() bool {
	return m.paused
}

// testEnv wires a VotesCtrler to in-test balances the way the token controller does.
type testEnv struct {
	ctrler   *VotesCtrler
	balances *mockBalances
	pauser   *mockPauser
	bctx     *ctrlertypes.BlockContext
}

func newTestEnv() *testEnv {
	bals := newMockBalances()
	pauser := &mockPauser{}
	env := &testEnv{
		ctrler:   NewVotesCtrler(testDomain, bals, pauser, tmlog.NewNopLogger()),
		balances: bals,
		pauser:   pauser,
	}
	env.nextBlock()
	return env
}

func (env *testEnv) nextBlock() int64 {
	h := env.ctrler.Height() + 1
	env.bctx = ctrlertypes.NewBlockContext(h, genesisTime.Add(time.Duration(h)*time.Second))
	if xerr := env.ctrler.BeginBlock(env.bctx); xerr != nil {
		panic(xerr)
	}
	return h
}

func (env *testEnv) mint(to types.Address, amt uint64) error {
	a := uint256.NewInt(amt)
	if xerr := env.ctrler.OnBalanceChange(nil, &to, a); xerr != nil {
		return xerr
	}
	bal := env.balances.BalanceOf(to)
	env.balances.set(to, bal.Add(bal, a))
	return nil
}

func (env *testEnv) transfer(from, to types.Address, amt uint64) error {
	a := uint256.NewInt(amt)
	if xerr := env.ctrler.OnBalanceChange(&from, &to, a); xerr != nil {
		return xerr
	}
	fbal := env.balances.BalanceOf(from)
	env.balances.set(from, fbal.Sub(fbal, a))
	tbal := env.balances.BalanceOf(to)
	env.balances.set(to, tbal.Add(tbal, a))
	return nil
}

func (env *testEnv) burn(from types.Address, amt uint64) error {
	a := uint256.NewInt(amt)
	if xerr := env.ctrler.OnBalanceChange(&from, nil, a); xerr != nil {
		return xerr
	}
	bal := env.balances.BalanceOf(from)
	env.balances.set(from, bal.Sub(bal, a))
	return nil
}
