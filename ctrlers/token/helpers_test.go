package token

import (
	"crypto/ecdsa"
	"testing"
	"time"

	"github.com/finaswap/finatoken/config"
	"github.com/finaswap/finatoken/ctrlers/access"
	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

var genesisTime = time.Unix(1_700_000_000, 0)

type signer struct {
	prvKey *ecdsa.PrivateKey
	addr   types.Address
}

func newSigner(t *testing.T) *signer {
	prvKey, err := crypto.NewPrvKey()
	require.NoError(t, err)
	return &signer{
		prvKey: prvKey,
		addr:   crypto.Pub2Addr(&prvKey.PublicKey),
	}
}

// testEnv deploys a token the way the hardhat fixture does:
// alice is the admin and is granted both MINTER_ROLE and PAUSER_ROLE.
type testEnv struct {
	cfg    *config.Config
	access *access.AccessCtrler
	token  *TokenCtrler
	bctx   *ctrlertypes.BlockContext

	alice, bob, carol, ginger *signer
}

func newTestEnv(t *testing.T) *testEnv {
	cfg := config.DefaultConfig()
	cfg.VerifyingContract = types.RandAddress()

	env := &testEnv{
		cfg:    cfg,
		alice:  newSigner(t),
		bob:    newSigner(t),
		carol:  newSigner(t),
		ginger: newSigner(t),
	}
	env.access = access.NewAccessCtrler(env.alice.addr, tmlog.NewNopLogger())
	env.token = NewTokenCtrler(cfg, env.access, tmlog.NewNopLogger())

	require.NoError(t, env.access.GrantRole(env.alice.addr, types.MINTER_ROLE, env.alice.addr))
	require.NoError(t, env.access.GrantRole(env.alice.addr, types.PAUSER_ROLE, env.alice.addr))

	env.nextBlock(t)
	t.Cleanup(func() {
		require.NoError(t, env.token.Close())
	})
	return env
}

// nextBlock starts a new block one second after the previous one.
func (env *testEnv) nextBlock(t *testing.T) int64 {
	h := env.token.height.Load() + 1
	env.bctx = ctrlertypes.NewBlockContext(h, genesisTime.Add(time.Duration(h)*time.Second))
	require.NoError(t, env.token.BeginBlock(env.bctx))
	return h
}

// mine starts n empty blocks.
func (env *testEnv) mine(t *testing.T, n int) {
	for i := 0; i < n; i++ {
		env.nextBlock(t)
	}
}

func (env *testEnv) mint(t *testing.T, to types.Address, amt uint64) int64 {
	h := env.nextBlock(t)
	require.NoError(t, env.token.Mint(env.alice.addr, to, uint256.NewInt(amt)))
	return h
}

func (env *testEnv) transfer(t *testing.T, from, to types.Address, amt uint64) int64 {
	h := env.nextBlock(t)
	require.NoError(t, env.token.Transfer(from, to, uint256.NewInt(amt)))
	return h
}

func (env *testEnv) delegate(t *testing.T, delegator, delegatee types.Address) int64 {
	h := env.nextBlock(t)
	require.NoError(t, env.token.Delegate(delegator, delegatee))
	return h
}

func (env *testEnv) balance(addr types.Address) uint64 {
	return env.token.BalanceOf(addr).Uint64()
}

func (env *testEnv) pastVotes(t *testing.T, addr types.Address, height int64) uint64 {
	v, xerr := env.token.Votes().GetPastVotes(addr, height)
	require.NoError(t, xerr)
	return v.Uint64()
}

func u256(n uint64) *uint256.Int {
	return uint256.NewInt(n)
}
