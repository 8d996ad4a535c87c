package token

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/finaswap/finatoken/config"
	"github.com/finaswap/finatoken/ctrlers/checkpoint"
	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/ctrlers/votes"
	"github.com/finaswap/finatoken/genesis"
	"github.com/finaswap/finatoken/ledger"
	"github.com/finaswap/finatoken/libs"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
	abcitypes "github.com/tendermint/tendermint/abci/types"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

// the total supply history is kept under the zero address
var supplyKey = types.ZeroAddress()

// TokenCtrler owns balances, total supply and the votes controller.
// All mutations are serialized by mtx; queries never wait for it.
type TokenCtrler struct {
	config *config.Config

	acctLedger ledger.ILedger[*ctrlertypes.Account]
	supply     *checkpoint.Store
	votes      *votes.VotesCtrler
	gate       ctrlertypes.IAccessGate

	height      atomic.Int64
	bctx        *ctrlertypes.BlockContext
	initialized bool

	logger tmlog.Logger
	mtx    sync.Mutex
}

func NewTokenCtrler(cfg *config.Config, gate ctrlertypes.IAccessGate, logger tmlog.Logger) *TokenCtrler {
	ctrler := &TokenCtrler{
		config: cfg,
		acctLedger: ledger.NewMemLedger[*ctrlertypes.Account](func() *ctrlertypes.Account {
			return &ctrlertypes.Account{}
		}),
		supply: checkpoint.NewStore(),
		gate:   gate,
		logger: logger.With("module", "token"),
	}
	ctrler.votes = votes.NewVotesCtrler(cfg.Domain(), &balanceReader{ctrler.acctLedger}, gate, logger)
	return ctrler
}

// NewTokenCtrlerFromConfig builds the logger from cfg.LogLevel and cfg.LogFormat
// and allocates cfg.GenesisFile if it is set.
func NewTokenCtrlerFromConfig(cfg *config.Config, gate ctrlertypes.IAccessGate) (*TokenCtrler, xerrors.XError) {
	logger, err := libs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, xerrors.From(err)
	}

	ctrler := NewTokenCtrler(cfg, gate, logger)
	if cfg.GenesisFile == "" {
		return ctrler, nil
	}

	appState, err := genesis.LoadGenesisAppState(cfg.GenesisFile)
	if err != nil {
		_ = ctrler.Close()
		return nil, xerrors.From(err)
	}
	if xerr := ctrler.InitLedger(appState); xerr != nil {
		_ = ctrler.Close()
		return nil, xerr
	}
	return ctrler, nil
}

func (ctrler *TokenCtrler) BeginBlock(bctx *ctrlertypes.BlockContext) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if xerr := ctrler.votes.BeginBlock(bctx); xerr != nil {
		return xerr
	}
	ctrler.bctx = bctx
	ctrler.height.Store(bctx.Height())
	return nil
}

// Events returns the events emitted in the current block.
func (ctrler *TokenCtrler) Events() []abcitypes.Event {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if ctrler.bctx == nil {
		return nil
	}
	return ctrler.bctx.Events()
}

func (ctrler *TokenCtrler) emit(evts ...abcitypes.Event) {
	if ctrler.bctx != nil {
		ctrler.bctx.AddEvent(evts...)
	}
}

// votesQuerier hides the mutating methods of VotesCtrler from type assertions.
type votesQuerier struct {
	votes.IVotesQuerier
}

// Votes returns the vote queries. Delegations go through TokenCtrler.
func (ctrler *TokenCtrler) Votes() votes.IVotesQuerier {
	return votesQuerier{ctrler.votes}
}

func (ctrler *TokenCtrler) checkPaused() xerrors.XError {
	if ctrler.gate.IsPaused() {
		return xerrors.ErrPaused
	}
	return nil
}

// findAccount returns the staged account of addr, or a new empty one.
func (ctrler *TokenCtrler) findAccount(addr types.Address) (*ctrlertypes.Account, xerrors.XError) {
	acct, xerr := ctrler.acctLedger.Get(ledger.ToLedgerKey(addr[:]))
	if xerr != nil {
		if errors.Is(xerr, xerrors.ErrNotFoundResult) {
			return ctrlertypes.NewAccount(addr), nil
		}
		return nil, xerr
	}
	return acct, nil
}

func (ctrler *TokenCtrler) Delegate(delegator, delegatee types.Address) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	return ctrler.votes.Delegate(delegator, delegatee)
}

func (ctrler *TokenCtrler) DelegateBySig(delegatee types.Address, nonce, expiry uint64, sig []byte) (types.Address, xerrors.XError) {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	return ctrler.votes.DelegateBySig(delegatee, nonce, expiry, sig)
}

func (ctrler *TokenCtrler) Name() string {
	return ctrler.config.Name
}

func (ctrler *TokenCtrler) Symbol() string {
	return ctrler.config.Symbol
}

func (ctrler *TokenCtrler) Decimals() uint8 {
	return ctrler.config.Decimals
}

func (ctrler *TokenCtrler) BalanceOf(addr types.Address) *uint256.Int {
	return readBalance(ctrler.acctLedger, addr)
}

func (ctrler *TokenCtrler) TotalSupply() *uint256.Int {
	return ctrler.supply.Latest(supplyKey)
}

// PastTotalSupply returns the total supply at the end of block height.
func (ctrler *TokenCtrler) PastTotalSupply(height int64) (*uint256.Int, xerrors.XError) {
	return ctrler.supply.WeightAt(supplyKey, height, ctrler.height.Load())
}

func (ctrler *TokenCtrler) Close() xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if ctrler.votes != nil {
		if xerr := ctrler.votes.Close(); xerr != nil {
			ctrler.logger.Error("TokenCtrler", "votes.Close() returns error", xerr.Error())
		}
	}
	if ctrler.acctLedger != nil {
		if xerr := ctrler.acctLedger.Close(); xerr != nil {
			ctrler.logger.Error("TokenCtrler", "acctLedger.Close() returns error", xerr.Error())
		}
		ctrler.acctLedger = nil
	}
	return nil
}

var _ ctrlertypes.ILedgerHandler = (*TokenCtrler)(nil)
var _ ctrlertypes.IBlockHandler = (*TokenCtrler)(nil)
