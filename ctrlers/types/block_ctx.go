package types

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/finaswap/finatoken/types/xerrors"
	abcitypes "github.com/tendermint/tendermint/abci/types"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
)

// BlockContext carries the sequence point of every operation applied within one block
// and collects the events they emit.
type BlockContext struct {
	BlockInfo abcitypes.RequestBeginBlock `json:"blockInfo"`

	events []abcitypes.Event
	mtx    sync.RWMutex
}

func NewBlockContext(height int64, blockTime time.Time) *BlockContext {
	return &BlockContext{
		BlockInfo: abcitypes.RequestBeginBlock{
			Header: tmproto.Header{
				Height: height,
				Time:   blockTime,
			},
		},
	}
}

func (bctx *BlockContext) Height() int64 {
	return bctx.BlockInfo.Header.Height
}

func (bctx *BlockContext) Time() time.Time {
	return bctx.BlockInfo.Header.Time
}

func (bctx *BlockContext) AddEvent(evts ...abcitypes.Event) {
	bctx.mtx.Lock()
	defer bctx.mtx.Unlock()

	bctx.events = append(bctx.events, evts...)
}

func (bctx *BlockContext) Events() []abcitypes.Event {
	bctx.mtx.RLock()
	defer bctx.mtx.RUnlock()

	return append([]abcitypes.Event(nil), bctx.events...)
}

func (bctx *BlockContext) MarshalJSON() ([]byte, error) {
	_bctx := &struct {
		BlockInfo abcitypes.RequestBeginBlock `json:"blockInfo"`
	}{
		BlockInfo: bctx.BlockInfo,
	}

	return json.Marshal(_bctx)
}

type IBlockHandler interface {
	BeginBlock(*BlockContext) xerrors.XError
}
