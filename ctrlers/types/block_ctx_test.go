package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/finaswap/finatoken/types"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestBlockContext(t *testing.T) {
	now := time.Unix(1_700_000_000, 0).UTC()
	bctx := NewBlockContext(7, now)
	require.Equal(t, int64(7), bctx.Height())
	require.True(t, now.Equal(bctx.Time()))

	from, to := types.RandAddress(), types.RandAddress()
	bctx.AddEvent(TransferEvent(from, to, uint256.NewInt(10)))
	bctx.AddEvent(DelegateVotesChangedEvent(to, uint256.NewInt(0), uint256.NewInt(10)))

	evts := bctx.Events()
	require.Len(t, evts, 2)
	v, ok := AttrValue(evts[0], EVENT_ATTR_FROM)
	require.True(t, ok)
	require.Equal(t, from.Hex(), v)
	v, ok = AttrValue(evts[1], EVENT_ATTR_NEW_BALANCE)
	require.True(t, ok)
	require.Equal(t, "10", v)
	_, ok = AttrValue(evts[1], EVENT_ATTR_AMOUNT)
	require.False(t, ok)

	// the returned slice is a copy
	evts[0].Type = "changed"
	require.Equal(t, EVENT_TYPE_TRANSFER, bctx.Events()[0].Type)

	bz, err := json.Marshal(bctx)
	require.NoError(t, err)
	require.Contains(t, string(bz), `"blockInfo"`)
	require.NotContains(t, string(bz), EVENT_TYPE_TRANSFER)
}
