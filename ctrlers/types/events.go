package types

import (
	"github.com/finaswap/finatoken/types"
	"github.com/holiman/uint256"
	abcitypes "github.com/tendermint/tendermint/abci/types"
)

const (
	EVENT_TYPE_TRANSFER               = "transfer"
	EVENT_TYPE_DELEGATE_CHANGED       = "delegate_changed"
	EVENT_TYPE_DELEGATE_VOTES_CHANGED = "delegate_votes_changed"

	EVENT_ATTR_FROM          = "from"
	EVENT_ATTR_TO            = "to"
	EVENT_ATTR_AMOUNT        = "amount"
	EVENT_ATTR_DELEGATOR     = "delegator"
	EVENT_ATTR_FROM_DELEGATE = "fromDelegate"
	EVENT_ATTR_TO_DELEGATE   = "toDelegate"
	EVENT_ATTR_DELEGATE      = "delegate"
	EVENT_ATTR_PREV_BALANCE  = "previousBalance"
	EVENT_ATTR_NEW_BALANCE   = "newBalance"
)

func NewEvent(typ string, kvs ...string) abcitypes.Event {
	attrs := make([]abcitypes.EventAttribute, 0, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		attrs = append(attrs, abcitypes.EventAttribute{
			Key:   []byte(kvs[i]),
			Value: []byte(kvs[i+1]),
			Index: true,
		})
	}
	return abcitypes.Event{
		Type:       typ,
		Attributes: attrs,
	}
}

func TransferEvent(from, to types.Address, amt *uint256.Int) abcitypes.Event {
	return NewEvent(EVENT_TYPE_TRANSFER,
		EVENT_ATTR_FROM, from.Hex(),
		EVENT_ATTR_TO, to.Hex(),
		EVENT_ATTR_AMOUNT, amt.Dec())
}

func DelegateChangedEvent(delegator, fromDelegate, toDelegate types.Address) abcitypes.Event {
	return NewEvent(EVENT_TYPE_DELEGATE_CHANGED,
		EVENT_ATTR_DELEGATOR, delegator.Hex(),
		EVENT_ATTR_FROM_DELEGATE, fromDelegate.Hex(),
		EVENT_ATTR_TO_DELEGATE, toDelegate.Hex())
}

func DelegateVotesChangedEvent(delegate types.Address, prev, curr *uint256.Int) abcitypes.Event {
	return NewEvent(EVENT_TYPE_DELEGATE_VOTES_CHANGED,
		EVENT_ATTR_DELEGATE, delegate.Hex(),
		EVENT_ATTR_PREV_BALANCE, prev.Dec(),
		EVENT_ATTR_NEW_BALANCE, curr.Dec())
}

// AttrValue returns the value of the first attribute named key.
func AttrValue(evt abcitypes.Event, key string) (string, bool) {
	for _, attr := range evt.Attributes {
		if string(attr.Key) == key {
			return string(attr.Value), true
		}
	}
	return "", false
}
