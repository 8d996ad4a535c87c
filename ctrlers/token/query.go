package token

import (
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
	abcitypes "github.com/tendermint/tendermint/abci/types"
	tmjson "github.com/tendermint/tendermint/libs/json"
)

type BalanceResponse struct {
	Address types.HexBytes `json:"address"`
	Balance string         `json:"balance"`
}

type SupplyResponse struct {
	Height      int64  `json:"height,omitempty"`
	TotalSupply string `json:"totalSupply"`
}

type MetadataResponse struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

// Query answers token paths and hands every other path to the votes controller.
func (ctrler *TokenCtrler) Query(req abcitypes.RequestQuery) ([]byte, xerrors.XError) {
	var resp interface{}
	switch req.Path {
	case "balance":
		addr, xerr := types.BytesToAddress(req.Data)
		if xerr != nil {
			return nil, xerrors.ErrInvalidQueryParams.Wrap(xerr)
		}
		resp = &BalanceResponse{
			Address: addr[:],
			Balance: ctrler.BalanceOf(addr).Dec(),
		}
	case "total_supply":
		resp = &SupplyResponse{
			TotalSupply: ctrler.TotalSupply().Dec(),
		}
	case "past_total_supply":
		supply, xerr := ctrler.PastTotalSupply(req.Height)
		if xerr != nil {
			return nil, xerr
		}
		resp = &SupplyResponse{
			Height:      req.Height,
			TotalSupply: supply.Dec(),
		}
	case "metadata":
		resp = &MetadataResponse{
			Name:     ctrler.Name(),
			Symbol:   ctrler.Symbol(),
			Decimals: ctrler.Decimals(),
		}
	default:
		return ctrler.votes.Query(req)
	}

	if bz, err := tmjson.Marshal(resp); err != nil {
		return nil, xerrors.ErrQuery.Wrap(err)
	} else {
		return bz, nil
	}
}
