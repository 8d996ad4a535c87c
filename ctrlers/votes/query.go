package votes

import (
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
	abcitypes "github.com/tendermint/tendermint/abci/types"
	tmjson "github.com/tendermint/tendermint/libs/json"
)

type VotesResponse struct {
	Address types.HexBytes `json:"address"`
	Height  int64          `json:"height,omitempty"`
	Votes   string         `json:"votes"`
}

type CheckpointResponse struct {
	FromBlock int64  `json:"fromBlock"`
	Votes     string `json:"votes"`
}

type DelegatesResponse struct {
	Delegator types.HexBytes `json:"delegator"`
	Delegatee types.HexBytes `json:"delegatee"`
}

type NoncesResponse struct {
	Address types.HexBytes `json:"address"`
	Nonce   uint64         `json:"nonce"`
}

// Query never takes the mutation lock.
func (ctrler *VotesCtrler) Query(req abcitypes.RequestQuery) ([]byte, xerrors.XError) {
	addr, xerr := types.BytesToAddress(req.Data)
	if xerr != nil {
		return nil, xerrors.ErrInvalidQueryParams.Wrap(xerr)
	}

	var resp interface{}
	switch req.Path {
	case "votes":
		resp = &VotesResponse{
			Address: addr[:],
			Votes:   ctrler.GetVotes(addr).Dec(),
		}
	case "past_votes":
		votes, xerr := ctrler.GetPastVotes(addr, req.Height)
		if xerr != nil {
			return nil, xerr
		}
		resp = &VotesResponse{
			Address: addr[:],
			Height:  req.Height,
			Votes:   votes.Dec(),
		}
	case "checkpoints":
		cps := ctrler.Checkpoints(addr)
		ret := make([]*CheckpointResponse, len(cps))
		for i, cp := range cps {
			ret[i] = &CheckpointResponse{
				FromBlock: cp.FromBlock,
				Votes:     cp.Votes.Dec(),
			}
		}
		resp = ret
	case "delegates":
		delegatee := ctrler.Delegates(addr)
		resp = &DelegatesResponse{
			Delegator: addr[:],
			Delegatee: delegatee[:],
		}
	case "nonces":
		resp = &NoncesResponse{
			Address: addr[:],
			Nonce:   ctrler.Nonces(addr),
		}
	default:
		return nil, xerrors.ErrInvalidQueryPath.Wrapf("path: %s", req.Path)
	}

	if bz, err := tmjson.Marshal(resp); err != nil {
		return nil, xerrors.ErrQuery.Wrap(err)
	} else {
		return bz, nil
	}
}
