package genesis

import (
	"encoding/json"
	"os"

	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/crypto"
	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
)

type GenesisAppState struct {
	Holders []*GenesisHolder `json:"holders"`
}

func NewGenesisAppState(holders ...*GenesisHolder) *GenesisAppState {
	return &GenesisAppState{Holders: holders}
}

// LoadGenesisAppState reads a json file like
// {"holders":[{"address":"0x..","balance":"100","delegatee":"0x.."}]}.
func LoadGenesisAppState(path string) (*GenesisAppState, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ga := &GenesisAppState{}
	if err := json.Unmarshal(bz, ga); err != nil {
		return nil, err
	}
	if xerr := ga.Validate(); xerr != nil {
		return nil, xerr
	}
	return ga, nil
}

// Validate checks that every holder has a balance and is listed once
// and that the total supply fits into a weight.
func (ga *GenesisAppState) Validate() xerrors.XError {
	seen := make(map[types.Address]struct{}, len(ga.Holders))
	supply := uint256.NewInt(0)
	for _, h := range ga.Holders {
		if types.IsZeroAddress(h.Address) {
			return xerrors.ErrZeroAddress.Wrapf("genesis holder")
		}
		if h.Balance == nil {
			return xerrors.New("genesis holder without balance: " + h.Address.Hex())
		}
		if _, ok := seen[h.Address]; ok {
			return xerrors.New("duplicated genesis holder: " + h.Address.Hex())
		}
		seen[h.Address] = struct{}{}

		s, xerr := ctrlertypes.AddWeight(supply, h.Balance)
		if xerr != nil {
			return xerr
		}
		supply = s
	}
	return nil
}

func (ga *GenesisAppState) TotalSupply() *uint256.Int {
	supply := uint256.NewInt(0)
	for _, h := range ga.Holders {
		if h.Balance != nil {
			supply.Add(supply, h.Balance)
		}
	}
	return supply
}

func (ga *GenesisAppState) Hash() []byte {
	hasher := crypto.DefaultHasher()
	for _, h := range ga.Holders {
		hasher.Write(h.Hash())
	}
	return hasher.Sum(nil)
}
