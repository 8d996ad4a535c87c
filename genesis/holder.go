package genesis

import (
	"encoding/json"

	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/crypto"
	"github.com/holiman/uint256"
)

// GenesisHolder is an initial balance and, optionally, its initial delegatee.
type GenesisHolder struct {
	Address   types.Address
	Balance   *uint256.Int
	Delegatee types.Address
}

type holderJSON struct {
	Address   types.Address `json:"address"`
	Balance   string        `json:"balance"`
	Delegatee types.Address `json:"delegatee"`
}

func (gh *GenesisHolder) MarshalJSON() ([]byte, error) {
	return json.Marshal(&holderJSON{
		Address:   gh.Address,
		Balance:   gh.Balance.Dec(),
		Delegatee: gh.Delegatee,
	})
}

func (gh *GenesisHolder) UnmarshalJSON(bz []byte) error {
	tm := &holderJSON{}
	if err := json.Unmarshal(bz, tm); err != nil {
		return err
	}

	bal, err := uint256.FromDecimal(tm.Balance)
	if err != nil {
		return err
	}

	gh.Address = tm.Address
	gh.Balance = bal
	gh.Delegatee = tm.Delegatee
	return nil
}

func (gh *GenesisHolder) Hash() []byte {
	hasher := crypto.DefaultHasher()
	hasher.Write(gh.Address[:])
	hasher.Write(gh.Balance.Bytes())
	hasher.Write(gh.Delegatee[:])
	return hasher.Sum(nil)
}

var _ json.Marshaler = (*GenesisHolder)(nil)
var _ json.Unmarshaler = (*GenesisHolder)(nil)
