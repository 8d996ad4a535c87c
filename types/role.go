package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type Role = common.Hash

var (
	DEFAULT_ADMIN_ROLE = Role{}
	MINTER_ROLE        = crypto.Keccak256Hash([]byte("MINTER_ROLE"))
	PAUSER_ROLE        = crypto.Keccak256Hash([]byte("PAUSER_ROLE"))
)

func RoleName(r Role) string {
	switch r {
	case DEFAULT_ADMIN_ROLE:
		return "DEFAULT_ADMIN_ROLE"
	case MINTER_ROLE:
		return "MINTER_ROLE"
	case PAUSER_ROLE:
		return "PAUSER_ROLE"
	default:
		return r.Hex()
	}
}
