package types

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/finaswap/finatoken/types/bytes"
	"github.com/finaswap/finatoken/types/xerrors"
)

const AddrSize = common.AddressLength

type Address = common.Address

func RandAddress() Address {
	return common.BytesToAddress(bytes.RandBytes(AddrSize))
}

func ZeroAddress() Address {
	return Address{}
}

func IsZeroAddress(addr Address) bool {
	return addr == Address{}
}

func HexToAddress(_hex string) (Address, xerrors.XError) {
	if !strings.HasPrefix(_hex, "0x") && !strings.HasPrefix(_hex, "0X") {
		_hex = "0x" + _hex
	}
	if !common.IsHexAddress(_hex) {
		return Address{}, xerrors.New("error of address format: address should be 20 bytes hex string")
	}
	return common.HexToAddress(_hex), nil
}

// BytesToAddress fails unless bz is exactly AddrSize long.
func BytesToAddress(bz []byte) (Address, xerrors.XError) {
	if len(bz) != AddrSize {
		return Address{}, xerrors.New("error of address length: address length should be 20 bytes")
	}
	return common.BytesToAddress(bz), nil
}

// AddrPtr returns nil for the zero address.
// A nil *Address stands for "nowhere" when votes are minted or burned.
func AddrPtr(addr Address) *Address {
	if IsZeroAddress(addr) {
		return nil
	}
	return &addr
}
