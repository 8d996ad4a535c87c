package bytes

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// HexBytes is encoded as a 0x-prefixed hex string in json.
type HexBytes []byte

func (hb HexBytes) MarshalJSON() ([]byte, error) {
	s := hexutil.Encode(hb)
	jbz := make([]byte, len(s)+2)
	jbz[0] = '"'
	copy(jbz[1:], s)
	jbz[len(jbz)-1] = '"'
	return jbz, nil
}

func (hb *HexBytes) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid hex string: %s", data)
	}

	str := string(data[1 : len(data)-1])
	if len(str) < 2 || str[:2] != "0x" {
		str = "0x" + str
	}
	bz, err := hexutil.Decode(str)
	if err != nil {
		return err
	}
	*hb = bz
	return nil
}

func (hb HexBytes) Bytes() []byte {
	return hb
}

func (hb HexBytes) Compare(o HexBytes) int {
	return bytes.Compare(hb, o)
}

func (hb HexBytes) Array32() [32]byte {
	var ret [32]byte
	n := len(ret)
	if len(hb) < n {
		n = len(hb)
	}
	copy(ret[:], hb[:n])
	return ret
}

func (hb HexBytes) String() string {
	return hexutil.Encode(hb)
}
