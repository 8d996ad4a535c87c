package bytes

import (
	"crypto/rand"
	mrand "math/rand"
)

func RandBytes(n int) []byte {
	bz := make([]byte, n)
	_, _ = rand.Read(bz)
	return bz
}

func ZeroBytes(n int) []byte {
	return make([]byte, n)
}

func RandHexBytes(n int) HexBytes {
	return HexBytes(RandBytes(n))
}

func RandInt63n(n int64) int64 {
	return mrand.Int63n(n)
}

func ClearBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = 0x00
	}
}
