package crypto

import (
	"crypto/ecdsa"
	"hash"
	"math/big"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
)

const (
	DigestLength    = 32
	SignatureLength = ethcrypto.SignatureLength
)

func NewPrvKey() (*ecdsa.PrivateKey, error) {
	return ethcrypto.GenerateKey()
}

func Pub2Addr(pub *ecdsa.PublicKey) types.Address {
	return ethcrypto.PubkeyToAddress(*pub)
}

// SignDigest returns a 65 bytes signature `r || s || v` where v is 27 or 28.
func SignDigest(digest []byte, prv *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := ethcrypto.Sign(digest, prv)
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}

func SigFromVRS(v uint8, r, s [32]byte) []byte {
	sig := make([]byte, SignatureLength)
	copy(sig[:32], r[:])
	copy(sig[32:64], s[:])
	sig[64] = v
	return sig
}

// RecoverAddr returns the address that produced sig over digest.
// Malleable signatures (high s) are rejected and so is a recovery yielding the zero address.
func RecoverAddr(digest, sig []byte) (types.Address, xerrors.XError) {
	if len(digest) != DigestLength {
		return types.ZeroAddress(), xerrors.ErrInvalidSignature.Wrapf("wrong digest length: %d", len(digest))
	}
	if len(sig) != SignatureLength {
		return types.ZeroAddress(), xerrors.ErrInvalidSignature.Wrapf("wrong signature length: %d", len(sig))
	}

	v := sig[64]
	if v >= 27 {
		v -= 27
	}
	if v != 0 && v != 1 {
		return types.ZeroAddress(), xerrors.ErrInvalidSignature.Wrapf("invalid signature 'v' value: %d", sig[64])
	}

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !ethcrypto.ValidateSignatureValues(v, r, s, true) {
		return types.ZeroAddress(), xerrors.ErrInvalidSignature.Wrapf("invalid signature 'r' or 's' value")
	}

	_sig := make([]byte, SignatureLength)
	copy(_sig, sig)
	_sig[64] = v

	pubKey, err := ethcrypto.SigToPub(digest, _sig)
	if err != nil {
		return types.ZeroAddress(), xerrors.ErrInvalidSignature.Wrap(err)
	}

	addr := Pub2Addr(pubKey)
	if types.IsZeroAddress(addr) {
		return types.ZeroAddress(), xerrors.ErrInvalidSignature.Wrapf("recovered zero address")
	}
	return addr, nil
}

func DefaultHash(datas ...[]byte) []byte {
	hasher := DefaultHasher()
	for _, bz := range datas {
		hasher.Write(bz)
	}
	return hasher.Sum(nil)
}

func DefaultHasher() hash.Hash {
	return ethcrypto.NewKeccakState()
}

func DefaultHasherName() string {
	return "keccak256"
}
