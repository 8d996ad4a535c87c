package crypto

import (
	"crypto/ecdsa"
	"strconv"

	"github.com/ethereum/go-ethereum/common/math"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
)

const DelegationPrimaryType = "Delegation"

var delegationTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	DelegationPrimaryType: {
		{Name: "delegatee", Type: "address"},
		{Name: "nonce", Type: "uint256"},
		{Name: "expiry", Type: "uint256"},
	},
}

// Domain binds signed delegations to one token deployment.
type Domain struct {
	Name              string        `json:"name"`
	Version           string        `json:"version"`
	ChainID           int64         `json:"chainId"`
	VerifyingContract types.Address `json:"verifyingContract"`
}

func (d *Domain) typedDataDomain() apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              d.Name,
		Version:           d.Version,
		ChainId:           math.NewHexOrDecimal256(d.ChainID),
		VerifyingContract: d.VerifyingContract.Hex(),
	}
}

func (d *Domain) Separator() ([]byte, xerrors.XError) {
	td := apitypes.TypedData{
		Types:  delegationTypes,
		Domain: d.typedDataDomain(),
	}
	sep, err := td.HashStruct("EIP712Domain", td.Domain.Map())
	if err != nil {
		return nil, xerrors.From(err)
	}
	return sep, nil
}

func DelegationTypedData(domain *Domain, delegatee types.Address, nonce, expiry uint64) apitypes.TypedData {
	return apitypes.TypedData{
		Types:       delegationTypes,
		PrimaryType: DelegationPrimaryType,
		Domain:      domain.typedDataDomain(),
		Message: apitypes.TypedDataMessage{
			"delegatee": delegatee.Hex(),
			"nonce":     strconv.FormatUint(nonce, 10),
			"expiry":    strconv.FormatUint(expiry, 10),
		},
	}
}

// DelegationDigest is keccak256("\x19\x01" || domainSeparator || hashStruct(Delegation)).
func DelegationDigest(domain *Domain, delegatee types.Address, nonce, expiry uint64) ([]byte, xerrors.XError) {
	td := DelegationTypedData(domain, delegatee, nonce, expiry)

	domainSep, err := td.HashStruct("EIP712Domain", td.Domain.Map())
	if err != nil {
		return nil, xerrors.From(err)
	}
	msgHash, err := td.HashStruct(td.PrimaryType, td.Message)
	if err != nil {
		return nil, xerrors.From(err)
	}

	raw := make([]byte, 0, 2+len(domainSep)+len(msgHash))
	raw = append(raw, 0x19, 0x01)
	raw = append(raw, domainSep...)
	raw = append(raw, msgHash...)
	return ethcrypto.Keccak256(raw), nil
}

func SignDelegation(domain *Domain, delegatee types.Address, nonce, expiry uint64, prv *ecdsa.PrivateKey) ([]byte, xerrors.XError) {
	digest, xerr := DelegationDigest(domain, delegatee, nonce, expiry)
	if xerr != nil {
		return nil, xerr
	}
	sig, err := SignDigest(digest, prv)
	if err != nil {
		return nil, xerrors.From(err)
	}
	return sig, nil
}
