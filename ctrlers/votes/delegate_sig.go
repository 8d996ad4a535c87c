package votes

import (
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/crypto"
	"github.com/finaswap/finatoken/types/xerrors"
)

// DelegateBySig delegates the votes of whoever signed the Delegation message.
// The signature must not be expired and must carry the signer's current nonce,
// which is consumed only if the whole delegation succeeds.
func (ctrler *VotesCtrler) DelegateBySig(delegatee types.Address, nonce, expiry uint64, sig []byte) (types.Address, xerrors.XError) {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if xerr := ctrler.checkPaused(); xerr != nil {
		return types.ZeroAddress(), xerr
	}

	now := ctrler.blockTime.Load()
	if now < 0 || uint64(now) > expiry {
		return types.ZeroAddress(), xerrors.ErrExpired.Wrapf("expiry: %d, block time: %d", expiry, now)
	}

	digest, xerr := crypto.DelegationDigest(ctrler.domain, delegatee, nonce, expiry)
	if xerr != nil {
		return types.ZeroAddress(), xerr
	}
	signer, xerr := crypto.RecoverAddr(digest, sig)
	if xerr != nil {
		return types.ZeroAddress(), xerr
	}

	d, xerr := ctrler.reg.get(signer)
	if xerr != nil {
		return types.ZeroAddress(), xerr
	}
	if xerr := d.UseNonce(nonce); xerr != nil {
		ctrler.reg.revert()
		return types.ZeroAddress(), xerr
	}
	if xerr := ctrler.delegate(d, delegatee); xerr != nil {
		ctrler.reg.revert()
		return types.ZeroAddress(), xerr
	}
	return signer, nil
}
