package access

import (
	"sync"

	ctrlertypes "github.com/finaswap/finatoken/ctrlers/types"
	"github.com/finaswap/finatoken/types"
	"github.com/finaswap/finatoken/types/xerrors"
	tmlog "github.com/tendermint/tendermint/libs/log"
)

// AccessCtrler keeps role memberships and the pause flag.
// Every role is administered by DEFAULT_ADMIN_ROLE.
type AccessCtrler struct {
	members map[types.Role]map[types.Address]struct{}
	paused  bool

	logger tmlog.Logger
	mtx    sync.RWMutex
}

func NewAccessCtrler(admin types.Address, logger tmlog.Logger) *AccessCtrler {
	ctrler := &AccessCtrler{
		members: make(map[types.Role]map[types.Address]struct{}),
		logger:  logger.With("module", "access"),
	}
	ctrler.grant(types.DEFAULT_ADMIN_ROLE, admin)
	return ctrler
}

func (ctrler *AccessCtrler) hasRole(role types.Role, addr types.Address) bool {
	if m, ok := ctrler.members[role]; ok {
		_, ok = m[addr]
		return ok
	}
	return false
}

func (ctrler *AccessCtrler) checkRole(role types.Role, addr types.Address) xerrors.XError {
	if !ctrler.hasRole(role, addr) {
		return xerrors.ErrUnauthorized.Wrapf("account %v is missing role %v", addr.Hex(), types.RoleName(role))
	}
	return nil
}

func (ctrler *AccessCtrler) grant(role types.Role, addr types.Address) {
	m, ok := ctrler.members[role]
	if !ok {
		m = make(map[types.Address]struct{})
		ctrler.members[role] = m
	}
	m[addr] = struct{}{}
}

func (ctrler *AccessCtrler) HasRole(role types.Role, addr types.Address) bool {
	ctrler.mtx.RLock()
	defer ctrler.mtx.RUnlock()

	return ctrler.hasRole(role, addr)
}

func (ctrler *AccessCtrler) GrantRole(caller types.Address, role types.Role, addr types.Address) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if xerr := ctrler.checkRole(types.DEFAULT_ADMIN_ROLE, caller); xerr != nil {
		return xerr
	}
	if !ctrler.hasRole(role, addr) {
		ctrler.grant(role, addr)
		ctrler.logger.Info("role granted", "role", types.RoleName(role), "account", addr.Hex(), "sender", caller.Hex())
	}
	return nil
}

func (ctrler *AccessCtrler) RevokeRole(caller types.Address, role types.Role, addr types.Address) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if xerr := ctrler.checkRole(types.DEFAULT_ADMIN_ROLE, caller); xerr != nil {
		return xerr
	}
	ctrler.revoke(role, addr, caller)
	return nil
}

// RenounceRole lets caller give up its own role.
func (ctrler *AccessCtrler) RenounceRole(caller types.Address, role types.Role) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	ctrler.revoke(role, caller, caller)
	return nil
}

func (ctrler *AccessCtrler) revoke(role types.Role, addr, caller types.Address) {
	if ctrler.hasRole(role, addr) {
		delete(ctrler.members[role], addr)
		ctrler.logger.Info("role revoked", "role", types.RoleName(role), "account", addr.Hex(), "sender", caller.Hex())
	}
}

func (ctrler *AccessCtrler) Pause(caller types.Address) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if xerr := ctrler.checkRole(types.PAUSER_ROLE, caller); xerr != nil {
		return xerr
	}
	if ctrler.paused {
		return xerrors.ErrAlreadyPaused
	}
	ctrler.paused = true
	ctrler.logger.Info("paused", "sender", caller.Hex())
	return nil
}

func (ctrler *AccessCtrler) Unpause(caller types.Address) xerrors.XError {
	ctrler.mtx.Lock()
	defer ctrler.mtx.Unlock()

	if xerr := ctrler.checkRole(types.PAUSER_ROLE, caller); xerr != nil {
		return xerr
	}
	if !ctrler.paused {
		return xerrors.ErrNotPaused
	}
	ctrler.paused = false
	ctrler.logger.Info("unpaused", "sender", caller.Hex())
	return nil
}

func (ctrler *AccessCtrler) IsPaused() bool {
	ctrler.mtx.RLock()
	defer ctrler.mtx.RUnlock()

	return ctrler.paused
}

var _ ctrlertypes.IPauseOracle = (*AccessCtrler)(nil)
var _ ctrlertypes.IRoleOracle = (*AccessCtrler)(nil)
