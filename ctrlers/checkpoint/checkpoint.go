package checkpoint

import (
	"sort"

	"github.com/finaswap/finatoken/types/xerrors"
	"github.com/holiman/uint256"
)

// Checkpoint is the weight of an account from block FromBlock on.
// A committed checkpoint is never modified; Votes is replaced, not mutated.
type Checkpoint struct {
	FromBlock int64        `json:"fromBlock"`
	Votes     *uint256.Int `json:"votes"`
}

func (cp Checkpoint) copy() Checkpoint {
	return Checkpoint{
		FromBlock: cp.FromBlock,
		Votes:     new(uint256.Int).Set(cp.Votes),
	}
}

// History is the checkpoint list of one account, ordered by FromBlock.
// No two checkpoints share a FromBlock.
type History struct {
	checkpoints []Checkpoint
}

func (h *History) Len() int {
	return len(h.checkpoints)
}

func (h *History) At(idx int) (Checkpoint, xerrors.XError) {
	if idx < 0 || idx >= len(h.checkpoints) {
		return Checkpoint{}, xerrors.ErrIndexOutOfRange.Wrapf("index: %d, count: %d", idx, len(h.checkpoints))
	}
	return h.checkpoints[idx].copy(), nil
}

func (h *History) All() []Checkpoint {
	ret := make([]Checkpoint, len(h.checkpoints))
	for i, cp := range h.checkpoints {
		ret[i] = cp.copy()
	}
	return ret
}

// Latest returns the weight of the last checkpoint or zero.
func (h *History) Latest() *uint256.Int {
	n := len(h.checkpoints)
	if n == 0 {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).Set(h.checkpoints[n-1].Votes)
}

func (h *History) CheckPush(height int64) xerrors.XError {
	n := len(h.checkpoints)
	if n > 0 && h.checkpoints[n-1].FromBlock > height {
		return xerrors.ErrOrderingViolation.Wrapf("last checkpoint block: %d, requested block: %d",
			h.checkpoints[n-1].FromBlock, height)
	}
	return nil
}

// Push appends a checkpoint or replaces the last one when it was written at the same height.
func (h *History) Push(height int64, votes *uint256.Int) xerrors.XError {
	if xerr := h.CheckPush(height); xerr != nil {
		return xerr
	}

	cp := Checkpoint{
		FromBlock: height,
		Votes:     new(uint256.Int).Set(votes),
	}
	n := len(h.checkpoints)
	if n > 0 && h.checkpoints[n-1].FromBlock == height {
		h.checkpoints[n-1] = cp
	} else {
		h.checkpoints = append(h.checkpoints, cp)
	}
	return nil
}

// LowerLookup returns the weight of the last checkpoint whose FromBlock <= height,
// or zero if there is none.
func (h *History) LowerLookup(height int64) *uint256.Int {
	idx := sort.Search(len(h.checkpoints), func(i int) bool {
		return h.checkpoints[i].FromBlock > height
	})
	if idx == 0 {
		return uint256.NewInt(0)
	}
	return new(uint256.Int).Set(h.checkpoints[idx-1].Votes)
}
