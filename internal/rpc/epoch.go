package rpc

import "fmt"

// EpochRange is the resolved window of a getBlockChain request: a concrete
// non-negative starting epoch and entry count (0 meaning the node's
// default).
type EpochRange struct {
	Start uint64
	Count uint64
}

// ResolveEpochRange turns the user-supplied signed epoch and optional
// limit into a concrete range.
//
// A non-negative epoch starts the listing there; the limit, when given,
// caps the count. A negative epoch -k means "the last k epochs up to the
// current height": the start is height+epoch+1 clamped at 0, and k becomes
// the implied count unless an explicit limit overrides it.
//
// Pure function of its inputs; height only matters for negative epochs.
func ResolveEpochRange(epoch int64, limit int64, limitSet bool, height uint64) (EpochRange, error) {
	if limitSet && limit <= 0 {
		return EpochRange{}, fmt.Errorf("limit must be positive, got %d: %w", limit, ErrInvalidArguments)
	}

	if epoch >= 0 {
		r := EpochRange{Start: uint64(epoch)}
		if limitSet {
			r.Count = uint64(limit)
		}
		return r, nil
	}

	k := uint64(-epoch)
	r := EpochRange{Count: k}
	if k <= height {
		r.Start = height - k + 1
	}
	if limitSet {
		r.Count = uint64(limit)
	}
	return r, nil
}
