package rpc

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// OutputPointer identifies a transaction output: the owning transaction's
// 32-byte hash and the output's index within that transaction.
type OutputPointer struct {
	TransactionID [32]byte
	OutputIndex   uint32
}

// ParseOutputPointer parses the "<64 hex chars>:<index>" form. Anything
// else fails before a request is sent.
func ParseOutputPointer(s string) (OutputPointer, error) {
	var ptr OutputPointer

	txid, index, ok := strings.Cut(s, ":")
	if !ok {
		return ptr, fmt.Errorf("output pointer %q lacks a ':' separator: %w", s, ErrInvalidArguments)
	}

	raw, err := hex.DecodeString(txid)
	if err != nil {
		return ptr, fmt.Errorf("output pointer transaction id is not valid hex: %w", ErrInvalidArguments)
	}
	if len(raw) != 32 {
		return ptr, fmt.Errorf("output pointer transaction id is %d bytes, want 32: %w", len(raw), ErrInvalidArguments)
	}
	copy(ptr.TransactionID[:], raw)

	idx, err := strconv.ParseUint(index, 10, 32)
	if err != nil {
		return ptr, fmt.Errorf("output pointer index %q is not a valid non-negative integer: %w", index, ErrInvalidArguments)
	}
	ptr.OutputIndex = uint32(idx)

	return ptr, nil
}

// String renders the canonical wire form.
func (p OutputPointer) String() string {
	return fmt.Sprintf("%s:%d", hex.EncodeToString(p.TransactionID[:]), p.OutputIndex)
}

// ValidateBlockHash checks that s is a 64-character hex string, the only
// argument shape getBlock accepts.
func ValidateBlockHash(s string) error {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("block hash is not valid hex: %w", ErrInvalidArguments)
	}
	if len(raw) != 32 {
		return fmt.Errorf("block hash is %d bytes, want 32: %w", len(raw), ErrInvalidArguments)
	}
	return nil
}
