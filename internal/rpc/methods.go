package rpc

import (
	"context"
	"encoding/json"
	"fmt"
)

// ChainEntry is one element of the getBlockChain result: the node returns
// an ordered list of [epoch, digest] pairs.
type ChainEntry struct {
	Epoch  uint32
	Digest string
}

// UnmarshalJSON decodes the wire tuple form.
func (e *ChainEntry) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("chain entry has %d elements, want 2", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &e.Epoch); err != nil {
		return fmt.Errorf("chain entry epoch: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &e.Digest); err != nil {
		return fmt.Errorf("chain entry digest: %w", err)
	}
	return nil
}

// MarshalJSON re-encodes the tuple form, so pass-through JSON output
// matches what the node sent.
func (e ChainEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{e.Epoch, e.Digest})
}

// getBlockChainParams mirrors the node's named-parameter object. A zero
// limit means "no limit" on the node side.
type getBlockChainParams struct {
	Epoch uint64 `json:"epoch"`
	Limit uint64 `json:"limit"`
}

// GetBlockChain lists known block digests starting at range.Start,
// range.Count entries at most (0 for the node's default).
func (c *Client) GetBlockChain(ctx context.Context, r EpochRange) ([]ChainEntry, error) {
	result, err := c.Call(ctx, "getBlockChain", getBlockChainParams{Epoch: r.Start, Limit: r.Count})
	if err != nil {
		return nil, err
	}
	var entries []ChainEntry
	if err := json.Unmarshal(result, &entries); err != nil {
		return nil, &ProtocolError{Reason: fmt.Sprintf("unexpected getBlockChain result: %v", err), Line: string(result)}
	}
	return entries, nil
}

// CurrentEpoch asks the node for the current chain height. It is issued
// before resolving a negative epoch argument.
func (c *Client) CurrentEpoch(ctx context.Context) (uint64, error) {
	result, err := c.Call(ctx, "getEpoch", nil)
	if err != nil {
		return 0, err
	}
	var epoch uint64
	if err := json.Unmarshal(result, &epoch); err != nil {
		return 0, &ProtocolError{Reason: fmt.Sprintf("unexpected getEpoch result: %v", err), Line: string(result)}
	}
	return epoch, nil
}

// GetBlock fetches one block by hash. The hash must already be validated
// with ValidateBlockHash; the result is returned raw because no human
// format is defined for blocks beyond valid JSON.
func (c *Client) GetBlock(ctx context.Context, hash string) (json.RawMessage, error) {
	return c.Call(ctx, "getBlock", []interface{}{hash})
}

// GetOutput fetches the transaction output the pointer refers to. The
// result is a tagged variant object and is returned raw.
func (c *Client) GetOutput(ctx context.Context, ptr OutputPointer) (json.RawMessage, error) {
	return c.Call(ctx, "getOutput", []interface{}{ptr.String()})
}

// Inventory submits a block or transaction inventory item for the node to
// process, validate and potentially broadcast. The node answers with a
// boolean indicating success.
func (c *Client) Inventory(ctx context.Context, item json.RawMessage) (bool, error) {
	result, err := c.Call(ctx, "inventory", item)
	if err != nil {
		return false, err
	}
	var ok bool
	if err := json.Unmarshal(result, &ok); err != nil {
		return false, &ProtocolError{Reason: fmt.Sprintf("unexpected inventory result: %v", err), Line: string(result)}
	}
	return ok, nil
}
