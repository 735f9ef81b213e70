package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// RenderJSON pretty-prints a raw result payload. This is the pass-through
// default for commands without a dedicated renderer (getBlock, getOutput
// and anything the node grows later). Payloads that fail to indent are
// written as-is rather than dropped.
func RenderJSON(w io.Writer, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, werr := fmt.Fprintln(w, string(raw))
		return werr
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}

// RenderInventory reports the node's boolean answer to an inventory
// submission.
func RenderInventory(w io.Writer, accepted bool) {
	if accepted {
		fmt.Fprintf(w, "%s inventory item accepted\n", green("✓"))
		return
	}
	fmt.Fprintf(w, "%s inventory item rejected\n", red("✗"))
}
