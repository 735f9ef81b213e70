package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/chain-cli/internal/rpc"
)

// RenderBlockChainTerminal writes one line per chain entry in the
// canonical form:
//
//	Block for epoch #<epoch> had digest <digest>
func RenderBlockChainTerminal(w io.Writer, entries []rpc.ChainEntry) {
	for _, e := range entries {
		fmt.Fprintf(w, "Block for epoch #%d had digest %s\n", e.Epoch, e.Digest)
	}
}

// RenderBlockChainTable writes the entries as an epoch/digest table.
func RenderBlockChainTable(w io.Writer, entries []rpc.ChainEntry) {
	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Epoch", "Digest")
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	for _, e := range entries {
		tbl.AddRow(e.Epoch, e.Digest)
	}

	tbl.Print()
}

// RenderBlockChainJSON writes the entries back out in the node's tuple
// form.
func RenderBlockChainJSON(w io.Writer, entries []rpc.ChainEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
