package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dmagro/chain-cli/internal/rpc"
)

func TestRenderBlockChainTerminal(t *testing.T) {
	entries := []rpc.ChainEntry{
		{Epoch: 46924, Digest: "e70699"},
		{Epoch: 46925, Digest: "2dc469"},
	}

	var out strings.Builder
	RenderBlockChainTerminal(&out, entries)

	want := "Block for epoch #46924 had digest e70699\n" +
		"Block for epoch #46925 had digest 2dc469\n"
	if out.String() != want {
		t.Errorf("RenderBlockChainTerminal() = %q, want %q", out.String(), want)
	}
}

func TestRenderBlockChainTerminalEmpty(t *testing.T) {
	var out strings.Builder
	RenderBlockChainTerminal(&out, nil)
	if out.String() != "" {
		t.Errorf("expected no output for an empty chain, got %q", out.String())
	}
}

func TestRenderBlockChainJSONKeepsTupleForm(t *testing.T) {
	entries := []rpc.ChainEntry{{Epoch: 1, Digest: "ab"}}

	var out strings.Builder
	if err := RenderBlockChainJSON(&out, entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded [][2]interface{}
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0][0] != float64(1) || decoded[0][1] != "ab" {
		t.Errorf("unexpected tuple form: %v", decoded)
	}
}

func TestRenderJSONPrettyPrints(t *testing.T) {
	var out strings.Builder
	if err := RenderJSON(&out, json.RawMessage(`{"a":1,"b":[2,3]}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "\n  \"a\": 1") {
		t.Errorf("output not indented: %q", out.String())
	}
}

func TestRenderJSONPassesThroughUnindentable(t *testing.T) {
	var out strings.Builder
	if err := RenderJSON(&out, json.RawMessage("not-json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "not-json\n" {
		t.Errorf("got %q, want raw pass-through", out.String())
	}
}
