package rpc

import (
	"encoding/json"
	"testing"
)

func TestChainEntryUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ChainEntry
		wantErr bool
	}{
		{"valid pair", `[46924,"e70699"]`, ChainEntry{Epoch: 46924, Digest: "e70699"}, false},
		{"not an array", `{"epoch":1}`, ChainEntry{}, true},
		{"too few elements", `[46924]`, ChainEntry{}, true},
		{"too many elements", `[46924,"a","b"]`, ChainEntry{}, true},
		{"epoch not a number", `["46924","e70699"]`, ChainEntry{}, true},
		{"digest not a string", `[46924,5]`, ChainEntry{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e ChainEntry
			err := json.Unmarshal([]byte(tt.input), &e)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && e != tt.want {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.input, e, tt.want)
			}
		})
	}
}

func TestChainEntryRoundTrip(t *testing.T) {
	entry := ChainEntry{Epoch: 46925, Digest: "2dc469"}
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `[46925,"2dc469"]` {
		t.Errorf("Marshal() = %s, want [46925,\"2dc469\"]", data)
	}
}
