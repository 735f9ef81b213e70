package rpc

import (
	"errors"
	"testing"
)

func TestResolveEpochRange(t *testing.T) {
	tests := []struct {
		name     string
		epoch    int64
		limit    int64
		limitSet bool
		height   uint64
		want     EpochRange
		wantErr  bool
	}{
		{"zero epoch no limit", 0, 0, false, 46925, EpochRange{Start: 0, Count: 0}, false},
		{"positive epoch no limit", 46900, 0, false, 46925, EpochRange{Start: 46900, Count: 0}, false},
		{"positive epoch with limit", 46900, 10, true, 46925, EpochRange{Start: 46900, Count: 10}, false},
		{"last one epoch", -1, 0, false, 46925, EpochRange{Start: 46925, Count: 1}, false},
		{"last ten epochs", -10, 0, false, 46925, EpochRange{Start: 46916, Count: 10}, false},
		{"negative epoch explicit limit wins", -100, 5, true, 46925, EpochRange{Start: 46826, Count: 5}, false},
		{"negative epoch beyond genesis clamps", -100, 0, false, 50, EpochRange{Start: 0, Count: 100}, false},
		{"negative epoch exactly to genesis", -51, 0, false, 50, EpochRange{Start: 0, Count: 51}, false},
		{"zero explicit limit", 10, 0, true, 46925, EpochRange{}, true},
		{"negative explicit limit", 10, -5, true, 46925, EpochRange{}, true},
		{"negative epoch with zero explicit limit", -10, 0, true, 46925, EpochRange{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEpochRange(tt.epoch, tt.limit, tt.limitSet, tt.height)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveEpochRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArguments) {
					t.Errorf("error %v is not ErrInvalidArguments", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ResolveEpochRange() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveEpochRangeIsPure(t *testing.T) {
	first, err := ResolveEpochRange(-7, 0, false, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ResolveEpochRange(-7, 0, false, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("identical inputs produced different ranges: %+v vs %+v", first, second)
	}
}
