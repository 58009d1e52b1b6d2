package safe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    uint64
		b    uint64
		want uint64
		ok   bool
	}{
		{"zero plus zero", 0, 0, 0, true},
		{"small values", 1, 2, 3, true},
		{"max plus zero", math.MaxUint64, 0, math.MaxUint64, true},
		{"lands exactly on max", math.MaxUint64 - 1, 1, math.MaxUint64, true},
		{"max plus one overflows", math.MaxUint64, 1, 0, false},
		{"both halves overflow", 1 << 63, 1 << 63, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Add64(tt.a, tt.b)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSub64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    uint64
		b    uint64
		want uint64
		ok   bool
	}{
		{"zero minus zero", 0, 0, 0, true},
		{"small values", 3, 2, 1, true},
		{"max minus max", math.MaxUint64, math.MaxUint64, 0, true},
		{"max minus zero", math.MaxUint64, 0, math.MaxUint64, true},
		{"zero minus one underflows", 0, 1, 0, false},
		{"one short underflows", 5, 6, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Sub64(tt.a, tt.b)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
