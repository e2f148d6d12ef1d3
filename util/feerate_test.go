// Copyright (c) 2013, 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeeRateFee(t *testing.T) {
	tests := []struct {
		name string
		rate Amount
		size int64
		want Amount
	}{
		{"zero rate", 0, 1000, 0},
		{"exactly one kilobyte", 1000, 1000, 1000},
		{"scales by size", 1000, 182, 182},
		{"small payload bumped to rate", 1000, 0, 1000},
		{"fractional kilobyte", 2500, 400, 1000},
		{"clamped to max", MaxZatoshi, 2000, MaxZatoshi},
	}

	for _, test := range tests {
		f := NewFeeRate(test.rate)
		require.Equal(t, test.want, f.Fee(test.size), test.name)
	}
}

func TestFeeRateAccessors(t *testing.T) {
	f := NewFeeRate(DefaultMinRelayTxFee)
	require.Equal(t, DefaultMinRelayTxFee, f.PerKB())
	require.Equal(t, "1000 zatoshi/kB", f.String())
}
