// Copyright (c) 2013, 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAmount(t *testing.T) {
	tests := []struct {
		name  string
		zen   float64
		want  Amount
		valid bool
	}{
		{"zero", 0, 0, true},
		{"one zenith", 1, ZatoshiPerZenith, true},
		{"max producible", 21e6, MaxZatoshi, true},
		{"rounds up", 54.999999999999943157, 5500000000, true},
		{"rounds down", 55.000000000000056843, 5500000000, true},
		{"negative", -1, -ZatoshiPerZenith, true},
		{"NaN", math.NaN(), 0, false},
		{"+Inf", math.Inf(1), 0, false},
		{"-Inf", math.Inf(-1), 0, false},
	}

	for _, test := range tests {
		got, err := NewAmount(test.zen)
		if !test.valid {
			require.Error(t, err, test.name)
			continue
		}
		require.NoError(t, err, test.name)
		require.Equal(t, test.want, got, test.name)
	}
}

func TestAmountUnitConversions(t *testing.T) {
	amt := Amount(44433322211100)

	require.Equal(t, 44.433322211100, amt.ToUnit(AmountMegaZen))
	require.Equal(t, 44433.322211100, amt.ToUnit(AmountKiloZen))
	require.Equal(t, 444333.22211100, amt.ToZEN())
	require.Equal(t, 444333222.11100, amt.ToUnit(AmountMilliZen))
	require.Equal(t, 444333222111.00, amt.ToUnit(AmountMicroZen))
	require.Equal(t, 44433322211100.0, amt.ToUnit(AmountZatoshi))

	require.Equal(t, "444333.22211100 ZEN", amt.String())
	require.Equal(t, "44433322211100 Zatoshi", amt.Format(AmountZatoshi))
	require.Equal(t, "1e-5 ZEN", AmountUnit(-5).String())
}

func TestAmountMulF64(t *testing.T) {
	tests := []struct {
		name string
		amt  Amount
		mul  float64
		want Amount
	}{
		{"whole product", 100000000, 2.5, 250000000},
		{"rounds half away from zero", 3, 0.5, 2},
		{"negative multiplier", 100000000, -0.5, -50000000},
		{"zero multiplier", 100000000, 0, 0},
	}

	for _, test := range tests {
		require.Equal(t, test.want, test.amt.MulF64(test.mul), test.name)
	}
}
