// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import "fmt"

// DefaultMinRelayTxFee is the minimum fee in zatoshi that is required for
// a transaction to be treated as free for relay and mining purposes. It is
// also used to help determine if a transaction is considered dust and as a
// base for calculating minimum required fees for larger transactions. This
// value is in zatoshi/1000 bytes.
const DefaultMinRelayTxFee = Amount(1000)

// FeeRate represents a fee rate in zatoshi per 1000 bytes of serialized
// transaction.
type FeeRate struct {
	zatoshiPerKB Amount
}

// NewFeeRate returns a fee rate of the given amount of zatoshi per 1000
// bytes.
func NewFeeRate(zatoshiPerKB Amount) FeeRate {
	return FeeRate{zatoshiPerKB: zatoshiPerKB}
}

// Fee returns the fee in zatoshi required for the passed serialized size.
//
// The fee is scaled from the per-kilobyte rate by the actual size in bytes.
// A non-zero rate never yields a zero fee for a non-empty payload, and the
// result is clamped to the valid monetary range.
func (f FeeRate) Fee(size int64) Amount {
	fee := Amount(size) * f.zatoshiPerKB / 1000

	if fee == 0 && f.zatoshiPerKB > 0 {
		fee = f.zatoshiPerKB
	}

	if fee < 0 || fee > MaxZatoshi {
		fee = MaxZatoshi
	}

	return fee
}

// PerKB returns the rate in zatoshi per 1000 bytes.
func (f FeeRate) PerKB() Amount {
	return f.zatoshiPerKB
}

// String returns the fee rate in a human readable form.
func (f FeeRate) String() string {
	return fmt.Sprintf("%d zatoshi/kB", int64(f.zatoshiPerKB))
}
