// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"math/big"
	"testing"

	"github.com/zenithchain/zenithd/util"
	"github.com/zenithchain/zenithd/util/chainhash"
)

// stakeTestTx builds a frozen single-output transaction carrying the passed
// value.
func stakeTestTx(t *testing.T, value util.Amount) *Transaction {
	t.Helper()

	mtx := NewMutableTransaction(1)
	mtx.AddTxIn(NewTxInFromHash(&chainhash.ZeroHash, 0, []byte{0x51}))
	mtx.AddTxOut(NewTxOut(value, []byte{0x51}))

	tx, err := NewTransaction(mtx)
	if err != nil {
		t.Fatalf("NewTransaction: error %v", err)
	}
	return tx
}

// TestStakeHashDeterminism tests that the stake hash is a pure function of
// the full input tuple and that every component of the tuple matters.
func TestStakeHashDeterminism(t *testing.T) {
	tx := stakeTestTx(t, 1000)
	pastHash := repeatHash(0x33)

	first, err := tx.StakeHash(0x53c41e92, 0, 100000, &pastHash)
	if err != nil {
		t.Fatalf("StakeHash: error %v", err)
	}
	again, err := tx.StakeHash(0x53c41e92, 0, 100000, &pastHash)
	if err != nil {
		t.Fatalf("StakeHash: error %v", err)
	}
	if *first != *again {
		t.Fatal("StakeHash: repeated call differs")
	}

	otherMagic, err := tx.StakeHash(0x8a45f013, 0, 100000, &pastHash)
	if err != nil {
		t.Fatalf("StakeHash: error %v", err)
	}
	if *otherMagic == *first {
		t.Error("StakeHash: stake magic does not influence the hash")
	}

	otherHeight, err := tx.StakeHash(0x53c41e92, 0, 100001, &pastHash)
	if err != nil {
		t.Fatalf("StakeHash: error %v", err)
	}
	if *otherHeight == *first {
		t.Error("StakeHash: height does not influence the hash")
	}

	otherPast := repeatHash(0x34)
	otherPastHash, err := tx.StakeHash(0x53c41e92, 0, 100000, &otherPast)
	if err != nil {
		t.Fatalf("StakeHash: error %v", err)
	}
	if *otherPastHash == *first {
		t.Error("StakeHash: past block hash does not influence the hash")
	}
}

// TestStakeHashDivision tests that the raw entropy is integer-divided by the
// claimed output value, which is what weights eligibility by stake.
func TestStakeHashDivision(t *testing.T) {
	pastHash := repeatHash(0x33)

	// An output value of 1 leaves the raw entropy untouched.
	unit := stakeTestTx(t, 1)
	raw := stakeHash(0x53c41e92, &pastHash, 100000, unit.TxID(), 0)
	got, err := unit.StakeHash(0x53c41e92, 0, 100000, &pastHash)
	if err != nil {
		t.Fatalf("StakeHash: error %v", err)
	}
	if *got != raw {
		t.Fatalf("StakeHash value 1: got %s, want raw %s", got, &raw)
	}

	// Larger values divide the entropy down proportionally.
	tx := stakeTestTx(t, 1000)
	raw = stakeHash(0x53c41e92, &pastHash, 100000, tx.TxID(), 0)
	got, err = tx.StakeHash(0x53c41e92, 0, 100000, &pastHash)
	if err != nil {
		t.Fatalf("StakeHash: error %v", err)
	}
	want := new(big.Int).Div(hashToBig(&raw), big.NewInt(1000))
	if hashToBig(got).Cmp(want) != 0 {
		t.Fatalf("StakeHash value 1000: got %v, want %v", hashToBig(got),
			want)
	}
	if hashToBig(got).Cmp(hashToBig(&raw)) >= 0 {
		t.Fatal("StakeHash: dividing by the value did not shrink the hash")
	}
}

// TestStakeHashInvalidClaims tests the two failure modes: a bogus output
// index yields the sentinel, a non-positive value an error.
func TestStakeHashInvalidClaims(t *testing.T) {
	tx := stakeTestTx(t, 1000)
	pastHash := repeatHash(0x33)

	got, err := tx.StakeHash(0x53c41e92, 5, 100000, &pastHash)
	if err != nil {
		t.Fatalf("StakeHash: error %v", err)
	}
	if *got != InvalidStakeHash {
		t.Fatalf("StakeHash out-of-range index: got %s, want sentinel",
			got)
	}

	zeroValue := stakeTestTx(t, 0)
	if _, err := zeroValue.StakeHash(0x53c41e92, 0, 100000, &pastHash); err == nil {
		t.Fatal("StakeHash: no error for zero-value output")
	}
}

// TestStakeHashSentinelValue pins the sentinel's byte pattern: it must stay
// an enormous 256-bit value so bogus claims always lose.
func TestStakeHashSentinelValue(t *testing.T) {
	for i := 0; i < chainhash.HashSize-1; i++ {
		if InvalidStakeHash[i] != 0x0f {
			t.Fatalf("sentinel byte %d: got %02x, want 0f", i,
				InvalidStakeHash[i])
		}
	}
	if InvalidStakeHash[chainhash.HashSize-1] != 0xff {
		t.Fatalf("sentinel high byte: got %02x, want ff",
			InvalidStakeHash[chainhash.HashSize-1])
	}
}
