// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/zenithchain/zenithd/util"
	"github.com/zenithchain/zenithd/util/chainhash"
)

const (
	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be. An input with this sequence number is
	// considered final.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be. It doubles as the index of the null outpoint.
	MaxPrevOutIndex uint32 = 0xffffffff

	// minTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint.Hash + PreviousOutPoint.Index 4 bytes + Varint for
	// SignatureScript length 1 byte + Sequence 4 bytes.
	minTxInPayload = 9 + chainhash.HashSize

	// maxTxInPerTx is the maximum number of transaction inputs a
	// transaction which fits into the max payload could possibly have.
	maxTxInPerTx = (MaxTxPayload / minTxInPayload) + 1

	// minTxOutPayload is the minimum payload size for a transaction
	// output. Value 8 bytes + Varint for PkScript length 1 byte.
	minTxOutPayload = 9

	// maxTxOutPerTx is the maximum number of transaction outputs a
	// transaction which fits into the max payload could possibly have.
	maxTxOutPerTx = (MaxTxPayload / minTxOutPayload) + 1

	// spendTxInEstimate is the serialized size of the input that will
	// eventually spend a typical output. It is added to the output's own
	// serialized size when computing the dust threshold, so the threshold
	// reflects the full cost of creating and later spending the output.
	spendTxInEstimate = 148
)

// FeeRate is the fee-rate capability consumed by the dust computation. The
// concrete policy object lives outside this package; util.FeeRate satisfies
// it.
type FeeRate interface {
	// Fee returns the fee for the given serialized size in bytes.
	Fee(size int64) util.Amount
}

// ScriptEngine is the script capability consumed by this package. Scripts
// are otherwise treated as opaque byte buffers; the engine alone knows how
// to classify them.
type ScriptEngine interface {
	// IsUnspendable returns whether the passed public key script is
	// guaranteed to fail at execution.
	IsUnspendable(pkScript []byte) bool

	// UnlockTime returns the lock time encoded in the passed public key
	// script, or 0 when none is encoded.
	UnlockTime(pkScript []byte) int64
}

// OutPoint defines a zenith data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new zenith transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// NewNullOutPoint returns the null outpoint, referenced by the single input
// of a coinbase transaction.
func NewNullOutPoint() *OutPoint {
	return &OutPoint{
		Hash:  chainhash.ZeroHash,
		Index: MaxPrevOutIndex,
	}
}

// IsNull returns whether the outpoint is the null sentinel, a zero hash
// combined with the maximum index.
func (o *OutPoint) IsNull() bool {
	return o.Hash.IsZero() && o.Index == MaxPrevOutIndex
}

// Cmp compares two outpoints, ordering by hash first and index second, and
// returns -1, 0 or +1.
func (o *OutPoint) Cmp(other *OutPoint) int {
	if c := o.Hash.Cmp(&other.Hash); c != 0 {
		return c
	}
	switch {
	case o.Index < other.Index:
		return -1
	case o.Index > other.Index:
		return 1
	}
	return 0
}

// Less returns whether o sorts strictly before other.
func (o *OutPoint) Less(other *OutPoint) bool {
	return o.Cmp(other) < 0
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 digits. Although
	// at the time of writing, the number of digits can be no greater than
	// the length of the decimal representation of maxTxOutPerTx, the
	// maximum payload may increase in the future and this optimization may
	// go unnoticed, so allocate space for 10 decimal digits, which will fit
	// any uint32.
	buf := make([]byte, 2*chainhash.HashSize+1, 2*chainhash.HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*chainhash.HashSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// TxIn defines a zenith transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new zenith transaction input with the provided previous
// outpoint point and signature script with a default sequence of
// MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// NewTxInFromHash returns a new zenith transaction input referencing the
// output of a prior transaction directly by hash and index, with a default
// sequence of MaxTxInSequenceNum.
func NewTxInFromHash(prevHash *chainhash.Hash, prevIndex uint32, signatureScript []byte) *TxIn {
	return NewTxIn(NewOutPoint(prevHash, prevIndex), signatureScript)
}

// IsFinal returns whether the input's sequence number is the maximum value,
// which excludes it from lock-time arithmetic.
func (t *TxIn) IsFinal() bool {
	return t.Sequence == MaxTxInSequenceNum
}

// Equal returns whether two inputs carry identical field values: the
// previous outpoint, the signature script bytes and the sequence number.
func (t *TxIn) Equal(other *TxIn) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.PreviousOutPoint == other.PreviousOutPoint &&
		bytes.Equal(t.SignatureScript, other.SignatureScript) &&
		t.Sequence == other.Sequence
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input.
func (t *TxIn) SerializeSize() int {
	// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes +
	// serialized varint size for the length of SignatureScript +
	// SignatureScript bytes.
	return 40 + VarIntSerializeSize(uint64(len(t.SignatureScript))) +
		len(t.SignatureScript)
}

// String returns the TxIn in a human-readable form.
func (t *TxIn) String() string {
	if t.PreviousOutPoint.IsNull() {
		return fmt.Sprintf("TxIn(%s, coinbase %x)",
			t.PreviousOutPoint, t.SignatureScript)
	}
	return fmt.Sprintf("TxIn(%s, scriptSig=%x, sequence=%d)",
		t.PreviousOutPoint, t.SignatureScript, t.Sequence)
}

// TxOut defines a zenith transaction output.
type TxOut struct {
	Value    util.Amount
	PkScript []byte
}

// NewTxOut returns a new zenith transaction output with the provided
// transaction value and public key script.
func NewTxOut(value util.Amount, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// SetNull marks the output as the null sentinel.
func (t *TxOut) SetNull() {
	t.Value = -1
	t.PkScript = nil
}

// IsNull returns whether the output carries the null sentinel value.
func (t *TxOut) IsNull() bool {
	return t.Value == -1
}

// Equal returns whether two outputs carry the same value and script bytes.
func (t *TxOut) Equal(other *TxOut) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Value == other.Value && bytes.Equal(t.PkScript, other.PkScript)
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction output.
func (t *TxOut) SerializeSize() int {
	// Value 8 bytes + serialized varint size for the length of PkScript +
	// PkScript bytes.
	return 8 + VarIntSerializeSize(uint64(len(t.PkScript))) + len(t.PkScript)
}

// Hash computes the hash of a single serialized output. It is unrelated to
// the transaction id and only keys per-output lookups.
func (t *TxOut) Hash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, t.SerializeSize()))

	// Writing to a bytes.Buffer cannot fail.
	_ = writeTxOut(buf, t)
	return chainhash.DoubleHashH(buf.Bytes())
}

// DustThreshold returns the output value below which this output is
// considered dust under the passed fee rate.
//
// Dust is defined in terms of the minimum relay fee, which has units of
// zatoshi per kilobyte. If spending something would cost more than 1/3 of
// its value in fees, it is considered dust. A typical spendable output is 34
// bytes big and will need an input of at least 148 bytes to spend, so dust
// is a spendable output of less than 546 zatoshi with the default relay fee.
//
// Provably unspendable outputs can never enter the UTXO set, so no future
// fee is ever paid for them and their threshold is 0.
func (t *TxOut) DustThreshold(feeRate FeeRate, scripts ScriptEngine) util.Amount {
	if scripts.IsUnspendable(t.PkScript) {
		return 0
	}

	size := int64(t.SerializeSize() + spendTxInEstimate)
	return 3 * feeRate.Fee(size)
}

// IsDust returns whether the output's value is below its dust threshold for
// the passed fee rate.
func (t *TxOut) IsDust(feeRate FeeRate, scripts ScriptEngine) bool {
	return t.Value < t.DustThreshold(feeRate, scripts)
}

// String returns the TxOut in a human-readable form.
func (t *TxOut) String() string {
	return fmt.Sprintf("TxOut(value=%d, scriptPubKey=%x)", t.Value, t.PkScript)
}

// readOutPoint reads the next sequence of bytes from r as an OutPoint.
func readOutPoint(r io.Reader, op *OutPoint) error {
	return ReadElements(r, &op.Hash, &op.Index)
}

// writeOutPoint encodes op to the zenith protocol encoding for an OutPoint
// to w.
func writeOutPoint(w io.Writer, op *OutPoint) error {
	return WriteElements(w, &op.Hash, op.Index)
}

// readTxIn reads the next sequence of bytes from r as a transaction input.
func readTxIn(r io.Reader, ti *TxIn) error {
	err := readOutPoint(r, &ti.PreviousOutPoint)
	if err != nil {
		return err
	}

	ti.SignatureScript, err = readScript(r, MaxTxPayload,
		"transaction input signature script")
	if err != nil {
		return err
	}

	return ReadElement(r, &ti.Sequence)
}

// writeTxIn encodes ti to the zenith protocol encoding for a transaction
// input to w.
func writeTxIn(w io.Writer, ti *TxIn) error {
	err := writeOutPoint(w, &ti.PreviousOutPoint)
	if err != nil {
		return err
	}

	err = WriteVarBytes(w, ti.SignatureScript)
	if err != nil {
		return err
	}

	return WriteElement(w, ti.Sequence)
}

// readTxOut reads the next sequence of bytes from r as a transaction output.
func readTxOut(r io.Reader, to *TxOut) error {
	err := ReadElement(r, &to.Value)
	if err != nil {
		return err
	}

	to.PkScript, err = readScript(r, MaxTxPayload,
		"transaction output public key script")
	return err
}

// writeTxOut encodes to to the zenith protocol encoding for a transaction
// output to w.
func writeTxOut(w io.Writer, to *TxOut) error {
	err := WriteElement(w, to.Value)
	if err != nil {
		return err
	}

	return WriteVarBytes(w, to.PkScript)
}
