// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/zenithchain/zenithd/util"
	"github.com/zenithchain/zenithd/util/chainhash"
)

const (
	// SproutMinCurrentVersion is the lowest transaction version created by
	// this code before the overwinter upgrade.
	SproutMinCurrentVersion int32 = 1

	// SproutMaxCurrentVersion is the highest pre-overwinter transaction
	// version. Transactions that carry joinsplit descriptions are at least
	// version 2.
	SproutMaxCurrentVersion int32 = 2

	// OverwinterMinCurrentVersion is the lowest overwintered transaction
	// version.
	OverwinterMinCurrentVersion int32 = 3

	// OverwinterMaxCurrentVersion is the highest overwintered transaction
	// version.
	OverwinterMaxCurrentVersion int32 = 3

	// OverwinterVersionGroupID is the version group id of the single known
	// overwintered transaction format. It is consensus critical and must
	// be non-zero.
	OverwinterVersionGroupID uint32 = 0x03c48270

	// JoinSplitSigSize is the byte size of the signature binding a
	// transaction's joinsplit descriptions to its joinSplitPubKey.
	JoinSplitSigSize = 64

	// headerOverwinterFlag is the bit in the packed 4-byte transaction
	// header that carries the overwintered flag. The remaining 31 bits
	// carry the version.
	headerOverwinterFlag = uint32(1) << 31

	// defaultTxInOutAlloc is the default size used for the backing array
	// for transaction inputs and outputs. The array will dynamically grow
	// as needed, but this figure is intended to provide enough space for
	// the number of inputs and outputs in a typical transaction without
	// needing to grow the backing array multiple times.
	defaultTxInOutAlloc = 15

	// maxJSDescsPerTx is the maximum number of joinsplit descriptions a
	// transaction which fits into the max payload could possibly have.
	maxJSDescsPerTx = (MaxTxPayload / JSDescriptionSerializeSize) + 1
)

// JoinSplitSig is the fixed-width signature over the transaction's
// joinsplits, made with the key committed to by joinSplitPubKey. This
// package carries it opaquely and never verifies it.
type JoinSplitSig [JoinSplitSigSize]byte

// txFormat enumerates the structurally valid wire families. Exactly these
// three exist; decode rejects everything else.
type txFormat int

const (
	// formatSprout1 is the legacy format: no version group id, no expiry
	// height, no shielded fields on the wire.
	formatSprout1 txFormat = iota

	// formatSprout2 extends formatSprout1 with the joinsplit descriptions
	// and their binding key and signature.
	formatSprout2

	// formatOverwinterV3 is the overwintered format: a fixed version group
	// id and an expiry height in addition to everything in formatSprout2.
	formatOverwinterV3
)

// packTxHeader combines the overwintered flag and the version into the
// 4-byte header that leads every serialized transaction.
func packTxHeader(overwintered bool, version int32) uint32 {
	header := uint32(version)
	if overwintered {
		header |= headerOverwinterFlag
	}
	return header
}

// unpackTxHeader splits a 4-byte transaction header into the overwintered
// flag (bit 31) and the version (bits 0-30).
func unpackTxHeader(header uint32) (overwintered bool, version int32) {
	return header&headerOverwinterFlag != 0,
		int32(header &^ headerOverwinterFlag)
}

// MutableTransaction is the staging representation of a zenith transaction.
// It is used while a transaction is being assembled or decoded; freezing it
// with NewTransaction produces the shareable, hash-cached Transaction.
//
// A MutableTransaction is a single-owner object. Nothing in this package
// guards it against concurrent mutation.
type MutableTransaction struct {
	// Overwintered indicates the transaction uses the post-upgrade wire
	// family. When set, VersionGroupID must be OverwinterVersionGroupID
	// and Version must be 3, or the transaction does not serialize.
	Overwintered   bool
	Version        int32
	VersionGroupID uint32

	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32

	// ExpiryHeight is the block height after which the transaction can no
	// longer be mined. It is only present on the wire for overwintered
	// transactions.
	ExpiryHeight uint32

	// JoinSplits and the two fields binding them are only present on the
	// wire for version >= 2, and the key and signature only when at least
	// one joinsplit exists.
	JoinSplits      []*JSDescription
	JoinSplitPubKey chainhash.Hash
	JoinSplitSig    JoinSplitSig
}

// NewMutableTransaction returns a new staging transaction of the given
// version. Versions inside the overwinter window get the overwintered flag
// and the known version group id filled in; versions above the window stay
// non-overwintered, since no overwintered encoding exists for them.
func NewMutableTransaction(version int32) *MutableTransaction {
	mtx := &MutableTransaction{
		Version: version,
		TxIn:    make([]*TxIn, 0, defaultTxInOutAlloc),
		TxOut:   make([]*TxOut, 0, defaultTxInOutAlloc),
	}
	if version >= OverwinterMinCurrentVersion &&
		version <= OverwinterMaxCurrentVersion {

		mtx.Overwintered = true
		mtx.VersionGroupID = OverwinterVersionGroupID
	}
	return mtx
}

// AddTxIn adds a transaction input to the transaction.
func (mtx *MutableTransaction) AddTxIn(ti *TxIn) {
	mtx.TxIn = append(mtx.TxIn, ti)
}

// AddTxOut adds a transaction output to the transaction.
func (mtx *MutableTransaction) AddTxOut(to *TxOut) {
	mtx.TxOut = append(mtx.TxOut, to)
}

// AddJoinSplit adds a joinsplit description to the transaction.
func (mtx *MutableTransaction) AddJoinSplit(jsd *JSDescription) {
	mtx.JoinSplits = append(mtx.JoinSplits, jsd)
}

// format derives which of the known wire families the in-memory fields
// describe. ok is false for an overwintered transaction outside the single
// known overwinter combination; such a transaction has no valid encoding.
func (mtx *MutableTransaction) format() (f txFormat, ok bool) {
	if mtx.Overwintered {
		if mtx.VersionGroupID == OverwinterVersionGroupID &&
			mtx.Version == 3 {
			return formatOverwinterV3, true
		}
		return 0, false
	}
	if mtx.Version >= 2 {
		return formatSprout2, true
	}
	return formatSprout1, true
}

// Header returns the packed 4-byte header the transaction serializes under.
func (mtx *MutableTransaction) Header() uint32 {
	return packTxHeader(mtx.Overwintered, mtx.Version)
}

// Deserialize decodes a transaction from r into the receiver.
//
// Decoding aborts on the first violation of the format rules and leaves no
// partial result for the caller: an overwintered header outside the known
// overwinter v3 combination is rejected with a MessageError, field counts
// beyond the sanity bounds likewise.
func (mtx *MutableTransaction) Deserialize(r io.Reader) error {
	var header uint32
	err := ReadElement(r, &header)
	if err != nil {
		return err
	}
	mtx.Overwintered, mtx.Version = unpackTxHeader(header)

	if mtx.Overwintered {
		err = ReadElement(r, &mtx.VersionGroupID)
		if err != nil {
			return err
		}
	} else {
		mtx.VersionGroupID = 0
	}

	f, ok := mtx.format()
	if !ok {
		str := fmt.Sprintf("unknown transaction format [version %d, "+
			"version group id %08x]", mtx.Version, mtx.VersionGroupID)
		return messageError("MutableTransaction.Deserialize", str)
	}

	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > uint64(maxTxInPerTx) {
		str := fmt.Sprintf("too many input transactions to fit into "+
			"max message size [count %d, max %d]", count, maxTxInPerTx)
		return messageError("MutableTransaction.Deserialize", str)
	}

	// Deserialize the inputs. The backing structs are allocated in a
	// contiguous block to reduce the number of allocations.
	txIns := make([]TxIn, count)
	mtx.TxIn = make([]*TxIn, 0, count)
	for i := uint64(0); i < count; i++ {
		ti := &txIns[i]
		err = readTxIn(r, ti)
		if err != nil {
			return err
		}
		mtx.TxIn = append(mtx.TxIn, ti)
	}

	count, err = ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > uint64(maxTxOutPerTx) {
		str := fmt.Sprintf("too many output transactions to fit into "+
			"max message size [count %d, max %d]", count, maxTxOutPerTx)
		return messageError("MutableTransaction.Deserialize", str)
	}

	txOuts := make([]TxOut, count)
	mtx.TxOut = make([]*TxOut, 0, count)
	for i := uint64(0); i < count; i++ {
		to := &txOuts[i]
		err = readTxOut(r, to)
		if err != nil {
			return err
		}
		mtx.TxOut = append(mtx.TxOut, to)
	}

	err = ReadElement(r, &mtx.LockTime)
	if err != nil {
		return err
	}

	if f == formatOverwinterV3 {
		err = ReadElement(r, &mtx.ExpiryHeight)
		if err != nil {
			return err
		}
	} else {
		mtx.ExpiryHeight = 0
	}

	mtx.JoinSplits = nil
	mtx.JoinSplitPubKey = chainhash.ZeroHash
	mtx.JoinSplitSig = JoinSplitSig{}
	if f != formatSprout1 {
		count, err = ReadVarInt(r)
		if err != nil {
			return err
		}
		if count > uint64(maxJSDescsPerTx) {
			str := fmt.Sprintf("too many joinsplit descriptions to "+
				"fit into max message size [count %d, max %d]",
				count, maxJSDescsPerTx)
			return messageError("MutableTransaction.Deserialize", str)
		}

		// The binding key and signature exist on the wire exactly when
		// at least one joinsplit does.
		if count > 0 {
			jsds := make([]JSDescription, count)
			mtx.JoinSplits = make([]*JSDescription, 0, count)
			for i := uint64(0); i < count; i++ {
				jsd := &jsds[i]
				err = readJSDescription(r, jsd)
				if err != nil {
					return err
				}
				mtx.JoinSplits = append(mtx.JoinSplits, jsd)
			}

			err = ReadElement(r, &mtx.JoinSplitPubKey)
			if err != nil {
				return err
			}
			_, err = io.ReadFull(r, mtx.JoinSplitSig[:])
			if err != nil {
				return errors.WithStack(err)
			}
		}
	}

	return nil
}

// Serialize encodes the transaction to w in its canonical wire encoding.
//
// Serialization is driven by the same format derivation as Deserialize,
// computed from the in-memory fields: an overwintered transaction outside
// the known overwinter v3 combination is refused, as is a version 1
// transaction holding joinsplit descriptions, since neither has a wire
// representation.
func (mtx *MutableTransaction) Serialize(w io.Writer) error {
	f, ok := mtx.format()
	if !ok {
		str := fmt.Sprintf("unknown transaction format [version %d, "+
			"version group id %08x]", mtx.Version, mtx.VersionGroupID)
		return messageError("MutableTransaction.Serialize", str)
	}
	if f == formatSprout1 && len(mtx.JoinSplits) > 0 {
		str := fmt.Sprintf("version %d transactions cannot carry "+
			"joinsplit descriptions", mtx.Version)
		return messageError("MutableTransaction.Serialize", str)
	}

	err := WriteElement(w, mtx.Header())
	if err != nil {
		return err
	}

	if mtx.Overwintered {
		err = WriteElement(w, mtx.VersionGroupID)
		if err != nil {
			return err
		}
	}

	err = WriteVarInt(w, uint64(len(mtx.TxIn)))
	if err != nil {
		return err
	}
	for _, ti := range mtx.TxIn {
		err = writeTxIn(w, ti)
		if err != nil {
			return err
		}
	}

	err = WriteVarInt(w, uint64(len(mtx.TxOut)))
	if err != nil {
		return err
	}
	for _, to := range mtx.TxOut {
		err = writeTxOut(w, to)
		if err != nil {
			return err
		}
	}

	err = WriteElement(w, mtx.LockTime)
	if err != nil {
		return err
	}

	if f == formatOverwinterV3 {
		err = WriteElement(w, mtx.ExpiryHeight)
		if err != nil {
			return err
		}
	}

	if f != formatSprout1 {
		err = WriteVarInt(w, uint64(len(mtx.JoinSplits)))
		if err != nil {
			return err
		}
		for _, jsd := range mtx.JoinSplits {
			err = writeJSDescription(w, jsd)
			if err != nil {
				return err
			}
		}

		if len(mtx.JoinSplits) > 0 {
			err = WriteElement(w, &mtx.JoinSplitPubKey)
			if err != nil {
				return err
			}
			_, err = w.Write(mtx.JoinSplitSig[:])
			if err != nil {
				return errors.WithStack(err)
			}
		}
	}

	return nil
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (mtx *MutableTransaction) SerializeSize() int {
	// Header 4 bytes + LockTime 4 bytes + serialized varint size for the
	// number of inputs and outputs.
	n := 8 + VarIntSerializeSize(uint64(len(mtx.TxIn))) +
		VarIntSerializeSize(uint64(len(mtx.TxOut)))

	if mtx.Overwintered {
		// VersionGroupID 4 bytes + ExpiryHeight 4 bytes.
		n += 8
	}

	for _, ti := range mtx.TxIn {
		n += ti.SerializeSize()
	}
	for _, to := range mtx.TxOut {
		n += to.SerializeSize()
	}

	if mtx.Version >= 2 {
		n += VarIntSerializeSize(uint64(len(mtx.JoinSplits)))
		n += len(mtx.JoinSplits) * JSDescriptionSerializeSize
		if len(mtx.JoinSplits) > 0 {
			n += chainhash.HashSize + JoinSplitSigSize
		}
	}

	return n
}

// TxID computes the transaction id: the double-SHA256 of the canonical
// encoding. It is recomputed from the current field values on every call, as
// opposed to Transaction.TxID which uses a cached result. An error means the
// fields describe no valid wire format.
func (mtx *MutableTransaction) TxID() (*chainhash.Hash, error) {
	hashWriter := chainhash.NewDoubleHashWriter()
	err := mtx.Serialize(hashWriter)
	if err != nil {
		return nil, err
	}
	txID := hashWriter.Finalize()
	return &txID, nil
}

// Copy creates a deep copy of the transaction so that the original does not
// get modified when the copy is manipulated.
func (mtx *MutableTransaction) Copy() *MutableTransaction {
	newTx := MutableTransaction{
		Overwintered:    mtx.Overwintered,
		Version:         mtx.Version,
		VersionGroupID:  mtx.VersionGroupID,
		TxIn:            make([]*TxIn, 0, len(mtx.TxIn)),
		TxOut:           make([]*TxOut, 0, len(mtx.TxOut)),
		LockTime:        mtx.LockTime,
		ExpiryHeight:    mtx.ExpiryHeight,
		JoinSplitPubKey: mtx.JoinSplitPubKey,
		JoinSplitSig:    mtx.JoinSplitSig,
	}

	for _, oldTxIn := range mtx.TxIn {
		var newScript []byte
		if len(oldTxIn.SignatureScript) > 0 {
			newScript = make([]byte, len(oldTxIn.SignatureScript))
			copy(newScript, oldTxIn.SignatureScript)
		}

		newTx.TxIn = append(newTx.TxIn, &TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  newScript,
			Sequence:         oldTxIn.Sequence,
		})
	}

	for _, oldTxOut := range mtx.TxOut {
		var newScript []byte
		if len(oldTxOut.PkScript) > 0 {
			newScript = make([]byte, len(oldTxOut.PkScript))
			copy(newScript, oldTxOut.PkScript)
		}

		newTx.TxOut = append(newTx.TxOut, &TxOut{
			Value:    oldTxOut.Value,
			PkScript: newScript,
		})
	}

	if len(mtx.JoinSplits) > 0 {
		newTx.JoinSplits = make([]*JSDescription, 0, len(mtx.JoinSplits))
		for _, oldJSD := range mtx.JoinSplits {
			newJSD := *oldJSD
			newTx.JoinSplits = append(newTx.JoinSplits, &newJSD)
		}
	}

	return &newTx
}

// IsNull returns whether the transaction is empty of both inputs and
// outputs.
func (mtx *MutableTransaction) IsNull() bool {
	return len(mtx.TxIn) == 0 && len(mtx.TxOut) == 0
}

// IsCoinBase determines whether or not the transaction is a coinbase. A
// coinbase is the special transaction created by miners that has exactly one
// input, whose previous outpoint is the null sentinel.
func (mtx *MutableTransaction) IsCoinBase() bool {
	return len(mtx.TxIn) == 1 && mtx.TxIn[0].PreviousOutPoint.IsNull()
}

// ValueOut returns the sum of the transaction's output values. Each output
// and every partial sum must be inside the valid monetary range, otherwise
// an error is returned; higher consensus layers rely on this bound to rule
// out overflow.
func (mtx *MutableTransaction) ValueOut() (util.Amount, error) {
	var total util.Amount
	for _, to := range mtx.TxOut {
		if to.Value < 0 || to.Value > util.MaxZatoshi {
			return 0, errors.Errorf("transaction output value of %d "+
				"is out of range", to.Value)
		}
		total += to.Value
		if total < 0 || total > util.MaxZatoshi {
			return 0, errors.Errorf("total transaction output value "+
				"is out of range")
		}
	}
	return total, nil
}

// JoinSplitValueIn returns the sum of the amounts exiting the shielded value
// pool across the transaction's joinsplits, range-checked like ValueOut.
func (mtx *MutableTransaction) JoinSplitValueIn() (util.Amount, error) {
	var total util.Amount
	for _, jsd := range mtx.JoinSplits {
		if jsd.VPubNew < 0 || jsd.VPubNew > util.MaxZatoshi {
			return 0, errors.Errorf("joinsplit vpub_new value of %d "+
				"is out of range", jsd.VPubNew)
		}
		total += jsd.VPubNew
		if total < 0 || total > util.MaxZatoshi {
			return 0, errors.Errorf("total joinsplit vpub_new value " +
				"is out of range")
		}
	}
	return total, nil
}

// CalculateModifiedSize computes the discounted transaction size used for
// priority calculations. In order to encourage cleaning up the UTXO set, a
// fixed per-input allowance covering an outpoint, a sequence number and a
// modestly sized signature script is not counted against the transaction.
// Passing 0 for txSize makes the method measure the serialized size itself.
func (mtx *MutableTransaction) CalculateModifiedSize(txSize int) int {
	if txSize == 0 {
		txSize = mtx.SerializeSize()
	}

	for _, ti := range mtx.TxIn {
		scriptAllowance := len(ti.SignatureScript)
		if scriptAllowance > 110 {
			scriptAllowance = 110
		}
		offset := 41 + scriptAllowance
		if txSize > offset {
			txSize -= offset
		}
	}

	return txSize
}

// ComputePriority combines the caller-supplied input priority with the
// modified transaction size into the priority score used by policy layers.
// Passing 0 for txSize makes the method measure the serialized size itself.
func (mtx *MutableTransaction) ComputePriority(inputPriority float64, txSize int) float64 {
	txSize = mtx.CalculateModifiedSize(txSize)
	if txSize == 0 {
		return 0
	}
	return inputPriority / float64(txSize)
}

// UnlockTime returns the per-output time lock encoded in the given output's
// public key script, or 0 when the index is out of range or no lock is
// encoded. Interpreting the script is delegated to the script capability.
func (mtx *MutableTransaction) UnlockTime(scripts ScriptEngine, voutNum uint32) int64 {
	if voutNum >= uint32(len(mtx.TxOut)) {
		return 0
	}
	return scripts.UnlockTime(mtx.TxOut[voutNum].PkScript)
}

// String returns the transaction in a human-readable form.
func (mtx *MutableTransaction) String() string {
	return fmt.Sprintf("MutableTransaction(version=%d, overwintered=%t, "+
		"inputs=%d, outputs=%d, joinsplits=%d, lockTime=%d)",
		mtx.Version, mtx.Overwintered, len(mtx.TxIn), len(mtx.TxOut),
		len(mtx.JoinSplits), mtx.LockTime)
}

// Transaction is the frozen representation of a zenith transaction: the one
// that is relayed on the network and contained in blocks.
//
// Its transaction id is computed exactly once, when the Transaction is
// created, and its fields are never modified afterwards, which is what makes
// the id safe to cache. Code that needs a changed transaction must go back
// to a MutableTransaction via ToMutable and freeze again. Because of this a
// Transaction is safe for concurrent readers without locking.
type Transaction struct {
	mtx  MutableTransaction
	txID chainhash.Hash
}

// NewTransaction freezes a MutableTransaction into a Transaction. The fields
// are deep-copied, so the caller is free to keep mutating the staging
// object, and the transaction id is computed here, exactly once. An error
// means the staged fields describe no valid wire format.
func NewTransaction(mtx *MutableTransaction) (*Transaction, error) {
	frozen := mtx.Copy()
	txID, err := frozen.TxID()
	if err != nil {
		return nil, err
	}
	return &Transaction{mtx: *frozen, txID: *txID}, nil
}

// DeserializeTransaction decodes a transaction from r and freezes it in one
// step, computing the cached id over the structure just decoded.
func DeserializeTransaction(r io.Reader) (*Transaction, error) {
	var mtx MutableTransaction
	err := mtx.Deserialize(r)
	if err != nil {
		return nil, err
	}

	// The freshly decoded staging object is not aliased anywhere, so it
	// can be adopted without another deep copy.
	txID, err := mtx.TxID()
	if err != nil {
		return nil, err
	}
	return &Transaction{mtx: mtx, txID: *txID}, nil
}

// TxID returns the cached transaction id. The returned hash is a copy and
// may be modified freely.
func (t *Transaction) TxID() *chainhash.Hash {
	txID := t.txID
	return &txID
}

// Overwintered returns whether the transaction uses the overwintered wire
// family.
func (t *Transaction) Overwintered() bool {
	return t.mtx.Overwintered
}

// Version returns the transaction version.
func (t *Transaction) Version() int32 {
	return t.mtx.Version
}

// VersionGroupID returns the transaction's version group id. It is only
// meaningful for overwintered transactions.
func (t *Transaction) VersionGroupID() uint32 {
	return t.mtx.VersionGroupID
}

// TxIn returns the transaction's inputs. The returned slice shares backing
// storage with the transaction and must be treated as read-only.
func (t *Transaction) TxIn() []*TxIn {
	return t.mtx.TxIn
}

// TxOut returns the transaction's outputs. The returned slice shares
// backing storage with the transaction and must be treated as read-only.
func (t *Transaction) TxOut() []*TxOut {
	return t.mtx.TxOut
}

// LockTime returns the transaction's lock time.
func (t *Transaction) LockTime() uint32 {
	return t.mtx.LockTime
}

// ExpiryHeight returns the height after which the transaction can no longer
// be mined. It is only meaningful for overwintered transactions.
func (t *Transaction) ExpiryHeight() uint32 {
	return t.mtx.ExpiryHeight
}

// JoinSplits returns the transaction's joinsplit descriptions. The returned
// slice shares backing storage with the transaction and must be treated as
// read-only.
func (t *Transaction) JoinSplits() []*JSDescription {
	return t.mtx.JoinSplits
}

// JoinSplitPubKey returns the key the joinsplit signature is bound to.
func (t *Transaction) JoinSplitPubKey() chainhash.Hash {
	return t.mtx.JoinSplitPubKey
}

// JoinSplitSig returns the signature over the transaction's joinsplits.
func (t *Transaction) JoinSplitSig() JoinSplitSig {
	return t.mtx.JoinSplitSig
}

// Header returns the packed 4-byte header the transaction serializes under.
func (t *Transaction) Header() uint32 {
	return t.mtx.Header()
}

// Serialize encodes the transaction to w in its canonical wire encoding.
func (t *Transaction) Serialize(w io.Writer) error {
	return t.mtx.Serialize(w)
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (t *Transaction) SerializeSize() int {
	return t.mtx.SerializeSize()
}

// ToMutable returns a deep-copied staging version of the transaction. This
// is the only way to derive a changed transaction from a frozen one; the
// copy keeps the cached id of the original valid forever.
func (t *Transaction) ToMutable() *MutableTransaction {
	return t.mtx.Copy()
}

// IsNull returns whether the transaction is empty of both inputs and
// outputs.
func (t *Transaction) IsNull() bool {
	return t.mtx.IsNull()
}

// IsCoinBase determines whether or not the transaction is a coinbase.
func (t *Transaction) IsCoinBase() bool {
	return t.mtx.IsCoinBase()
}

// ValueOut returns the range-checked sum of the transaction's output
// values.
func (t *Transaction) ValueOut() (util.Amount, error) {
	return t.mtx.ValueOut()
}

// JoinSplitValueIn returns the range-checked sum of the amounts exiting the
// shielded value pool across the transaction's joinsplits.
func (t *Transaction) JoinSplitValueIn() (util.Amount, error) {
	return t.mtx.JoinSplitValueIn()
}

// CalculateModifiedSize computes the discounted transaction size used for
// priority calculations.
func (t *Transaction) CalculateModifiedSize(txSize int) int {
	return t.mtx.CalculateModifiedSize(txSize)
}

// ComputePriority combines the caller-supplied input priority with the
// modified transaction size into the priority score used by policy layers.
func (t *Transaction) ComputePriority(inputPriority float64, txSize int) float64 {
	return t.mtx.ComputePriority(inputPriority, txSize)
}

// UnlockTime returns the per-output time lock encoded in the given output's
// public key script, or 0 when the index is out of range or no lock is
// encoded.
func (t *Transaction) UnlockTime(scripts ScriptEngine, voutNum uint32) int64 {
	return t.mtx.UnlockTime(scripts, voutNum)
}

// Equal returns whether two frozen transactions are the same transaction,
// by comparing their cached ids.
func (t *Transaction) Equal(other *Transaction) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.txID == other.txID
}

// String returns the transaction in a human-readable form.
func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction(%s, version=%d, overwintered=%t, "+
		"inputs=%d, outputs=%d, joinsplits=%d)",
		t.txID, t.mtx.Version, t.mtx.Overwintered, len(t.mtx.TxIn),
		len(t.mtx.TxOut), len(t.mtx.JoinSplits))
}
