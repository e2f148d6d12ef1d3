// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/zenithchain/zenithd/util"
	"github.com/zenithchain/zenithd/util/chainhash"
)

const (
	// NumJSInputs is the number of shielded notes spent by every joinsplit
	// description. The proving circuit is compiled for exactly this arity.
	NumJSInputs = 2

	// NumJSOutputs is the number of shielded notes created by every
	// joinsplit description.
	NumJSOutputs = 2

	// NoteCiphertextSize is the byte size of an encrypted note record:
	// a leading byte, the value, rho, r, a memo field and the
	// authentication tag.
	NoteCiphertextSize = 601

	// JoinSplitProofSize is the byte size of the zero-knowledge proof
	// carried by a joinsplit description.
	JoinSplitProofSize = 296

	// JSDescriptionSerializeSize is the byte size of a serialized
	// joinsplit description. Every field is fixed width.
	JSDescriptionSerializeSize = 8 + 8 + chainhash.HashSize +
		NumJSInputs*chainhash.HashSize + NumJSOutputs*chainhash.HashSize +
		chainhash.HashSize + chainhash.HashSize +
		NumJSInputs*chainhash.HashSize + JoinSplitProofSize +
		NumJSOutputs*NoteCiphertextSize

	// hSigPersonalization keys the BLAKE2b derivation of the joinsplit
	// binding hash, separating it from every other hash in the protocol.
	hSigPersonalization = "ZenComputehSig"
)

// NoteCiphertext is the encrypted record a joinsplit hands to the recipient
// of a shielded note. It contains trapdoors, values and a memo field,
// encrypted to the recipient's transmission key.
type NoteCiphertext [NoteCiphertextSize]byte

// JoinSplitProof is the opaque zero-knowledge proof blob attesting to a
// joinsplit's validity. This package only moves it across the wire; proving
// and verification live behind the JoinSplitProver and JoinSplitVerifier
// capabilities.
type JoinSplitProof [JoinSplitProofSize]byte

// JSInput describes a shielded note being spent by a joinsplit. Its fields
// are opaque to this package and are interpreted only by the proof system.
type JSInput struct {
	// Witness is the authentication path of the note's commitment in the
	// commitment tree, up to the anchor the joinsplit is proved against.
	Witness []byte

	// Note is the plaintext of the note being spent.
	Note []byte

	// SpendingKey authorizes the spend and is used to derive the note's
	// nullifier.
	SpendingKey []byte
}

// JSOutput describes a shielded note to be created by a joinsplit. As with
// JSInput, the proof system alone interprets the fields.
type JSOutput struct {
	// PaymentAddress is the recipient's shielded address.
	PaymentAddress []byte

	// Value is the amount carried by the new note.
	Value util.Amount

	// Memo is an arbitrary message delivered inside the note ciphertext.
	Memo []byte
}

// JoinSplitRequest carries everything the external proof system needs to
// build one joinsplit.
type JoinSplitRequest struct {
	PubKeyHash   chainhash.Hash
	Anchor       chainhash.Hash
	Inputs       [NumJSInputs]JSInput
	Outputs      [NumJSOutputs]JSOutput
	VPubOld      util.Amount
	VPubNew      util.Amount
	ComputeProof bool
}

// JoinSplitComputation is the proof system's answer to a JoinSplitRequest:
// the derived consensus fields of the description plus the ephemeral secret
// key, which callers may retain for payment disclosure.
type JoinSplitComputation struct {
	Nullifiers   [NumJSInputs]chainhash.Hash
	Commitments  [NumJSOutputs]chainhash.Hash
	EphemeralKey chainhash.Hash
	RandomSeed   chainhash.Hash
	Macs         [NumJSInputs]chainhash.Hash
	Proof        JoinSplitProof
	Ciphertexts  [NumJSOutputs]NoteCiphertext
	ESK          chainhash.Hash
}

// JoinSplitProver is the capability that derives a joinsplit's consensus
// fields, and optionally its zero-knowledge proof, from note descriptors.
// Proof computation may be skipped for test scaffolding via the request's
// ComputeProof flag.
type JoinSplitProver interface {
	Compute(req *JoinSplitRequest) (*JoinSplitComputation, error)
}

// JoinSplitVerifier is the capability that checks a joinsplit's
// zero-knowledge proof. A false result means the transaction is invalid, not
// that it was malformed on the wire.
type JoinSplitVerifier interface {
	Verify(jsd *JSDescription, pubKeyHash *chainhash.Hash) bool
}

// JSDescription is a joinsplit: a bundle that spends NumJSInputs shielded
// notes and creates NumJSOutputs new ones under a zero-knowledge proof,
// moving VPubOld into and VPubNew out of the shielded value pool.
type JSDescription struct {
	// VPubOld and VPubNew are the amounts that enter and exit the shielded
	// value pool, respectively.
	VPubOld util.Amount
	VPubNew util.Amount

	// Anchor is the root of the note commitment tree the spends are
	// proved against, at some point in the chain's history.
	Anchor chainhash.Hash

	// Nullifiers prevent double-spends. They are derived from the spent
	// notes' secrets and the spending keys.
	Nullifiers [NumJSInputs]chainhash.Hash

	// Commitments bind the created notes into the commitment tree without
	// revealing values or destinations.
	Commitments [NumJSOutputs]chainhash.Hash

	// EphemeralKey is the one-time key the note ciphertexts were encrypted
	// under.
	EphemeralKey chainhash.Hash

	// RandomSeed feeds the derivation of the joinsplit's internal
	// randomness.
	RandomSeed chainhash.Hash

	// Macs authenticate the nullifiers against the binding hash and must
	// be provided to the verifier.
	Macs [NumJSInputs]chainhash.Hash

	// Proof is the zero-knowledge proof attesting that the joinsplit is
	// balanced and well formed.
	Proof JoinSplitProof

	// Ciphertexts are the encrypted note records for the recipients.
	Ciphertexts [NumJSOutputs]NoteCiphertext
}

// NewJSDescription builds a joinsplit description by delegating the
// cryptographic derivations to the passed prover. When computeProof is
// false, the proof field is left to whatever the prover places there, which
// allows cheap construction in tests. When esk is non-nil, the ephemeral
// secret key reported by the prover is written through it for payment
// disclosure use.
func NewJSDescription(prover JoinSplitProver, pubKeyHash *chainhash.Hash,
	anchor *chainhash.Hash, inputs [NumJSInputs]JSInput,
	outputs [NumJSOutputs]JSOutput, vpubOld, vpubNew util.Amount,
	computeProof bool, esk *chainhash.Hash) (*JSDescription, error) {

	comp, err := prover.Compute(&JoinSplitRequest{
		PubKeyHash:   *pubKeyHash,
		Anchor:       *anchor,
		Inputs:       inputs,
		Outputs:      outputs,
		VPubOld:      vpubOld,
		VPubNew:      vpubNew,
		ComputeProof: computeProof,
	})
	if err != nil {
		return nil, errors.Wrap(err, "joinsplit proving failed")
	}

	if esk != nil {
		*esk = comp.ESK
	}

	return &JSDescription{
		VPubOld:      vpubOld,
		VPubNew:      vpubNew,
		Anchor:       *anchor,
		Nullifiers:   comp.Nullifiers,
		Commitments:  comp.Commitments,
		EphemeralKey: comp.EphemeralKey,
		RandomSeed:   comp.RandomSeed,
		Macs:         comp.Macs,
		Proof:        comp.Proof,
		Ciphertexts:  comp.Ciphertexts,
	}, nil
}

// NewRandomizedJSDescription is the construction used for real spends: it
// shuffles the input and output descriptors with the injected random-integer
// generator before proving, so the on-chain ordering carries no information
// about how the caller assembled the joinsplit. gen must return a uniform
// integer in [0, n) for the passed n.
//
// The returned inputMap and outputMap report, for each final position, the
// caller-order index that landed there.
func NewRandomizedJSDescription(prover JoinSplitProver, pubKeyHash *chainhash.Hash,
	anchor *chainhash.Hash, inputs *[NumJSInputs]JSInput,
	outputs *[NumJSOutputs]JSOutput, vpubOld, vpubNew util.Amount,
	computeProof bool, esk *chainhash.Hash, gen func(int) int) (*JSDescription,
	[NumJSInputs]int, [NumJSOutputs]int, error) {

	var inputMap [NumJSInputs]int
	var outputMap [NumJSOutputs]int
	for i := range inputMap {
		inputMap[i] = i
	}
	for i := range outputMap {
		outputMap[i] = i
	}

	// Fisher-Yates over the fixed-size descriptor arrays, tracking the
	// permutation in the maps.
	for i := NumJSInputs - 1; i >= 1; i-- {
		j := gen(i + 1)
		if j < 0 || j > i {
			return nil, inputMap, outputMap, errors.Errorf(
				"random generator returned %d, outside [0, %d]", j, i)
		}
		inputs[i], inputs[j] = inputs[j], inputs[i]
		inputMap[i], inputMap[j] = inputMap[j], inputMap[i]
	}
	for i := NumJSOutputs - 1; i >= 1; i-- {
		j := gen(i + 1)
		if j < 0 || j > i {
			return nil, inputMap, outputMap, errors.Errorf(
				"random generator returned %d, outside [0, %d]", j, i)
		}
		outputs[i], outputs[j] = outputs[j], outputs[i]
		outputMap[i], outputMap[j] = outputMap[j], outputMap[i]
	}

	jsd, err := NewJSDescription(prover, pubKeyHash, anchor, *inputs,
		*outputs, vpubOld, vpubNew, computeProof, esk)
	return jsd, inputMap, outputMap, err
}

// HSig derives the binding hash the proof is stated over: a keyed
// BLAKE2b-256 of the ephemeral key, the nullifiers and the joinsplit public
// key hash. It is a pure function of the description's immutable fields.
func (jsd *JSDescription) HSig(pubKeyHash *chainhash.Hash) chainhash.Hash {
	h, err := blake2b.New256([]byte(hSigPersonalization))
	if err != nil {
		// The personalization string is a valid key length.
		panic(errors.Wrap(err, "hSig personalization rejected"))
	}

	h.Write(jsd.EphemeralKey[:])
	for i := range jsd.Nullifiers {
		h.Write(jsd.Nullifiers[i][:])
	}
	h.Write(pubKeyHash[:])

	var hSig chainhash.Hash
	copy(hSig[:], h.Sum(nil))
	return hSig
}

// Verify delegates the proof validity check to the passed verifier. It has
// no side effects beyond the external call.
func (jsd *JSDescription) Verify(verifier JoinSplitVerifier, pubKeyHash *chainhash.Hash) bool {
	return verifier.Verify(jsd, pubKeyHash)
}

// Equal returns whether two descriptions carry identical field values,
// including the proof blob.
func (jsd *JSDescription) Equal(other *JSDescription) bool {
	if jsd == nil || other == nil {
		return jsd == other
	}

	// Every field is a comparable fixed-width value.
	return *jsd == *other
}

// SerializeSize returns the number of bytes it would take to serialize the
// joinsplit description.
func (jsd *JSDescription) SerializeSize() int {
	return JSDescriptionSerializeSize
}

// readJSDescription reads the next sequence of bytes from r as a joinsplit
// description.
//
// The field order below is consensus visible and must never change.
func readJSDescription(r io.Reader, jsd *JSDescription) error {
	err := ReadElements(r, &jsd.VPubOld, &jsd.VPubNew, &jsd.Anchor)
	if err != nil {
		return err
	}

	for i := range jsd.Nullifiers {
		err = ReadElement(r, &jsd.Nullifiers[i])
		if err != nil {
			return err
		}
	}
	for i := range jsd.Commitments {
		err = ReadElement(r, &jsd.Commitments[i])
		if err != nil {
			return err
		}
	}

	err = ReadElements(r, &jsd.EphemeralKey, &jsd.RandomSeed)
	if err != nil {
		return err
	}

	for i := range jsd.Macs {
		err = ReadElement(r, &jsd.Macs[i])
		if err != nil {
			return err
		}
	}

	_, err = io.ReadFull(r, jsd.Proof[:])
	if err != nil {
		return errors.WithStack(err)
	}

	for i := range jsd.Ciphertexts {
		_, err = io.ReadFull(r, jsd.Ciphertexts[i][:])
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

// writeJSDescription encodes jsd to w, mirroring readJSDescription exactly.
func writeJSDescription(w io.Writer, jsd *JSDescription) error {
	err := WriteElements(w, jsd.VPubOld, jsd.VPubNew, &jsd.Anchor)
	if err != nil {
		return err
	}

	for i := range jsd.Nullifiers {
		err = WriteElement(w, &jsd.Nullifiers[i])
		if err != nil {
			return err
		}
	}
	for i := range jsd.Commitments {
		err = WriteElement(w, &jsd.Commitments[i])
		if err != nil {
			return err
		}
	}

	err = WriteElements(w, &jsd.EphemeralKey, &jsd.RandomSeed)
	if err != nil {
		return err
	}

	for i := range jsd.Macs {
		err = WriteElement(w, &jsd.Macs[i])
		if err != nil {
			return err
		}
	}

	_, err = w.Write(jsd.Proof[:])
	if err != nil {
		return errors.WithStack(err)
	}

	for i := range jsd.Ciphertexts {
		_, err = w.Write(jsd.Ciphertexts[i][:])
		if err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}
