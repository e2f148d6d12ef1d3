// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/zenithchain/zenithd/util/chainhash"
)

// InvalidStakeHash is the sentinel returned by StakeHash when the claimed
// output index does not exist on the transaction. It is far too large to
// ever win a stake comparison, so a transaction claiming a bogus output
// disqualifies itself without being treated as an error.
var InvalidStakeHash = chainhash.Hash{
	0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f,
	0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f,
	0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f,
	0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0x0f, 0xff,
}

// stakeHash computes the raw, undivided stake entropy for one output of one
// transaction. The input tuple commits to the chain (via the stake magic),
// to recent history (via a past block hash), to the target height and to the
// exact output being staked, so no staker can grind any component cheaply.
func stakeHash(stakeMagic uint32, pastHash *chainhash.Hash, height int32,
	txID *chainhash.Hash, voutNum uint32) chainhash.Hash {

	hashWriter := chainhash.NewDoubleHashWriter()

	// Writes to the hash writer cannot fail.
	_ = WriteElements(hashWriter, stakeMagic, pastHash, height, txID,
		int32(voutNum))

	return hashWriter.Finalize()
}

// hashToBig converts a chainhash.Hash, which holds its bytes in little
// endian order, into the big.Int it represents.
func hashToBig(hash *chainhash.Hash) *big.Int {
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}
	return new(big.Int).SetBytes(buf[:])
}

// bigToHash converts a big.Int known to fit in 256 bits back into a little
// endian chainhash.Hash.
func bigToHash(n *big.Int) chainhash.Hash {
	var buf [chainhash.HashSize]byte
	n.FillBytes(buf[:])

	var hash chainhash.Hash
	for i := 0; i < chainhash.HashSize; i++ {
		hash[i] = buf[chainhash.HashSize-1-i]
	}
	return hash
}

// StakeHash computes the proof-of-stake eligibility value for one output of
// the transaction: the raw stake entropy interpreted as a 256-bit integer
// and divided, truncating, by the output's value. Dividing by the value is
// what weights eligibility by stake, since larger outputs yield smaller
// results and small results win.
//
// A voutNum beyond the transaction's outputs yields InvalidStakeHash rather
// than an error. An output with no positive value cannot stake and is an
// error.
func (t *Transaction) StakeHash(stakeMagic uint32, voutNum uint32,
	height int32, pastHash *chainhash.Hash) (*chainhash.Hash, error) {

	if voutNum >= uint32(len(t.mtx.TxOut)) {
		hash := InvalidStakeHash
		return &hash, nil
	}

	value := t.mtx.TxOut[voutNum].Value
	if value <= 0 {
		return nil, errors.Errorf("cannot compute stake hash for "+
			"output %d with non-positive value %d", voutNum, value)
	}

	raw := stakeHash(stakeMagic, pastHash, height, &t.txID, voutNum)

	quotient := new(big.Int).Div(hashToBig(&raw),
		big.NewInt(int64(value)))
	hash := bigToHash(quotient)
	return &hash, nil
}
