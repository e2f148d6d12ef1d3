// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// MaxScriptSize is the maximum allowed length of a raw script.
const MaxScriptSize = 10000

// Opcodes which this package inspects directly. The full opcode table lives
// with the script engine; only the handful needed for output classification
// are defined here.
const (
	OpData1               = 0x01
	OpData5               = 0x05
	OpReturn              = 0x6a
	OpCheckLockTimeVerify = 0xb1
)

// IsUnspendable returns whether the passed public key script is unspendable,
// or guaranteed to fail at execution. This allows outputs to be pruned
// instantly when entering the UTXO set.
func IsUnspendable(pkScript []byte) bool {
	return len(pkScript) > 0 && pkScript[0] == OpReturn ||
		len(pkScript) > MaxScriptSize
}

// ExtractUnlockTime returns the lock time encoded in a time-locked public
// key script, or 0 when the script does not begin with a lock-time push.
//
// The recognized form is a direct push of 1 to 5 bytes immediately followed
// by OP_CHECKLOCKTIMEVERIFY. The pushed bytes are interpreted as a little
// endian integer, the script-number encoding.
func ExtractUnlockTime(pkScript []byte) int64 {
	if len(pkScript) < 2 {
		return 0
	}

	pushLen := int(pkScript[0])
	if pushLen < OpData1 || pushLen > OpData5 {
		return 0
	}
	if len(pkScript) < 1+pushLen+1 {
		return 0
	}
	if pkScript[1+pushLen] != OpCheckLockTimeVerify {
		return 0
	}

	// The push is a script number: little endian, with the high bit of the
	// final byte carrying the sign. A negative lock time can never be
	// satisfied as a lock, so treat it as no lock at all.
	if pkScript[pushLen]&0x80 != 0 {
		return 0
	}

	var unlockTime int64
	for i := pushLen - 1; i >= 0; i-- {
		unlockTime <<= 8
		unlockTime |= int64(pkScript[1+i])
	}
	return unlockTime
}

// Engine provides the script capabilities consumed by the wire package. The
// wire types only see the interface, keeping the script machinery out of the
// consensus codec.
type Engine struct{}

// IsUnspendable returns whether the passed public key script is unspendable.
func (Engine) IsUnspendable(pkScript []byte) bool {
	return IsUnspendable(pkScript)
}

// UnlockTime returns the lock time encoded in the passed public key script,
// or 0 when none is encoded.
func (Engine) UnlockTime(pkScript []byte) int64 {
	return ExtractUnlockTime(pkScript)
}
