// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the zenith transaction primitives and their
consensus-critical binary codec.

The encoding produced here is consensus visible: every peer must produce the
exact same bytes for the same transaction, since the transaction id is the
double-SHA256 of the canonical encoding. Three wire families exist, selected
by the packed 4-byte header (bit 31 carries the overwinter flag, bits 0-30
the version):

	Sprout v1      - inputs, outputs, lock time
	Sprout v2      - v1 plus the joinsplit (shielded) descriptions
	Overwinter v3  - v2 plus a fixed version group id and an expiry height

An overwintered header with any other version or version group id is rejected
with a MessageError; no other variants are silently accepted.

Transactions come in a mutable and an immutable flavor. MutableTransaction is
the staging type used while building; its TxID is recomputed on every call.
Freezing it with NewTransaction deep-copies the fields and computes the id
exactly once, after which the Transaction is safe to share between
goroutines without locking.

Errors

Errors returned by this package are either raw io errors from the underlying
reader or writer, or of type MessageError for violations of the encoding
rules. Decoding aborts on the first error and never yields a partially
populated transaction.
*/
package wire
