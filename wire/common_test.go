// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// TestVarIntWire tests wire encode and decode for variable length integers.
func TestVarIntWire(t *testing.T) {
	tests := []struct {
		in  uint64
		buf []byte
	}{
		{0, []byte{0x00}},
		{0xfc, []byte{0xfc}},
		{0xfd, []byte{0xfd, 0xfd, 0x00}},
		{0xffff, []byte{0xfd, 0xff, 0xff}},
		{0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		{0xffffffff, []byte{0xfe, 0xff, 0xff, 0xff, 0xff}},
		{0x100000000, []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00,
			0x00, 0x00}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0xff, 0xff}},
	}

	for i, test := range tests {
		var buf bytes.Buffer
		err := WriteVarInt(&buf, test.in)
		if err != nil {
			t.Errorf("WriteVarInt #%d: error %v", i, err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), test.buf) {
			t.Errorf("WriteVarInt #%d:\n got: %s\nwant: %s", i,
				spew.Sdump(buf.Bytes()), spew.Sdump(test.buf))
			continue
		}

		if got := VarIntSerializeSize(test.in); got != len(test.buf) {
			t.Errorf("VarIntSerializeSize #%d: got %d, want %d", i,
				got, len(test.buf))
		}

		val, err := ReadVarInt(bytes.NewReader(test.buf))
		if err != nil {
			t.Errorf("ReadVarInt #%d: error %v", i, err)
			continue
		}
		if val != test.in {
			t.Errorf("ReadVarInt #%d: got %d, want %d", i, val,
				test.in)
		}
	}
}

// TestVarIntNonCanonical tests that decode rejects variable length integers
// that are encoded in more bytes than necessary. A canonical encoding is
// required because the transaction id hashes the serialized bytes.
func TestVarIntNonCanonical(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"0 encoded with 3 bytes", []byte{0xfd, 0x00, 0x00}},
		{"0xfc encoded with 3 bytes", []byte{0xfd, 0xfc, 0x00}},
		{"0xffff encoded with 5 bytes",
			[]byte{0xfe, 0xff, 0xff, 0x00, 0x00}},
		{"0xffffffff encoded with 9 bytes", []byte{0xff, 0xff, 0xff,
			0xff, 0xff, 0x00, 0x00, 0x00, 0x00}},
	}

	for _, test := range tests {
		_, err := ReadVarInt(bytes.NewReader(test.buf))
		if err == nil {
			t.Errorf("ReadVarInt %q: no error", test.name)
			continue
		}
		var msgErr *MessageError
		if !errors.As(err, &msgErr) {
			t.Errorf("ReadVarInt %q: error %T is not a MessageError",
				test.name, err)
		}
	}
}

// TestVarBytesWire tests the length-prefixed byte array encoding and its max
// size enforcement.
func TestVarBytesWire(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04}

	var buf bytes.Buffer
	if err := WriteVarBytes(&buf, payload); err != nil {
		t.Fatalf("WriteVarBytes: error %v", err)
	}

	got, err := ReadVarBytes(bytes.NewReader(buf.Bytes()), 16, "payload")
	if err != nil {
		t.Fatalf("ReadVarBytes: error %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("ReadVarBytes: got %x, want %x", got, payload)
	}

	_, err = ReadVarBytes(bytes.NewReader(buf.Bytes()), 3, "payload")
	if err == nil {
		t.Fatal("ReadVarBytes: no error for oversized payload")
	}
	var msgErr *MessageError
	if !errors.As(err, &msgErr) {
		t.Fatalf("ReadVarBytes: error %T is not a MessageError", err)
	}
}
