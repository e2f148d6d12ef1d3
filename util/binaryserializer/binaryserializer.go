package binaryserializer

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// maxItems is the number of buffers to keep in the free list to use for
// binary deserialization.
const maxItems = 1024

// binaryFreeList provides a free list of buffers to use for deserializing
// primitive integer values from io.Readers.
//
// It defines a concurrent safe free list of byte slices (up to the maximum
// number defined by the maxItems constant) that have a cap of 8 (thus it
// supports up to a uint64). It is used to provide temporary buffers for
// reading primitive numbers in their binary encoding in order to greatly
// reduce the number of allocations required.
var binaryFreeList = make(chan []byte, maxItems)

// borrow returns a byte slice from the free list with a length of 8. A new
// buffer is allocated if there are not any available on the free list.
func borrow() []byte {
	var buf []byte
	select {
	case buf = <-binaryFreeList:
	default:
		buf = make([]byte, 8)
	}
	return buf[:8]
}

// release puts the provided byte slice back on the free list. The buffer MUST
// have been obtained via the borrow function and therefore have a cap of 8.
func release(buf []byte) {
	select {
	case binaryFreeList <- buf:
	default:
		// Let it go to the garbage collector.
	}
}

// Uint8 reads a single byte from the provided reader and returns it as a
// uint8.
func Uint8(r io.Reader) (uint8, error) {
	buf := borrow()[:1]
	if _, err := io.ReadFull(r, buf); err != nil {
		release(buf)
		return 0, errors.WithStack(err)
	}
	rv := buf[0]
	release(buf)
	return rv, nil
}

// Uint16 reads two bytes from the provided reader, converts them to a
// number using little endian, and returns the resulting uint16.
func Uint16(r io.Reader) (uint16, error) {
	buf := borrow()[:2]
	if _, err := io.ReadFull(r, buf); err != nil {
		release(buf)
		return 0, errors.WithStack(err)
	}
	rv := binary.LittleEndian.Uint16(buf)
	release(buf)
	return rv, nil
}

// Uint32 reads four bytes from the provided reader, converts them to a
// number using little endian, and returns the resulting uint32.
func Uint32(r io.Reader) (uint32, error) {
	buf := borrow()[:4]
	if _, err := io.ReadFull(r, buf); err != nil {
		release(buf)
		return 0, errors.WithStack(err)
	}
	rv := binary.LittleEndian.Uint32(buf)
	release(buf)
	return rv, nil
}

// Uint64 reads eight bytes from the provided reader, converts them to a
// number using little endian, and returns the resulting uint64.
func Uint64(r io.Reader) (uint64, error) {
	buf := borrow()[:8]
	if _, err := io.ReadFull(r, buf); err != nil {
		release(buf)
		return 0, errors.WithStack(err)
	}
	rv := binary.LittleEndian.Uint64(buf)
	release(buf)
	return rv, nil
}

// PutUint8 writes the provided uint8 to the given writer.
func PutUint8(w io.Writer, val uint8) error {
	buf := [1]byte{val}
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUint16 serializes the provided uint16 using little endian and writes
// the resulting two bytes to the given writer.
func PutUint16(w io.Writer, val uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUint32 serializes the provided uint32 using little endian and writes
// the resulting four bytes to the given writer.
func PutUint32(w io.Writer, val uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}

// PutUint64 serializes the provided uint64 using little endian and writes
// the resulting eight bytes to the given writer.
func PutUint64(w io.Writer, val uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], val)
	_, err := w.Write(buf[:])
	return errors.WithStack(err)
}
