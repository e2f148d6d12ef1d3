// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// MessageError describes an issue with a transaction on the wire, such as a
// format outside the known version families or a length-prefixed field
// exceeding its sanity bound.
//
// This provides a mechanism for the caller to type assert the error to
// differentiate between general io errors such as io.EOF and errors that
// indicate a violation of the encoding rules themselves. A MessageError is
// fatal to the decode in progress; no partial object is produced.
type MessageError struct {
	Func        string // Function name
	Description string // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e *MessageError) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("%s: %s", e.Func, e.Description)
	}
	return e.Description
}

// messageError creates an error for the given function and description.
func messageError(f string, desc string) *MessageError {
	return &MessageError{Func: f, Description: desc}
}
