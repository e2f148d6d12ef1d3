// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

const (
	// ZatoshiPerZenCent is the number of zatoshi in one zenith cent.
	ZatoshiPerZenCent = 1000000

	// ZatoshiPerZenith is the number of zatoshi in one zenith (1 ZEN).
	ZatoshiPerZenith = 100000000

	// MaxZatoshi is the maximum transaction amount allowed in zatoshi.
	MaxZatoshi = 21000000 * ZatoshiPerZenith
)
