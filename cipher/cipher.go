// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cipher drives a single-block cipher over many independent blocks.
package cipher

// A Block represents an implementation of block cipher
// using a given key. It provides the capability to encrypt
// individual blocks. There is no inverse operation.
type Block interface {
	// BlockSize returns the cipher's block size.
	BlockSize() int

	// Encrypt encrypts the first block in src into dst.
	// Dst and src must overlap entirely or not at all.
	Encrypt(dst, src []byte) error
}
