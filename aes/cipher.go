// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"errors"
	"strconv"

	"github.com/sulami/cryptopals/cipher"
	"github.com/sulami/cryptopals/internal/subtle"
)

// A cipher is an instance of AES-128 encryption using a particular key.
type aesCipher struct {
	key Key
}

type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

// NewCipher creates and returns a new cipher.Block.
// The key argument must be a 16-byte AES-128 key.
func NewCipher(key []byte) (cipher.Block, error) {
	if k := len(key); k != KeySize {
		return nil, KeySizeError(k)
	}
	var b [KeySize]byte
	copy(b[:], key)
	return &aesCipher{KeyFromBytes(b)}, nil
}

func (c *aesCipher) BlockSize() int { return BlockSize }

func (c *aesCipher) Encrypt(dst, src []byte) error {
	if len(src) < BlockSize {
		return errors.New("aes: input not full block")
	}
	if len(dst) < BlockSize {
		return errors.New("aes: output not full block")
	}
	if subtle.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		return errors.New("aes: invalid buffer overlap")
	}
	var s State
	copy(s[:], src)
	out := Encrypt(s, c.key)
	copy(dst, out[:])
	return nil
}
