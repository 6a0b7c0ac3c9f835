// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Byte-oriented AES-128 encryption, written the way FIPS 197 section 5.1
// describes the cipher: one fixed 16-byte state run through SubBytes,
// ShiftRows, MixColumns and AddRoundKey.
//	https://csrc.nist.gov/publications/fips/fips197/fips-197.pdf

package aes

import (
	"encoding/binary"
	"math/bits"
)

const (
	// The AES block size in bytes.
	BlockSize = 16

	// The AES-128 key size in bytes.
	KeySize = 16

	// Number of rounds for a 128-bit key.
	Rounds = 10
)

// State is the cipher state, a 4x4 byte matrix stored column by column:
// byte i sits in row i%4 of column i/4. This is also the order of the
// input and output blocks.
type State [BlockSize]byte

// Key is a 128-bit key as four big-endian words, one per state column.
type Key [4]uint32

// Schedule holds the round keys derived from one cipher key.
// Index 0 is the cipher key itself.
type Schedule [Rounds + 1]Key

// KeyFromBytes packs a 16-byte key into words.
func KeyFromBytes(b [KeySize]byte) Key {
	var k Key
	for i := range k {
		k[i] = binary.BigEndian.Uint32(b[4*i:])
	}
	return k
}

// Bytes returns the key in its 16-byte form.
func (k Key) Bytes() [KeySize]byte {
	var b [KeySize]byte
	for i, w := range k {
		binary.BigEndian.PutUint32(b[4*i:], w)
	}
	return b
}

// SubByte returns the S-box value for b.
func SubByte(b byte) byte { return sbox0[b] }

// SubWord applies the S-box to each byte in w.
func SubWord(w uint32) uint32 {
	return uint32(sbox0[w>>24])<<24 |
		uint32(sbox0[w>>16&0xff])<<16 |
		uint32(sbox0[w>>8&0xff])<<8 |
		uint32(sbox0[w&0xff])
}

// Rotate [a0,a1,a2,a3] to [a1,a2,a3,a0].
func rotWord(w uint32) uint32 { return bits.RotateLeft32(w, 8) }

// ExpandKey derives the eleven round keys for key. See FIPS-197, Figure 11.
func ExpandKey(key Key) Schedule {
	var ks Schedule
	ks[0] = key
	for r := 1; r <= Rounds; r++ {
		prev, cur := &ks[r-1], &ks[r]
		cur[0] = SubWord(rotWord(prev[3])) ^ prev[0] ^ rcon[r-1]
		for i := 1; i < len(cur); i++ {
			cur[i] = cur[i-1] ^ prev[i]
		}
	}
	return ks
}

// SubBytes applies the S-box to every byte of the state.
func (s *State) SubBytes() {
	for i := range s {
		s[i] = sbox0[s[i]]
	}
}

// ShiftRows rotates row r of the state left by r positions.
func (s *State) ShiftRows() {
	t := *s
	for row := 1; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row+4*col] = t[row+4*((col+row)%4)]
		}
	}
}

// xtime multiplies b by x in GF(2⁸).
func xtime(b byte) byte {
	hi := b & 0x80
	b <<= 1
	if hi != 0 {
		b ^= reduction
	}
	return b
}

// MixColumns multiplies each column, read as a polynomial over GF(2⁸),
// by {03}x³ + {01}x² + {01}x + {02} modulo x⁴ + 1.
func (s *State) MixColumns() {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		// {02}a0 ^ {03}a1 ^ a2 ^ a3 == a0 ^ t ^ {02}(a0 ^ a1)
		t := a0 ^ a1 ^ a2 ^ a3
		s[c] = a0 ^ t ^ xtime(a0^a1)
		s[c+1] = a1 ^ t ^ xtime(a1^a2)
		s[c+2] = a2 ^ t ^ xtime(a2^a3)
		s[c+3] = a3 ^ t ^ xtime(a3^a0)
	}
}

// AddRoundKey XORs column c of the state with the bytes of k[c].
func (s *State) AddRoundKey(k Key) {
	for c, w := range k {
		s[4*c] ^= byte(w >> 24)
		s[4*c+1] ^= byte(w >> 16)
		s[4*c+2] ^= byte(w >> 8)
		s[4*c+3] ^= byte(w)
	}
}

// Encrypt runs the full AES-128 cipher over one block.
// The round keys are expanded afresh for every call; nothing is kept
// between calls, so Encrypt is safe for concurrent use.
func Encrypt(plaintext State, key Key) State {
	ks := ExpandKey(key)
	s := plaintext

	// First round just XORs input with key.
	s.AddRoundKey(ks[0])

	for r := 1; r < Rounds; r++ {
		s.SubBytes()
		s.ShiftRows()
		s.MixColumns()
		s.AddRoundKey(ks[r])
	}

	// Last round skips MixColumns.
	s.SubBytes()
	s.ShiftRows()
	s.AddRoundKey(ks[Rounds])

	return s
}
