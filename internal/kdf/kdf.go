// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kdf turns passphrases into AES-128 keys.
//
// The derivation is HKDF-SHA256 with the labelled expansion of the
// TLS 1.3 key schedule (RFC 8446, Section 7.1), under a "cryptopals "
// label prefix.
package kdf

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/hkdf"
)

const (
	labelPrefix = "cryptopals "
	keyLabel    = "aes-128 key"

	// KeyLen is the length of the keys DeriveKey returns.
	KeyLen = 16
)

var ErrEmptySecret = errors.New("kdf: empty secret")

// Extract implements HKDF-Extract with SHA-256.
func Extract(secret, salt []byte) []byte {
	return hkdf.Extract(sha256.New, secret, salt)
}

// ExpandLabel implements HKDF-Expand-Label from RFC 8446, Section 7.1,
// with the "cryptopals " prefix in place of "tls13 ".
func ExpandLabel(prk []byte, label string, context []byte, length int) ([]byte, error) {
	var hkdfLabel cryptobyte.Builder
	hkdfLabel.AddUint16(uint16(length))
	hkdfLabel.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes([]byte(labelPrefix))
		b.AddBytes([]byte(label))
	})
	hkdfLabel.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(context)
	})
	info, err := hkdfLabel.Bytes()
	if err != nil {
		return nil, fmt.Errorf("kdf: label %q: %w", label, err)
	}

	out := make([]byte, length)
	n, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), out)
	if err != nil || n != length {
		return nil, errors.New("kdf: HKDF-Expand-Label invocation failed unexpectedly")
	}
	return out, nil
}

// DeriveKey derives a 16-byte AES key from passphrase and salt.
// The same inputs always give the same key.
func DeriveKey(passphrase, salt []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptySecret
	}
	return ExpandLabel(Extract(passphrase, salt), keyLabel, nil, KeyLen)
}
