// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kdf

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"io"
	"strings"
	"testing"

	"golang.org/x/crypto/hkdf"
)

func TestExpandLabelFraming(t *testing.T) {
	prk := Extract([]byte("secret"), []byte("salt"))

	got, err := ExpandLabel(prk, "key", []byte{0xaa, 0xbb}, 16)
	if err != nil {
		t.Fatal(err)
	}

	info := []byte{0x00, 0x10, byte(len("cryptopals key"))}
	info = append(info, "cryptopals key"...)
	info = append(info, 0x02, 0xaa, 0xbb)
	want := make([]byte, 16)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), want); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ExpandLabel = %x, want %x", got, want)
	}
}

func TestExpandLabelTooLong(t *testing.T) {
	prk := Extract([]byte("secret"), nil)
	if _, err := ExpandLabel(prk, strings.Repeat("x", 300), nil, 16); err == nil {
		t.Error("ExpandLabel accepted a label longer than 255 bytes")
	}
	// HKDF-SHA256 cannot produce more than 255*32 bytes.
	if _, err := ExpandLabel(prk, "key", nil, 255*32+1); err == nil {
		t.Error("ExpandLabel accepted an oversized length")
	}
}

func TestDeriveKey(t *testing.T) {
	k1, err := DeriveKey([]byte("YELLOW SUBMARINE"), []byte("salt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(k1) != KeyLen {
		t.Fatalf("len(key) = %d, want %d", len(k1), KeyLen)
	}

	k2, _ := DeriveKey([]byte("YELLOW SUBMARINE"), []byte("salt"))
	if !bytes.Equal(k1, k2) {
		t.Errorf("DeriveKey not deterministic: %x != %x", k1, k2)
	}

	for _, tt := range []struct{ pass, salt string }{
		{"YELLOW SUBMARINE", "pepper"},
		{"yellow submarine", "salt"},
		{"YELLOW SUBMARINE", ""},
	} {
		k, err := DeriveKey([]byte(tt.pass), []byte(tt.salt))
		if err != nil {
			t.Fatal(err)
		}
		if bytes.Equal(k, k1) {
			t.Errorf("DeriveKey(%q, %q) collides with the base key", tt.pass, tt.salt)
		}
	}
}

func TestDeriveKeyEmpty(t *testing.T) {
	if _, err := DeriveKey(nil, []byte("salt")); !errors.Is(err, ErrEmptySecret) {
		t.Errorf("got %v, want ErrEmptySecret", err)
	}
}
