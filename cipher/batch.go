// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cipher

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sulami/cryptopals/internal/subtle"
)

var (
	ErrNotFullBlocks = errors.New("cipher: input not full blocks")
	ErrShortDst      = errors.New("cipher: output smaller than input")
	ErrOverlap       = errors.New("cipher: invalid buffer overlap")
)

// EncryptBlocks encrypts each block of src into the same position of dst.
// Blocks do not depend on each other, so they are split into at most
// workers contiguous runs that are encrypted concurrently. A workers
// value of zero or less means runtime.GOMAXPROCS(0).
//
// The length of src must be a multiple of the block size; no padding is
// applied. The first error returned by b, or the cancellation of ctx,
// stops the remaining workers and is returned.
func EncryptBlocks(ctx context.Context, b Block, dst, src []byte, workers int) error {
	bs := b.BlockSize()
	if len(src)%bs != 0 {
		return ErrNotFullBlocks
	}
	if len(dst) < len(src) {
		return ErrShortDst
	}
	if subtle.InexactOverlap(dst[:len(src)], src) {
		return ErrOverlap
	}

	n := len(src) / bs
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)
	per := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += per {
		lo, hi := lo, min(lo+per, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				off := i * bs
				if err := b.Encrypt(dst[off:off+bs], src[off:off+bs]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
