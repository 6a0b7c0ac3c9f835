// Command aesblock encrypts hex-encoded blocks with AES-128.
//
// Each argument, or each line of standard input when there are none, is one
// plaintext whose length is a multiple of 16 bytes. Every block is
// encrypted on its own and the ciphertext is printed one line per input.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sulami/cryptopals/aes"
	"github.com/sulami/cryptopals/cipher"
	"github.com/sulami/cryptopals/internal/config"
	"github.com/sulami/cryptopals/internal/cpuinfo"
)

func main() {
	log.SetFlags(0)
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("aesblock: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("aesblock", flag.ContinueOnError)
	envFile := fs.String("env", ".env", "dotenv file to load")
	keyHex := fs.String("key", "", "hex-encoded 16-byte key")
	passphrase := fs.String("passphrase", "", "derive the key from this passphrase")
	salt := fs.String("salt", "", "salt for -passphrase")
	encoding := fs.String("encoding", "", "output encoding: hex or base64")
	workers := fs.Int("workers", -1, "concurrent workers per input, 0 for GOMAXPROCS")
	verbose := fs.Bool("v", false, "log CPU details")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "key":
			cfg.KeyHex = *keyHex
		case "passphrase":
			cfg.Passphrase = *passphrase
			if *keyHex == "" {
				cfg.KeyHex = ""
			}
		case "salt":
			cfg.Salt = *salt
		case "encoding":
			cfg.Encoding = *encoding
		case "workers":
			cfg.Workers = *workers
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *verbose {
		log.Print(cpuinfo.Describe())
	}

	key, err := cfg.Key()
	if err != nil {
		return err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	for i, in := range inputs {
		src, err := decodeHex(in)
		if err != nil {
			return fmt.Errorf("input %d: %w", i+1, err)
		}
		dst := make([]byte, len(src))
		if err := cipher.EncryptBlocks(ctx, block, dst, src, cfg.Workers); err != nil {
			return fmt.Errorf("input %d: %w", i+1, err)
		}
		if _, err := fmt.Fprintln(stdout, cfg.Encode(dst)); err != nil {
			return err
		}
	}
	return nil
}
