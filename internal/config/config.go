// Package config reads settings for the cryptopals commands from the
// environment, optionally seeded from dotenv files.
package config

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sulami/cryptopals/aes"
	"github.com/sulami/cryptopals/internal/kdf"
)

const (
	EnvKey        = "CRYPTOPALS_KEY"
	EnvPassphrase = "CRYPTOPALS_PASSPHRASE"
	EnvSalt       = "CRYPTOPALS_SALT"
	EnvWorkers    = "CRYPTOPALS_WORKERS"
	EnvAddr       = "CRYPTOPALS_ADDR"
	EnvEncoding   = "CRYPTOPALS_ENCODING"
)

const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

var ErrNoKey = errors.New("config: no key: set " + EnvKey + " or " + EnvPassphrase)

type Config struct {
	KeyHex     string
	Passphrase string
	Salt       string
	Workers    int
	Addr       string
	Encoding   string
}

// Load reads the given dotenv files, skipping any that do not exist, and
// builds a Config from the environment. Variables already set in the
// environment win over the files.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %s: %w", f, err)
		}
	}

	c := Config{
		KeyHex:     os.Getenv(EnvKey),
		Passphrase: os.Getenv(EnvPassphrase),
		Salt:       os.Getenv(EnvSalt),
		Addr:       os.Getenv(EnvAddr),
		Encoding:   os.Getenv(EnvEncoding),
	}
	if c.Addr == "" {
		c.Addr = ":3001"
	}
	if c.Encoding == "" {
		c.Encoding = EncodingHex
	}
	if w := os.Getenv(EnvWorkers); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvWorkers, err)
		}
		c.Workers = n
	}
	return c, c.Validate()
}

// Validate checks the fields that can be checked without deriving a key.
func (c Config) Validate() error {
	switch c.Encoding {
	case EncodingHex, EncodingBase64:
	default:
		return fmt.Errorf("config: %s: unknown encoding %q", EnvEncoding, c.Encoding)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: %s: negative worker count %d", EnvWorkers, c.Workers)
	}
	return nil
}

// Key returns the AES key. A hex key takes precedence over a passphrase.
func (c Config) Key() ([]byte, error) {
	if c.KeyHex != "" {
		key, err := hex.DecodeString(c.KeyHex)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvKey, err)
		}
		if len(key) != aes.KeySize {
			return nil, fmt.Errorf("config: %s: %w", EnvKey, aes.KeySizeError(len(key)))
		}
		return key, nil
	}
	if c.Passphrase != "" {
		return kdf.DeriveKey([]byte(c.Passphrase), []byte(c.Salt))
	}
	return nil, ErrNoKey
}

// Encode renders b in the configured output encoding.
func (c Config) Encode(b []byte) string {
	if c.Encoding == EncodingBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}
