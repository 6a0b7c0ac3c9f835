// Package http serves the block cipher as a cryptopals-style encryption
// oracle.
package http

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sulami/cryptopals/aes"
	"github.com/sulami/cryptopals/cipher"
	"github.com/sulami/cryptopals/internal/cpuinfo"
)

const maxBodyBytes = 1 << 20

type OracleError struct {
	Where  string
	What   string
	Err    error
	Status int
}

type OracleHandler func(http.ResponseWriter, *http.Request) *OracleError

func (e *OracleError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Where, e.What, e.Err)
}

func (fn OracleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := fn(w, r); err != nil {
		log.Printf("Error: %v", err.Error())
		switch {
		case err.Status >= http.StatusInternalServerError:
			http.Error(w, http.StatusText(err.Status), err.Status)
		default:
			http.Error(w, err.What, err.Status)
		}
	}
}

type EncryptRequest struct {
	Key       string `json:"key,omitempty"`
	Plaintext string `json:"plaintext"`
}

type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
	Blocks     int    `json:"blocks"`
}

type InfoResponse struct {
	BlockSize   int  `json:"blockSize"`
	KeySize     int  `json:"keySize"`
	Rounds      int  `json:"rounds"`
	HardwareAES bool `json:"hardwareAES"`
}

// NewRouter wires the oracle routes. defaultKey is used when a request
// carries no key of its own and may be nil.
func NewRouter(defaultKey []byte, workers int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/info", Info().ServeHTTP)
	r.Post("/encrypt", Encrypt(defaultKey, workers).ServeHTTP)

	return r
}

func Info() http.Handler {
	return OracleHandler(func(w http.ResponseWriter, r *http.Request) *OracleError {
		info := InfoResponse{
			BlockSize:   aes.BlockSize,
			KeySize:     aes.KeySize,
			Rounds:      aes.Rounds,
			HardwareAES: cpuinfo.HasAES(),
		}
		if err := writeJSON(w, info); err != nil {
			return &OracleError{"Info", "failed to encode", err, http.StatusInternalServerError}
		}
		return nil
	})
}

func Encrypt(defaultKey []byte, workers int) http.Handler {
	return OracleHandler(func(w http.ResponseWriter, r *http.Request) *OracleError {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			return &OracleError{"Encrypt", "expected application/json", err, http.StatusUnsupportedMediaType}
		}

		var req EncryptRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return &OracleError{"Encrypt", "malformed request", err, http.StatusBadRequest}
		}

		key := defaultKey
		if req.Key != "" {
			key, err = hex.DecodeString(req.Key)
			if err != nil {
				return &OracleError{"Encrypt", "key is not hex", err, http.StatusBadRequest}
			}
		}
		if key == nil {
			return &OracleError{"Encrypt", "no key", nil, http.StatusBadRequest}
		}
		block, err := aes.NewCipher(key)
		if err != nil {
			return &OracleError{"Encrypt", err.Error(), err, http.StatusBadRequest}
		}

		plaintext, err := hex.DecodeString(req.Plaintext)
		if err != nil {
			return &OracleError{"Encrypt", "plaintext is not hex", err, http.StatusBadRequest}
		}
		if len(plaintext) == 0 {
			return &OracleError{"Encrypt", "empty plaintext", nil, http.StatusBadRequest}
		}

		ciphertext := make([]byte, len(plaintext))
		err = cipher.EncryptBlocks(r.Context(), block, ciphertext, plaintext, workers)
		if errors.Is(err, cipher.ErrNotFullBlocks) {
			return &OracleError{"Encrypt", "plaintext not a multiple of 16 bytes", err, http.StatusBadRequest}
		}
		if err != nil {
			return &OracleError{"Encrypt", "failed to encrypt", err, http.StatusInternalServerError}
		}

		resp := EncryptResponse{
			Ciphertext: hex.EncodeToString(ciphertext),
			Blocks:     len(plaintext) / aes.BlockSize,
		}
		if err := writeJSON(w, resp); err != nil {
			return &OracleError{"Encrypt", "failed to encode", err, http.StatusInternalServerError}
		}
		return nil
	})
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	return json.NewEncoder(w).Encode(v)
}
