package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sulami/cryptopals/aes"
)

const (
	fipsKey        = "2b7e151628aed2a6abf7158809cf4f3c"
	fipsPlaintext  = "3243f6a8885a308d313198a2e0370734"
	fipsCiphertext = "3925841d02dc09fbdc118597196a0b32"
)

func post(t *testing.T, h http.Handler, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/encrypt", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestEncrypt(t *testing.T) {
	h := NewRouter(nil, 2)
	body := `{"key":"` + fipsKey + `","plaintext":"` + fipsPlaintext + fipsPlaintext + `"}`
	rec := post(t, h, "application/json", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}

	var resp EncryptResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Blocks != 2 || resp.Ciphertext != fipsCiphertext+fipsCiphertext {
		t.Errorf("response = %+v", resp)
	}
}

func TestEncryptDefaultKey(t *testing.T) {
	key := make([]byte, aes.KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	h := NewRouter(key, 0)
	rec := post(t, h, "application/json; charset=utf-8", `{"plaintext":"00112233445566778899aabbccddeeff"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	var resp EncryptResponse
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp.Ciphertext != "69c4e0d86a7b0430d8cdb78070b4c55a" {
		t.Errorf("ciphertext = %s", resp.Ciphertext)
	}
}

func TestEncryptRejects(t *testing.T) {
	h := NewRouter(nil, 0)
	tests := []struct {
		name, contentType, body string
		status                  int
	}{
		{"no content type", "", `{}`, http.StatusUnsupportedMediaType},
		{"form body", "application/x-www-form-urlencoded", `plaintext=00`, http.StatusUnsupportedMediaType},
		{"bad json", "application/json", `{"plaintext":`, http.StatusBadRequest},
		{"unknown field", "application/json", `{"iv":"00"}`, http.StatusBadRequest},
		{"no key", "application/json", `{"plaintext":"` + fipsPlaintext + `"}`, http.StatusBadRequest},
		{"key not hex", "application/json", `{"key":"zz","plaintext":"` + fipsPlaintext + `"}`, http.StatusBadRequest},
		{"192-bit key", "application/json", `{"key":"` + fipsKey + `0102030405060708","plaintext":"` + fipsPlaintext + `"}`, http.StatusBadRequest},
		{"plaintext not hex", "application/json", `{"key":"` + fipsKey + `","plaintext":"xyz"}`, http.StatusBadRequest},
		{"empty plaintext", "application/json", `{"key":"` + fipsKey + `","plaintext":""}`, http.StatusBadRequest},
		{"partial block", "application/json", `{"key":"` + fipsKey + `","plaintext":"0011"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, tt.contentType, tt.body)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (body %q)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestEncryptWrongMethod(t *testing.T) {
	h := NewRouter(nil, 0)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/encrypt", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestInfo(t *testing.T) {
	h := NewRouter(nil, 0)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/info", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var info InfoResponse
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatal(err)
	}
	if info.BlockSize != 16 || info.KeySize != 16 || info.Rounds != 10 {
		t.Errorf("info = %+v", info)
	}
}

func TestOracleErrorText(t *testing.T) {
	e := &OracleError{"Encrypt", "no key", nil, http.StatusBadRequest}
	if got := e.Error(); got != "Encrypt: no key: <nil>" {
		t.Errorf("Error() = %q", got)
	}
}
