package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"reflect"
	"testing"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeySize)
}

func TestNewCodec_RejectsWrongKeySize(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		_, err := NewCodec(bytes.Repeat([]byte{0x01}, size))
		if !errors.Is(err, ErrInvalidKeySize) {
			t.Fatalf("key size %d: expected ErrInvalidKeySize, got %v", size, err)
		}
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, err := NewCodec(testKey(0x2A))
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}

	// JSON-decoded values: numbers come back as float64, objects as
	// map[string]any.
	values := []any{
		"plain string",
		float64(50000),
		float64(-3.25),
		true,
		nil,
		map[string]any{"income": float64(50000), "household": float64(4)},
		[]any{"a", float64(1), false},
		map[string]any{"nested": map[string]any{"deep": []any{nil, "x"}}},
	}

	for _, v := range values {
		blob, err := codec.Encrypt(v)
		if err != nil {
			t.Fatalf("Encrypt(%v) error: %v", v, err)
		}

		got, err := codec.Decrypt(blob)
		if err != nil {
			t.Fatalf("Decrypt error for %v: %v", v, err)
		}

		if !reflect.DeepEqual(got, v) {
			t.Fatalf("round-trip mismatch: got %#v, want %#v", got, v)
		}
	}
}

func TestCodec_CiphertextIsNonDeterministic(t *testing.T) {
	codec, _ := NewCodec(testKey(0x2A))

	b1, err := codec.Encrypt("same value")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	b2, err := codec.Encrypt("same value")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if b1 == b2 {
		t.Fatalf("expected different blobs for two encryptions of the same value")
	}
}

func TestCodec_TamperDetection(t *testing.T) {
	codec, _ := NewCodec(testKey(0x2A))

	blob, err := codec.Encrypt(map[string]any{"secret": "value"})
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("decode blob: %v", err)
	}

	// Flip one byte in every region of the blob: nonce, tag, ciphertext.
	for _, pos := range []int{0, nonceSize, nonceSize + tagSize, len(raw) - 1} {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[pos] ^= 0x01

		_, err := codec.Decrypt(base64.StdEncoding.EncodeToString(tampered))
		if !errors.Is(err, ErrDecryptionFailed) {
			t.Fatalf("byte %d flipped: expected ErrDecryptionFailed, got %v", pos, err)
		}
	}
}

func TestCodec_WrongKeyFails(t *testing.T) {
	codec1, _ := NewCodec(testKey(0x11))
	codec2, _ := NewCodec(testKey(0x22))

	blob, err := codec1.Encrypt("secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	_, err = codec2.Decrypt(blob)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed with wrong key, got %v", err)
	}
}

func TestCodec_MalformedBlob(t *testing.T) {
	codec, _ := NewCodec(testKey(0x2A))

	cases := []string{
		"not base64 at all !!!",
		"",
		base64.StdEncoding.EncodeToString([]byte("short")),
		base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x00}, nonceSize+tagSize-1)),
	}

	for _, blob := range cases {
		_, err := codec.Decrypt(blob)
		if !errors.Is(err, ErrMalformedBlob) {
			t.Fatalf("blob %q: expected ErrMalformedBlob, got %v", blob, err)
		}
	}
}

func TestCodec_EmptyValueRoundTrip(t *testing.T) {
	codec, _ := NewCodec(testKey(0x2A))

	// base64("") decodes to zero bytes but empty JSON string encrypts to a
	// non-empty ciphertext; the header-only invariant still holds.
	blob, err := codec.Encrypt("")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(blob)
	if len(raw) < nonceSize+tagSize {
		t.Fatalf("blob shorter than header: %d bytes", len(raw))
	}

	got, err := codec.Decrypt(blob)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty string, got %#v", got)
	}
}
