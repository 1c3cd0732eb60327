package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestRoundTripWithKey(t *testing.T) {
	key := hex.EncodeToString(bytes.Repeat([]byte{0x2a}, 32))
	service, err := New(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !service.Configured() {
		t.Fatal("expected service to be configured")
	}

	plain := []byte("medical report contents")
	encrypted, err := service.Encrypt(plain)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if bytes.Equal(encrypted, plain) {
		t.Fatal("ciphertext equals plaintext")
	}

	decrypted, err := service.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if !bytes.Equal(decrypted, plain) {
		t.Fatalf("round trip mismatch: %q", decrypted)
	}
}

func TestPassThroughWithoutKey(t *testing.T) {
	service, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if service.Configured() {
		t.Fatal("expected unconfigured service")
	}

	plain := []byte("data")
	encrypted, err := service.Encrypt(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(encrypted, plain) {
		t.Fatal("expected pass-through without key")
	}
}

func TestRejectsShortKey(t *testing.T) {
	if _, err := New("tooshort"); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestDecryptRejectsTruncatedCiphertext(t *testing.T) {
	key := hex.EncodeToString(bytes.Repeat([]byte{0x01}, 32))
	service, err := New(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Decrypt([]byte{0x01, 0x02}); err == nil {
		t.Fatal("expected error for truncated ciphertext")
	}
}
