package utils

import (
	"strings"
	"testing"
)

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint("fcm-token-123")
	b := Fingerprint("fcm-token-123")

	if a != b {
		t.Fatalf("fingerprint must be deterministic: %s != %s", a, b)
	}
	if len(a) != 2*fingerprintSize {
		t.Errorf("expected %d hex chars, got %d", 2*fingerprintSize, len(a))
	}
}

func TestFingerprint_DoesNotLeakSecret(t *testing.T) {
	secret := "abcdef"
	fp := Fingerprint(secret)

	if strings.Contains(fp, secret) {
		t.Errorf("fingerprint %q contains the secret", fp)
	}
	if fp == Fingerprint("abcdeg") {
		t.Error("different secrets must produce different fingerprints")
	}
}

func TestFingerprint_Empty(t *testing.T) {
	if got := Fingerprint(""); got != "" {
		t.Errorf("expected empty fingerprint, got %q", got)
	}
}
