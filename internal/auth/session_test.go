package auth

import (
	"strings"
	"testing"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	token := CreateSessionToken("user-123", secret)

	userID, err := VerifySessionToken(token, secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user-123, got %q", userID)
	}
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token := CreateSessionToken("user-123", SessionSecretBytes("secret-a"))

	if _, err := VerifySessionToken(token, SessionSecretBytes("secret-b")); err == nil {
		t.Error("expected verification to fail with wrong secret")
	}
}

func TestSessionToken_Tampered(t *testing.T) {
	secret := SessionSecretBytes("test-secret")
	token := CreateSessionToken("user-123", secret)

	// swap the payload while keeping the original signature
	parts := strings.SplitN(token, ".", 2)
	forged := CreateSessionToken("user-456", secret)
	forgedPayload := strings.SplitN(forged, ".", 2)[0]

	if _, err := VerifySessionToken(forgedPayload+"."+parts[1], secret); err == nil {
		t.Error("expected verification to fail for tampered payload")
	}
}

func TestSessionToken_Malformed(t *testing.T) {
	secret := SessionSecretBytes("test-secret")

	for _, token := range []string{"", "no-dot", "!!!.sig", "a.b.c"} {
		if _, err := VerifySessionToken(token, secret); err == nil {
			t.Errorf("expected error for malformed token %q", token)
		}
	}
}

func TestSessionSecretBytes_Padding(t *testing.T) {
	short := SessionSecretBytes("tiny")
	if len(short) != 32 {
		t.Errorf("expected short secret padded to 32 bytes, got %d", len(short))
	}

	long := strings.Repeat("x", 48)
	if got := SessionSecretBytes(long); len(got) != 48 {
		t.Errorf("expected long secret kept at 48 bytes, got %d", len(got))
	}
}
