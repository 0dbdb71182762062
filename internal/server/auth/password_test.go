package auth

import (
	"testing"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if digest == "secret1" {
		t.Fatalf("digest must not equal the plaintext")
	}

	if !CheckPassword("secret1", digest) {
		t.Fatalf("expected digest to verify against its own plaintext")
	}
}

func TestHashPassword_SaltFreshness(t *testing.T) {
	t.Parallel()

	d1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	d2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if d1 == d2 {
		t.Fatalf("two hashes of the same plaintext must differ, got %q twice", d1)
	}

	// Both digests still verify despite differing salts.
	if !CheckPassword("secret1", d1) || !CheckPassword("secret1", d2) {
		t.Fatalf("both digests must verify the original plaintext")
	}
}

func TestCheckPassword_WrongPlaintext(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if CheckPassword("secret2", digest) {
		t.Fatalf("a different plaintext must not verify")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	if CheckPassword("secret1", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest must not verify")
	}
}
