package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/GoArmGo/MarketApp/internal/domain"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "" {
		t.Fatal("Hash() returned empty hash")
	}
	if hash == "s3cret-password" {
		t.Fatal("Hash() returned plaintext")
	}

	ok, err := hasher.Verify("s3cret-password", hash)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !ok {
		t.Error("Verify() = false for correct password")
	}

	ok, err = hasher.Verify("wrong-password", hash)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if ok {
		t.Error("Verify() = true for wrong password")
	}
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash1, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	hash2, err := hasher.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// Salt is randomized per call, so the same plaintext must yield
	// different hashes
	if hash1 == hash2 {
		t.Error("two hashes of the same password are identical")
	}

	for _, h := range []string{hash1, hash2} {
		ok, err := hasher.Verify("same-password", h)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if !ok {
			t.Error("Verify() = false for correct password")
		}
	}
}

func TestPasswordHasher_CorruptHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	tests := []struct {
		name string
		hash string
	}{
		{name: "empty hash", hash: ""},
		{name: "not a bcrypt hash", hash: "plaintext-stored-by-accident"},
		{name: "truncated hash", hash: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := hasher.Verify("password", tt.hash)
			if err == nil {
				t.Fatal("Verify() should fail for corrupt hash")
			}
			if !errors.Is(err, domain.ErrCorruptHash) {
				t.Errorf("Verify() error = %v, want domain.ErrCorruptHash", err)
			}
			if ok {
				t.Error("Verify() = true for corrupt hash")
			}
		})
	}
}

func TestNewPasswordHasher_DefaultCost(t *testing.T) {
	hasher := NewPasswordHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want bcrypt.DefaultCost (%d)", hasher.cost, bcrypt.DefaultCost)
	}

	hasher = NewPasswordHasher(bcrypt.MinCost)
	if hasher.cost != bcrypt.MinCost {
		t.Errorf("cost = %d, want %d", hasher.cost, bcrypt.MinCost)
	}
}
