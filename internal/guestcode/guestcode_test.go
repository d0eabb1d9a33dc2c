package guestcode

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if len(code) != Length {
			t.Fatalf("expected code of length %d, got %q", Length, code)
		}
		for _, c := range code {
			if !strings.ContainsRune(Alphabet, c) {
				t.Fatalf("code %q contains %q outside the alphabet", code, c)
			}
		}
		seen[code] = true
	}

	// 200 draws from a 32^8 space colliding down to a handful of distinct
	// codes would mean the generator is broken, not unlucky.
	if len(seen) < 190 {
		t.Errorf("expected mostly distinct codes, got %d distinct out of 200", len(seen))
	}
}

func TestGenerateUnique(t *testing.T) {
	t.Run("RetriesOnCollision", func(t *testing.T) {
		calls := 0
		code, err := GenerateUnique(func(string) (bool, error) {
			calls++
			return calls <= 2, nil
		})
		if err != nil {
			t.Fatalf("GenerateUnique returned error: %v", err)
		}
		if len(code) != Length {
			t.Errorf("expected code of length %d, got %q", Length, code)
		}
		if calls != 3 {
			t.Errorf("expected 3 existence checks, got %d", calls)
		}
	})

	t.Run("FailsAfterMaxAttempts", func(t *testing.T) {
		calls := 0
		_, err := GenerateUnique(func(string) (bool, error) {
			calls++
			return true, nil
		})
		if !errors.Is(err, ErrExhausted) {
			t.Fatalf("expected ErrExhausted, got %v", err)
		}
		if calls != MaxAttempts {
			t.Errorf("expected %d attempts, got %d", MaxAttempts, calls)
		}
	})

	t.Run("PropagatesStoreError", func(t *testing.T) {
		storeErr := errors.New("store unavailable")
		_, err := GenerateUnique(func(string) (bool, error) {
			return false, storeErr
		})
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}
