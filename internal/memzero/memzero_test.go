package memzero_test

import (
	"testing"

	"saltbox/internal/memzero"
)

func TestZero_ClearsBuffer(t *testing.T) {
	b := []byte("sensitive key material")
	memzero.Zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not cleared: %#x", i, v)
		}
	}
}

func TestZero_EmptyAndNil(t *testing.T) {
	memzero.Zero(nil)
	memzero.Zero([]byte{})
}

func TestZero_Subslice(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5, 6}
	memzero.Zero(b[2:4])
	want := []byte{1, 2, 0, 0, 5, 6}
	for i := range b {
		if b[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, b[i], want[i])
		}
	}
}
