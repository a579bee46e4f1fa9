// Package memzero provides best-effort wiping of sensitive byte buffers.
package memzero

import "runtime"

// Zero overwrites b with zeros. This is best-effort and aims to reduce
// the chance of the compiler eliding the write.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// Ensure b is considered live until after the loop.
	runtime.KeepAlive(&b)
}
