package common

import "github.com/nspcc-dev/neo-go/pkg/interop"

// IsValidHash160 returns true if h is a 20-byte script hash different from the
// zero one.
func IsValidHash160(h interop.Hash160) bool {
	if len(h) != interop.Hash160Len {
		return false
	}

	for i := 0; i < interop.Hash160Len; i++ {
		if h[i] != 0 {
			return true
		}
	}

	return false
}
