package common

import "crypto/rand"

// GenerateRandByteArray returns size bytes from crypto/rand. It is used for
// password salts.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	_, _ = rand.Read(b)
	return b
}

// WipeByteArray zeroes b in place, for passwords and derived keys once they
// are no longer needed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	clear(b)
}
