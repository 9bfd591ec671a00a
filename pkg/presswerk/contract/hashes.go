package contract

import (
	"crypto/sha256"

	"github.com/zeebo/blake3"
)

// SHA256 returns the designated content hash of the boundary. The first
// digest byte of "hello" is 0x2c; native consumers pin that as a smoke test.
func SHA256() Hash {
	return sha256Hash{}
}

type sha256Hash struct{}

func (sha256Hash) Name() string { return "sha-256" }

func (sha256Hash) Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// BLAKE3 returns an alternative 32-byte hash backend. It satisfies the same
// acceptance suite and exists to prove the contract is backend-agnostic.
func BLAKE3() Hash {
	return blake3Hash{}
}

type blake3Hash struct{}

func (blake3Hash) Name() string { return "blake3" }

func (blake3Hash) Sum(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}
