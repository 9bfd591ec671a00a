// Package contract states the properties any cipher or hash plugged into
// Presswerk's encrypted storage must satisfy. The package performs no
// cryptography of its own: the Verify functions are acceptance criteria run
// against a concrete backend, and a backend that passes them is
// interchangeable with any other.
package contract

import (
	"bytes"
	"errors"
	"fmt"
)

// Keypair binds an encryption key to its matching decryption key. Encrypt
// never returns empty ciphertext for non-empty plaintext; Decrypt fails
// (returns an error, never wrong plaintext) when the ciphertext was produced
// under a different keypair.
type Keypair interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// Cipher mints independent keypairs for a concrete encryption backend.
type Cipher interface {
	// Name identifies the backend in acceptance-failure messages.
	Name() string
	GenerateKeypair() (Keypair, error)
}

// Hash is a content hash with a fixed 32-byte output.
type Hash interface {
	Name() string
	Sum(data []byte) []byte
}

// HashSize is the required digest length.
const HashSize = 32

// ErrContractViolated wraps every acceptance failure so callers can treat
// any of them as a build-stopping defect.
var ErrContractViolated = errors.New("contract violated")

func violation(backend, property, detail string) error {
	return fmt.Errorf("%w: %s: %s: %s", ErrContractViolated, backend, property, detail)
}

// roundTripPlaintexts are the inputs every backend must survive, including
// the empty plaintext edge case.
func roundTripPlaintexts() [][]byte {
	return [][]byte{
		{},
		[]byte("x"),
		[]byte("Presswerk print job #42"),
		bytes.Repeat([]byte{0x00}, 257),
		bytes.Repeat([]byte("layout"), 1024),
	}
}

// VerifyRoundTrip checks decrypt(decKey(k), encrypt(encKey(k), p)) == p for
// a fresh keypair and a spread of plaintexts.
func VerifyRoundTrip(c Cipher) error {
	kp, err := c.GenerateKeypair()
	if err != nil {
		return violation(c.Name(), "round-trip", "keypair generation failed: "+err.Error())
	}
	for _, p := range roundTripPlaintexts() {
		ct, err := kp.Encrypt(p)
		if err != nil {
			return violation(c.Name(), "round-trip", fmt.Sprintf("encrypt %d bytes: %v", len(p), err))
		}
		got, err := kp.Decrypt(ct)
		if err != nil {
			return violation(c.Name(), "round-trip", fmt.Sprintf("decrypt %d bytes: %v", len(ct), err))
		}
		if !bytes.Equal(got, p) {
			return violation(c.Name(), "round-trip", fmt.Sprintf("plaintext of %d bytes did not survive", len(p)))
		}
	}
	return nil
}

// VerifyNonEmptyCiphertext checks that non-empty plaintext never encrypts to
// empty ciphertext.
func VerifyNonEmptyCiphertext(c Cipher) error {
	kp, err := c.GenerateKeypair()
	if err != nil {
		return violation(c.Name(), "non-empty", "keypair generation failed: "+err.Error())
	}
	ct, err := kp.Encrypt([]byte("p"))
	if err != nil {
		return violation(c.Name(), "non-empty", "encrypt failed: "+err.Error())
	}
	if len(ct) == 0 {
		return violation(c.Name(), "non-empty", "non-empty plaintext produced empty ciphertext")
	}
	return nil
}

// VerifyKeySeparation checks that the same plaintext under two distinct
// keypairs does not produce identical ciphertext.
func VerifyKeySeparation(c Cipher) error {
	a, err := c.GenerateKeypair()
	if err != nil {
		return violation(c.Name(), "key-separation", "keypair generation failed: "+err.Error())
	}
	b, err := c.GenerateKeypair()
	if err != nil {
		return violation(c.Name(), "key-separation", "keypair generation failed: "+err.Error())
	}
	p := []byte("identical plaintext")
	ctA, err := a.Encrypt(p)
	if err != nil {
		return violation(c.Name(), "key-separation", "encrypt failed: "+err.Error())
	}
	ctB, err := b.Encrypt(p)
	if err != nil {
		return violation(c.Name(), "key-separation", "encrypt failed: "+err.Error())
	}
	if bytes.Equal(ctA, ctB) {
		return violation(c.Name(), "key-separation", "two keypairs produced identical ciphertext")
	}
	return nil
}

// VerifyWrongKeyFails checks that a decryption key from a different keypair
// fails outright instead of silently returning wrong plaintext.
func VerifyWrongKeyFails(c Cipher) error {
	owner, err := c.GenerateKeypair()
	if err != nil {
		return violation(c.Name(), "wrong-key", "keypair generation failed: "+err.Error())
	}
	stranger, err := c.GenerateKeypair()
	if err != nil {
		return violation(c.Name(), "wrong-key", "keypair generation failed: "+err.Error())
	}
	p := []byte("secret")
	ct, err := owner.Encrypt(p)
	if err != nil {
		return violation(c.Name(), "wrong-key", "encrypt failed: "+err.Error())
	}
	got, err := stranger.Decrypt(ct)
	if err == nil {
		detail := "decryption under a foreign keypair succeeded"
		if bytes.Equal(got, p) {
			detail = "foreign keypair recovered the plaintext"
		}
		return violation(c.Name(), "wrong-key", detail)
	}
	return nil
}

// VerifyHash checks determinism and the fixed 32-byte output size.
func VerifyHash(h Hash) error {
	inputs := [][]byte{{}, []byte("hello"), bytes.Repeat([]byte{0xA5}, 4096)}
	for _, in := range inputs {
		first := h.Sum(in)
		if len(first) != HashSize {
			return violation(h.Name(), "hash-size", fmt.Sprintf("digest is %d bytes, want %d", len(first), HashSize))
		}
		if !bytes.Equal(first, h.Sum(in)) {
			return violation(h.Name(), "hash-determinism", "equal inputs hashed unequal")
		}
	}
	return nil
}

// Verify runs the full acceptance suite against a cipher and hash pair.
func Verify(c Cipher, h Hash) error {
	for _, check := range []func(Cipher) error{
		VerifyRoundTrip,
		VerifyNonEmptyCiphertext,
		VerifyKeySeparation,
		VerifyWrongKeyFails,
	} {
		if err := check(c); err != nil {
			return err
		}
	}
	return VerifyHash(h)
}
