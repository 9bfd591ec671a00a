// Package ecies is a second encryption backend for the Presswerk storage
// contract: ephemeral-static ECDH on secp256k1 with an HKDF-SHA256 derived
// ChaCha20-Poly1305 key. It exists to demonstrate that any backend passing
// the acceptance suite is interchangeable with the reference one.
//
// Ciphertext framing: compressed ephemeral public key (33 bytes) || nonce
// (12 bytes) || AEAD-sealed payload.
package ecies

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"github.com/presswerk/presswerk-go/pkg/presswerk/contract"
)

const ephemeralKeyLen = 33

var errCiphertextTooShort = errors.New("ecies: ciphertext too short")

// New returns the secp256k1 ECIES cipher.
func New() contract.Cipher {
	return backend{}
}

type backend struct{}

func (backend) Name() string { return "ecies-secp256k1" }

func (backend) GenerateKeypair() (contract.Keypair, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("ecies: generate key: %w", err)
	}
	return &keypair{priv: priv}, nil
}

type keypair struct {
	priv *btcec.PrivateKey
}

// deriveAEAD turns an ECDH shared secret into a ChaCha20-Poly1305 AEAD. The
// ephemeral public key is bound in as HKDF info so two messages never share
// a key stream.
func deriveAEAD(secret, ephPub []byte) (cipher.AEAD, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	kdf := hkdf.New(sha256.New, secret, nil, ephPub)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("ecies: derive key: %w", err)
	}
	return chacha20poly1305.New(key)
}

func (k *keypair) Encrypt(plaintext []byte) ([]byte, error) {
	eph, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("ecies: ephemeral key: %w", err)
	}
	ephPub := eph.PubKey().SerializeCompressed()

	secret := btcec.GenerateSharedSecret(eph, k.priv.PubKey())
	aead, err := deriveAEAD(secret, ephPub)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("ecies: nonce: %w", err)
	}

	out := make([]byte, 0, len(ephPub)+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, ephPub...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, nil), nil
}

func (k *keypair) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < ephemeralKeyLen+chacha20poly1305.NonceSize {
		return nil, errCiphertextTooShort
	}
	ephPub, err := btcec.ParsePubKey(ciphertext[:ephemeralKeyLen])
	if err != nil {
		return nil, fmt.Errorf("ecies: parse ephemeral key: %w", err)
	}
	nonce := ciphertext[ephemeralKeyLen : ephemeralKeyLen+chacha20poly1305.NonceSize]
	sealed := ciphertext[ephemeralKeyLen+chacha20poly1305.NonceSize:]

	secret := btcec.GenerateSharedSecret(k.priv, ephPub)
	aead, err := deriveAEAD(secret, ciphertext[:ephemeralKeyLen])
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("ecies: open: %w", err)
	}
	return plaintext, nil
}
