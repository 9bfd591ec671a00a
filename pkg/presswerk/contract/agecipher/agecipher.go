// Package agecipher is the reference encryption backend for the Presswerk
// storage contract, built on age X25519 recipients. The ciphertext is a
// complete age file (header plus payload) that can be written to disk as-is.
package agecipher

import (
	"bytes"
	"fmt"
	"io"

	"filippo.io/age"

	"github.com/presswerk/presswerk-go/pkg/presswerk/contract"
)

// New returns the age-backed cipher.
func New() contract.Cipher {
	return cipher{}
}

type cipher struct{}

func (cipher) Name() string { return "age-x25519" }

func (cipher) GenerateKeypair() (contract.Keypair, error) {
	id, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("agecipher: generate identity: %w", err)
	}
	return &keypair{identity: id}, nil
}

type keypair struct {
	identity *age.X25519Identity
}

func (k *keypair) Encrypt(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, k.identity.Recipient())
	if err != nil {
		return nil, fmt.Errorf("agecipher: encrypt: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("agecipher: encrypt: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("agecipher: encrypt: %w", err)
	}
	return buf.Bytes(), nil
}

func (k *keypair) Decrypt(ciphertext []byte) ([]byte, error) {
	r, err := age.Decrypt(bytes.NewReader(ciphertext), k.identity)
	if err != nil {
		return nil, fmt.Errorf("agecipher: decrypt: %w", err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("agecipher: decrypt: %w", err)
	}
	return plaintext, nil
}
