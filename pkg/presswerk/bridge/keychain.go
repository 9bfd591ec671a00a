package bridge

import (
	"bytes"
	"fmt"
	"sync"
)

// Keychain is secure key/value storage in the platform keystore. Load
// reports found=false for absent keys rather than an error; storing under an
// existing key replaces the previous value.
type Keychain interface {
	StoreSecret(key string, value []byte) error
	LoadSecret(key string) (value []byte, found bool, err error)
	DeleteSecret(key string) error
}

// VerifyKeychain runs the secret-store acceptance checks against a concrete
// backend: store-then-load returns the value, delete-then-load reports
// absent, and a second store under the same key wins. The checks are
// independent of the backing store.
func VerifyKeychain(k Keychain) error {
	const key = "presswerk.contract.probe"

	// store(k, v) then load(k) returns v.
	v1 := []byte("first")
	if err := k.StoreSecret(key, v1); err != nil {
		return fmt.Errorf("bridge: keychain store: %w", err)
	}
	got, found, err := k.LoadSecret(key)
	if err != nil {
		return fmt.Errorf("bridge: keychain load: %w", err)
	}
	if !found || !bytes.Equal(got, v1) {
		return fmt.Errorf("bridge: keychain store/load mismatch")
	}

	// Last write wins.
	v2 := []byte("second")
	if err := k.StoreSecret(key, v2); err != nil {
		return fmt.Errorf("bridge: keychain overwrite: %w", err)
	}
	got, found, err = k.LoadSecret(key)
	if err != nil {
		return fmt.Errorf("bridge: keychain load after overwrite: %w", err)
	}
	if !found || !bytes.Equal(got, v2) {
		return fmt.Errorf("bridge: keychain overwrite is not last-write-wins")
	}

	// delete(k) then load(k) reports absent.
	if err := k.DeleteSecret(key); err != nil {
		return fmt.Errorf("bridge: keychain delete: %w", err)
	}
	if _, found, err = k.LoadSecret(key); err != nil {
		return fmt.Errorf("bridge: keychain load after delete: %w", err)
	}
	if found {
		return fmt.Errorf("bridge: keychain returned a deleted secret")
	}
	return nil
}

// MemKeychain is an in-memory Keychain used on desktop builds and in tests.
// It is safe for concurrent use.
type MemKeychain struct {
	mu      sync.Mutex
	secrets map[string][]byte
}

// NewMemKeychain returns an empty in-memory keychain.
func NewMemKeychain() *MemKeychain {
	return &MemKeychain{secrets: make(map[string][]byte)}
}

// StoreSecret stores a copy of value under key, replacing any previous
// value.
func (m *MemKeychain) StoreSecret(key string, value []byte) error {
	m.mu.Lock()
	m.secrets[key] = bytes.Clone(value)
	m.mu.Unlock()
	return nil
}

// LoadSecret returns a copy of the stored value, or found=false.
func (m *MemKeychain) LoadSecret(key string) ([]byte, bool, error) {
	m.mu.Lock()
	v, ok := m.secrets[key]
	m.mu.Unlock()
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

// DeleteSecret removes key. Deleting an absent key is not an error.
func (m *MemKeychain) DeleteSecret(key string) error {
	m.mu.Lock()
	delete(m.secrets, key)
	m.mu.Unlock()
	return nil
}
