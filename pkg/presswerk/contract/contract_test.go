package contract_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/presswerk/presswerk-go/pkg/presswerk/contract"
	"github.com/presswerk/presswerk-go/pkg/presswerk/contract/agecipher"
	"github.com/presswerk/presswerk-go/pkg/presswerk/contract/ecies"
)

func backends() []contract.Cipher {
	return []contract.Cipher{agecipher.New(), ecies.New()}
}

func TestAcceptanceSuite(t *testing.T) {
	for _, c := range backends() {
		t.Run(c.Name(), func(t *testing.T) {
			require.NoError(t, contract.VerifyRoundTrip(c))
			require.NoError(t, contract.VerifyNonEmptyCiphertext(c))
			require.NoError(t, contract.VerifyKeySeparation(c))
			require.NoError(t, contract.VerifyWrongKeyFails(c))
		})
	}
}

func TestHashBackends(t *testing.T) {
	for _, h := range []contract.Hash{contract.SHA256(), contract.BLAKE3()} {
		t.Run(h.Name(), func(t *testing.T) {
			require.NoError(t, contract.VerifyHash(h))
		})
	}
}

func TestDesignatedHashPinned(t *testing.T) {
	sum := contract.SHA256().Sum([]byte("hello"))
	require.Len(t, sum, contract.HashSize)
	require.Equal(t, byte(0x2c), sum[0], "SHA-256(hello) must start with 0x2c")
}

func TestVerifyRunsEverything(t *testing.T) {
	for _, c := range backends() {
		require.NoError(t, contract.Verify(c, contract.SHA256()))
	}
}

// identityCipher "encrypts" by copying, so any keypair decrypts anything.
// The suite must flag it as a contract violation.
type identityCipher struct{}

func (identityCipher) Name() string { return "identity" }

func (identityCipher) GenerateKeypair() (contract.Keypair, error) {
	return identityKeypair{}, nil
}

type identityKeypair struct{}

func (identityKeypair) Encrypt(p []byte) ([]byte, error) {
	return bytes.Clone(p), nil
}

func (identityKeypair) Decrypt(ct []byte) ([]byte, error) {
	return bytes.Clone(ct), nil
}

func TestSuiteRejectsBrokenBackend(t *testing.T) {
	c := identityCipher{}
	require.NoError(t, contract.VerifyRoundTrip(c), "identity survives round trips")

	err := contract.VerifyWrongKeyFails(c)
	require.ErrorIs(t, err, contract.ErrContractViolated)

	err = contract.VerifyKeySeparation(c)
	require.ErrorIs(t, err, contract.ErrContractViolated)
}

// truncatedHash returns 16 bytes; the suite must reject the size.
type truncatedHash struct{}

func (truncatedHash) Name() string { return "truncated" }

func (truncatedHash) Sum(data []byte) []byte {
	full := contract.SHA256().Sum(data)
	return full[:16]
}

func TestSuiteRejectsWrongHashSize(t *testing.T) {
	require.ErrorIs(t, contract.VerifyHash(truncatedHash{}), contract.ErrContractViolated)
}
