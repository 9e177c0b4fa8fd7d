package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	key1 := DeriveKey([]byte("secret-password"), []byte("fixed-salt"))
	key2 := DeriveKey([]byte("secret-password"), []byte("fixed-salt"))

	require.True(t, bytes.Equal(key1, key2))
	assert.Len(t, key1, KeySize)
	assert.Equal(t, "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39", hex.EncodeToString(key1))
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	key1 := DeriveKey([]byte("secret-password"), []byte("salt-1"))
	key2 := DeriveKey([]byte("secret-password"), []byte("salt-2"))

	assert.False(t, bytes.Equal(key1, key2))
}

type creds struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("app"), []byte("salt"))
	in := creds{Email: "a@example.com", Password: "pw"}

	ct, nonce, err := Seal(in, key)
	require.NoError(t, err)
	assert.NotContains(t, string(ct), "a@example.com")

	var out creds
	require.NoError(t, Open(ct, nonce, key, &out))
	assert.Equal(t, in, out)
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	key := DeriveKey([]byte("app"), []byte("salt"))

	_, n1, err := Seal("x", key)
	require.NoError(t, err)
	_, n2, err := Seal("x", key)
	require.NoError(t, err)

	assert.NotEqual(t, n1, n2)
}

func TestOpen_WrongKey(t *testing.T) {
	ct, nonce, err := Seal("x", DeriveKey([]byte("a"), []byte("salt")))
	require.NoError(t, err)

	var out string
	err = Open(ct, nonce, DeriveKey([]byte("b"), []byte("salt")), &out)
	assert.ErrorIs(t, err, ErrOpen)
}

func TestOpen_BadNonce(t *testing.T) {
	key := DeriveKey([]byte("a"), []byte("salt"))
	ct, _, err := Seal("x", key)
	require.NoError(t, err)

	var out string
	assert.ErrorIs(t, Open(ct, []byte{1, 2, 3}, key, &out), ErrOpen)
}

func TestSeal_BadKeyLength(t *testing.T) {
	_, _, err := Seal("x", []byte("short"))
	assert.Error(t, err)
}
