package sealed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	AccessToken string    `cbor:"1,keyasint"`
	Expiry      time.Time `cbor:"2,keyasint"`
}

func newTestSealer(t *testing.T) *Sealer {
	t.Helper()
	identity, _, err := GenerateIdentity()
	require.NoError(t, err)

	s, err := New(identity)
	require.NoError(t, err)
	return s
}

func TestSealer_SealOpen(t *testing.T) {
	s := newTestSealer(t)
	in := payload{AccessToken: "ya29.token", Expiry: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}

	ciphertext, err := s.Seal(in)
	require.NoError(t, err)
	assert.NotContains(t, string(ciphertext), "ya29.token")

	var out payload
	require.NoError(t, s.Open(ciphertext, &out))
	assert.Equal(t, in.AccessToken, out.AccessToken)
	assert.True(t, in.Expiry.Equal(out.Expiry))
}

func TestSealer_OpenWithOtherIdentity(t *testing.T) {
	ciphertext, err := newTestSealer(t).Seal(payload{AccessToken: "x"})
	require.NoError(t, err)

	var out payload
	err = newTestSealer(t).Open(ciphertext, &out)

	require.Error(t, err)
}

func TestNew_InvalidIdentity(t *testing.T) {
	_, err := New("not-an-identity")

	require.Error(t, err)
}

func TestGenerateIdentity_RecipientMatches(t *testing.T) {
	identity, recipient, err := GenerateIdentity()
	require.NoError(t, err)

	s, err := New(identity)
	require.NoError(t, err)
	assert.Equal(t, recipient, s.Recipient())
}
