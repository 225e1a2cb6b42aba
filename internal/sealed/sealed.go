// Package sealed encrypts small records for storage at rest. Values are
// CBOR-encoded and then encrypted to a single age X25519 recipient derived
// from the service's identity, so only the holder of that identity can read
// them back.
package sealed

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"filippo.io/age"
	"github.com/fxamacker/cbor/v2"
)

type Sealer struct {
	identity  *age.X25519Identity
	recipient *age.X25519Recipient
}

// New parses an AGE-SECRET-KEY-1... identity.
func New(identity string) (*Sealer, error) {
	id, err := age.ParseX25519Identity(strings.TrimSpace(identity))
	if err != nil {
		return nil, fmt.Errorf("parsing age identity: %w", err)
	}

	return &Sealer{identity: id, recipient: id.Recipient()}, nil
}

// GenerateIdentity returns a fresh identity and its public recipient string.
func GenerateIdentity() (identity, recipient string, err error) {
	id, err := age.GenerateX25519Identity()
	if err != nil {
		return "", "", fmt.Errorf("generating age identity: %w", err)
	}

	return id.String(), id.Recipient().String(), nil
}

func (s *Sealer) Recipient() string {
	return s.recipient.String()
}

func (s *Sealer) Seal(v any) ([]byte, error) {
	plaintext, err := cbor.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, s.recipient)
	if err != nil {
		return nil, fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("writing plaintext: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *Sealer) Open(ciphertext []byte, v any) error {
	r, err := age.Decrypt(bytes.NewReader(ciphertext), s.identity)
	if err != nil {
		return fmt.Errorf("decrypting: %w", err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading plaintext: %w", err)
	}

	if err := cbor.Unmarshal(plaintext, v); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}

	return nil
}
