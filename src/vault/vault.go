package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"github.com/sirupsen/logrus"
)

const keySize = 32

// Vault encrypts and decrypts broker credentials at rest with a single
// process-wide AES-256-GCM key. Construct it once at startup and inject it
// into every consumer; the key is immutable afterwards so concurrent use is
// safe.
type Vault struct {
	aead   cipher.AEAD
	logger *logrus.Logger
}

// New builds a vault from a base64-encoded 32-byte key. A missing or malformed
// key never fails construction: the vault falls back to a freshly generated
// ephemeral key and logs the hazard, since anything encrypted under it becomes
// unrecoverable once the process exits.
func New(encodedKey string, logger *logrus.Logger) *Vault {
	key, err := decodeKey(encodedKey)
	if err != nil {
		if encodedKey == "" {
			logger.Warn("no encryption key configured, using a generated key; stored credentials will not survive a restart")
		} else {
			logger.WithError(err).Warn("configured encryption key is invalid, falling back to a generated key")
		}
		key = randomBytes(keySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		// Unreachable with a 32-byte key; keep the fail-soft contract anyway.
		block, _ = aes.NewCipher(randomBytes(keySize))
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		panic(err)
	}

	return &Vault{aead: aead, logger: logger}
}

// Encrypt seals a plaintext under the vault key. The empty string passes
// through untouched. Each call draws a fresh nonce, so encrypting the same
// plaintext twice yields different ciphertexts that both decrypt to it.
func (v *Vault) Encrypt(plaintext string) string {
	if plaintext == "" {
		return ""
	}

	nonce := randomBytes(v.aead.NonceSize())
	sealed := v.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed)
}

// Decrypt opens a ciphertext produced by Encrypt. The empty string passes
// through untouched. Any failure, bad encoding, truncated input, tampered
// data or a rotated key, is logged and mapped to the empty string; callers
// treat that as "credential unusable" rather than an error.
func (v *Vault) Decrypt(ciphertext string) string {
	if ciphertext == "" {
		return ""
	}

	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		v.logger.WithError(err).Warn("failed to decode stored credential")
		return ""
	}
	if len(raw) < v.aead.NonceSize() {
		v.logger.Warn("stored credential is too short to contain a nonce")
		return ""
	}

	nonce, sealed := raw[:v.aead.NonceSize()], raw[v.aead.NonceSize():]
	plaintext, err := v.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		v.logger.WithError(err).Warn("failed to decrypt stored credential")
		return ""
	}
	return string(plaintext)
}

// GenerateKey returns a new base64-encoded key suitable for ENCRYPTION_KEY.
func GenerateKey() string {
	return base64.StdEncoding.EncodeToString(randomBytes(keySize))
}

func decodeKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, errors.New("empty key")
	}
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	for _, enc := range encodings {
		key, err := enc.DecodeString(encoded)
		if err == nil {
			if len(key) != keySize {
				return nil, errors.New("key must decode to 32 bytes")
			}
			return key, nil
		}
	}
	return nil, errors.New("key is not valid base64")
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}
