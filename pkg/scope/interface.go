package scope

import (
	"crypto/sha256"
	"io"
	"time"

	"ministry-srv/internal/model"

	"golang.org/x/crypto/hkdf"
)

// Manager signs and verifies session credentials. Verification is
// signature and expiry only; it never consults the store.
type Manager interface {
	// CreateToken signs cred and returns the token together with cred
	// stamped with its issue and expiry times.
	CreateToken(cred model.Credential) (string, model.Credential, error)
	Verify(token string) (model.Credential, error)
}

// New derives the HMAC key from cfg.SecretKey and returns a Manager.
func New(cfg Config) (Manager, error) {
	key, err := DeriveKey(cfg.SecretKey, keyInfo)
	if err != nil {
		return nil, err
	}

	m := &implManager{
		key:    key,
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		clock:  cfg.Clock,
	}
	if m.ttl <= 0 {
		m.ttl = model.SessionTTL
	}
	if m.clock == nil {
		m.clock = time.Now
	}
	return m, nil
}

// DeriveKey expands secret into an independent 32-byte key for the purpose
// named by info. The same secret yields unrelated keys for different infos.
func DeriveKey(secret, info string) ([]byte, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, err
	}
	return key, nil
}
