package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/ecorewards/internal/client/models"
	"github.com/dmitrijs2005/ecorewards/internal/client/repositories/settings"
	"github.com/dmitrijs2005/ecorewards/internal/common"
	"github.com/dmitrijs2005/ecorewards/internal/cryptox"
	"github.com/dmitrijs2005/ecorewards/internal/dbx"
)

const saltSize = 16

// ErrSessionCorrupt is returned by Load when the stored session cannot be
// decrypted or decoded.
var ErrSessionCorrupt = errors.New("stored session is corrupt")

// SessionStore keeps the logged-in credentials in the local settings table,
// sealed with a key derived from a per-install salt.
type SessionStore struct {
	db     *sql.DB
	secret []byte

	mu      sync.Mutex
	keySalt []byte
	key     []byte
}

// NewSessionStore binds a store to db. secret is mixed with the device salt
// when deriving the sealing key.
func NewSessionStore(db *sql.DB, secret []byte) *SessionStore {
	return &SessionStore{db: db, secret: secret}
}

// Load returns the stored credentials, or (nil, nil) when none are stored.
func (s *SessionStore) Load(ctx context.Context) (*models.Credentials, error) {
	repo := settings.NewSQLiteRepository(s.db)

	blob, err := repo.Get(ctx, common.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if blob == nil {
		return nil, nil
	}

	salt, err := repo.Get(ctx, common.DeviceSaltKey)
	if err != nil {
		return nil, fmt.Errorf("load device salt: %w", err)
	}
	if len(salt) == 0 {
		return nil, ErrSessionCorrupt
	}

	if len(blob) < cryptox.NonceSize {
		return nil, ErrSessionCorrupt
	}

	var creds models.Credentials
	if err := cryptox.Open(blob[cryptox.NonceSize:], blob[:cryptox.NonceSize], s.keyFor(salt), &creds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCorrupt, err)
	}
	return &creds, nil
}

// Save seals c and upserts it, creating the device salt on first use.
func (s *SessionStore) Save(ctx context.Context, c models.Credentials) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := settings.NewSQLiteRepository(tx)

		salt, err := repo.Get(ctx, common.DeviceSaltKey)
		if err != nil {
			return fmt.Errorf("load device salt: %w", err)
		}
		if len(salt) == 0 {
			salt = common.GenerateRandByteArray(saltSize)
			if err := repo.Set(ctx, common.DeviceSaltKey, salt); err != nil {
				return fmt.Errorf("store device salt: %w", err)
			}
		}

		ciphertext, nonce, err := cryptox.Seal(c, s.keyFor(salt))
		if err != nil {
			return fmt.Errorf("seal session: %w", err)
		}

		blob := make([]byte, 0, len(nonce)+len(ciphertext))
		blob = append(blob, nonce...)
		blob = append(blob, ciphertext...)

		if err := repo.Set(ctx, common.SessionKey, blob); err != nil {
			return fmt.Errorf("store session: %w", err)
		}
		return nil
	})
}

// Clear removes the stored session. The device salt is kept.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := settings.NewSQLiteRepository(s.db).Delete(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// keyFor derives the sealing key for salt. Argon2 is expensive, so the last
// key is cached.
func (s *SessionStore) keyFor(salt []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil && string(s.keySalt) == string(salt) {
		return s.key
	}
	s.key = cryptox.DeriveKey(s.secret, salt)
	s.keySalt = append([]byte(nil), salt...)
	return s.key
}
