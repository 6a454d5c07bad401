package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/plotline/plotline/internal/client/models"
	"github.com/plotline/plotline/internal/dbx"
)

// SQLiteStore persists the session in a local key/value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ctx context.Context, q dbx.DBTX, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete session[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	v, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *SQLiteStore) Current(ctx context.Context) (*models.User, error) {
	v, err := s.get(ctx, s.db, keyUser)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(v, &u); err != nil {
		return nil, fmt.Errorf("failed to decode stored user: %w", err)
	}
	return &u, nil
}

// Set writes identity and token in one transaction so a crash can never
// leave a token without its user or vice versa.
func (s *SQLiteStore) Set(ctx context.Context, user *models.User, token string) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyUser, encoded); err != nil {
			return err
		}
		return s.set(ctx, tx, keyToken, []byte(token))
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.delete(ctx, tx, keyUser); err != nil {
			return err
		}
		return s.delete(ctx, tx, keyToken)
	})
}

func (s *SQLiteStore) AdminToken(ctx context.Context) (string, error) {
	v, err := s.get(ctx, s.db, keyAdminToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *SQLiteStore) SetAdminToken(ctx context.Context, token string) error {
	return s.set(ctx, s.db, keyAdminToken, []byte(token))
}

func (s *SQLiteStore) ClearAdmin(ctx context.Context) error {
	return s.delete(ctx, s.db, keyAdminToken)
}
