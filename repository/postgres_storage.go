// file: repository/postgres_storage.go

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"ged-apae-console/logger"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

// PostgresStorage keeps items in the session_items table created by the
// db migrations. Several console instances can share one session this way.
type PostgresStorage struct {
	DB *sql.DB
}

// NewPostgresStorage creates a new PostgresStorage.
func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{DB: db}
}

func (r *PostgresStorage) GetItem(ctx context.Context, key string) (string, error) {
	var value string
	query := `SELECT item_value FROM session_items WHERE item_key = $1`
	err := r.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrItemNotFound
		}
		logger.Log.WithError(err).WithField("key", key).Error("Failed to execute get session item query")
		return "", err
	}
	return value, nil
}

// SetItems upserts every item in a single transaction.
func (r *PostgresStorage) SetItems(ctx context.Context, items map[string]string) error {
	log := logger.Log.WithFields(logrus.Fields{
		"items": len(items),
	})

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.WithError(err).Error("Failed to begin session items transaction")
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO session_items (item_key, item_value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (item_key) DO UPDATE SET item_value = EXCLUDED.item_value, updated_at = NOW()`
	for _, key := range slices.Sorted(maps.Keys(items)) {
		if _, err := tx.ExecContext(ctx, query, key, items[key]); err != nil {
			log.WithError(err).WithField("key", key).Error("Failed to execute upsert session item query")
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.WithError(err).Error("Failed to commit session items transaction")
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *PostgresStorage) RemoveItems(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `DELETE FROM session_items WHERE item_key = $1`
	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, query, key); err != nil {
			logger.Log.WithError(err).WithField("key", key).Error("Failed to execute delete session item query")
			return err
		}
	}
	return tx.Commit()
}
