package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"ecitoyen/internal/infrastructure/migration"
	"ecitoyen/internal/storage/kv"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Storage - хранилище ключ/значение в файле SQLite
type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

func New(path string, log *slog.Logger) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории данных: %w", err)
	}

	log = log.With("component", "sqlite_storage")

	mg := migration.NewMigration(migrations, "migrations", "sqlite3://"+path, nil, log)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("ошибка миграции базы данных: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка подключения к базе данных: %w", err)
	}

	log.Debug("storage opened", "path", path)

	return &Storage{db: db, log: log}, nil
}

func (s *Storage) Load(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ошибка чтения ключа %s: %w", key, err)
	}
	return value, true, nil
}

const upsertQuery = `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`

func (s *Storage) Save(key string, value []byte) error {
	if _, err := s.db.Exec(upsertQuery, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("ошибка сохранения ключа %s: %w", key, err)
	}
	return nil
}

// SaveBatch записывает все ключи в одной транзакции.
func (s *Storage) SaveBatch(entries []kv.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, e := range entries {
		if e.Delete {
			if _, err := tx.Exec(`DELETE FROM kv WHERE key = ?`, e.Key); err != nil {
				return fmt.Errorf("ошибка удаления ключа %s: %w", e.Key, err)
			}
			continue
		}
		if _, err := tx.Exec(upsertQuery, e.Key, e.Value, now); err != nil {
			return fmt.Errorf("ошибка сохранения ключа %s: %w", e.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}
	return nil
}

func (s *Storage) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("ошибка удаления ключа %s: %w", key, err)
	}
	return nil
}

func (s *Storage) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM kv`); err != nil {
		return fmt.Errorf("ошибка очистки хранилища: %w", err)
	}
	return nil
}

func (s *Storage) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения ключей: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("ошибка чтения ключа: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *Storage) Close() error {
	return s.db.Close()
}
