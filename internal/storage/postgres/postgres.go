package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"confsched/internal/config"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// SaveSnapshot stores one fetched feed document and returns its id.
func (s *Storage) SaveSnapshot(document []byte, etag string, fetchedAt time.Time) (string, error) {
	query := `
		INSERT INTO schedule_snapshots (id, fetched_at, etag, document)
		VALUES ($1, $2, $3, $4)`

	id := uuid.NewString()

	_, err := s.DB.Exec(query, id, fetchedAt, etag, document)
	if err != nil {
		return "", fmt.Errorf("failed to save schedule snapshot: %w", err)
	}

	return id, nil
}

// LatestSnapshot returns the most recently fetched feed document, for
// startup when the feed itself is unreachable.
func (s *Storage) LatestSnapshot() ([]byte, time.Time, error) {
	query := `
		SELECT document, fetched_at
		FROM schedule_snapshots
		ORDER BY fetched_at DESC
		LIMIT 1`

	var document []byte
	var fetchedAt time.Time

	err := s.DB.QueryRow(query).Scan(&document, &fetchedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, time.Time{}, fmt.Errorf("no schedule snapshot stored")
		}
		return nil, time.Time{}, fmt.Errorf("failed to load schedule snapshot: %w", err)
	}

	return document, fetchedAt, nil
}

// PruneSnapshots deletes all but the newest keep snapshots.
func (s *Storage) PruneSnapshots(keep int) (int64, error) {
	query := `
		DELETE FROM schedule_snapshots
		WHERE id NOT IN (
			SELECT id FROM schedule_snapshots
			ORDER BY fetched_at DESC
			LIMIT $1
		)`

	result, err := s.DB.Exec(query, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune schedule snapshots: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()

	return rowsAffected, nil
}
