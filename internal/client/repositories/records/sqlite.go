package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/photokeeper/internal/client/models"
	"github.com/dmitrijs2005/photokeeper/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or
// *sql.Tx), so ReplaceAll can run transactionally when bound to a tx.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, recs []models.MediaRecord) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	for i := range recs {
		rec := &recs[i]

		tags, err := json.Marshal(rec.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags for %s: %w", rec.ID, err)
		}

		_, err = r.db.ExecContext(ctx, `
			INSERT INTO records (id, seq, original_filename, mime_type, storage_key, status, tags, phash, created_at, processed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, i, rec.OriginalFilename, rec.MimeType, rec.StorageKey, string(rec.Status), string(tags), rec.PHash, rec.CreatedAt, rec.ProcessedAt)
		if err != nil {
			return fmt.Errorf("failed to insert record %s: %w", rec.ID, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.MediaRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, original_filename, mime_type, storage_key, status, tags, phash, created_at, processed_at
		FROM records ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var result []models.MediaRecord
	for rows.Next() {
		var rec models.MediaRecord
		var status, tags string
		if err := rows.Scan(&rec.ID, &rec.OriginalFilename, &rec.MimeType, &rec.StorageKey,
			&status, &tags, &rec.PHash, &rec.CreatedAt, &rec.ProcessedAt); err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		rec.Status = models.Status(status)
		if err := json.Unmarshal([]byte(tags), &rec.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags for %s: %w", rec.ID, err)
		}
		result = append(result, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate record rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) CountPending(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE status IN (?, ?)`,
		string(models.StatusPending), string(models.StatusProcessing)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending records: %w", err)
	}
	return n, nil
}
