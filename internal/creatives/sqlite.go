package creatives

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adcreativex/adcreativex/internal/common"
	"github.com/adcreativex/adcreativex/internal/dbx"
	"github.com/adcreativex/adcreativex/internal/models"
)

// SQLiteRepository implements Repository over a DBTX.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *models.Creative) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO creatives (id, user_id, title, format, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.UserID, c.Title, c.Format, c.Status, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create creative[%s]: %w", c.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.Creative, error) {
	var c models.Creative
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, format, status, created_at
		FROM creatives WHERE id = ?
	`, id).Scan(&c.ID, &c.UserID, &c.Title, &c.Format, &c.Status, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get creative[%s]: %w", id, err)
	}
	return &c, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]models.Creative, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, format, status, created_at
		FROM creatives WHERE user_id = ? ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list creatives: %w", err)
	}
	defer rows.Close()

	var result []models.Creative
	for rows.Next() {
		var c models.Creative
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.Format, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan creative row: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate creative rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id string, status models.CreativeStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE creatives SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update creative[%s]: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update creative[%s]: %w", id, err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
