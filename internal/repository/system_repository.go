package repository

import (
	"context"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/jmoiron/sqlx"
)

type SystemRepository interface {
	Ping(ctx context.Context) error
	GuestTableColumns(ctx context.Context) ([]model.TableColumn, error)
}

type systemRepository struct {
	db *sqlx.DB
}

func NewSystemRepository(db *sqlx.DB) SystemRepository {
	return &systemRepository{db: db}
}

func (r *systemRepository) Ping(ctx context.Context) error {
	var result int
	return r.db.QueryRowContext(ctx, "SELECT 1 AS result").Scan(&result)
}

func (r *systemRepository) GuestTableColumns(ctx context.Context) ([]model.TableColumn, error) {
	var columns []model.TableColumn
	query := `
		SELECT column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = 'tamu'
		ORDER BY ordinal_position
	`
	if err := r.db.SelectContext(ctx, &columns, query); err != nil {
		return nil, err
	}
	return columns, nil
}
