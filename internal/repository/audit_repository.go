package repository

import (
	"context"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/jmoiron/sqlx"
)

// AuditLogRepository menulis catatan login admin. Append-only: tidak ada
// operasi update atau delete.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AdminLoginLog) error
}

type auditLogRepository struct {
	db *sqlx.DB
}

func NewAuditLogRepository(db *sqlx.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *model.AdminLoginLog) error {
	query := `
		INSERT INTO log_aktivitas_admin (id, username_admin, waktu_login)
		VALUES (:id, :username_admin, :waktu_login)
	`
	_, err := r.db.NamedExecContext(ctx, query, entry)
	return err
}
