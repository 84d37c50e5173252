package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/jmoiron/sqlx"
)

type AdminRepository interface {
	FindByUsername(ctx context.Context, namaPengguna string) (*model.Admin, error)
}

type adminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByUsername(ctx context.Context, namaPengguna string) (*model.Admin, error) {
	var admin model.Admin
	query := `
		SELECT id, nama_pengguna, password
		FROM admins
		WHERE nama_pengguna = $1
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &admin, query, namaPengguna)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
