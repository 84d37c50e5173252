package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/jmoiron/sqlx"
)

type GuestRepository interface {
	Create(ctx context.Context, req *model.CreateGuestRequest) (int64, error)
	FindAll(ctx context.Context, filter model.GuestFilter) ([]*model.Guest, error)
	FindByID(ctx context.Context, id int64) (*model.Guest, error)
	Update(ctx context.Context, id int64, req *model.UpdateGuestRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type guestRepository struct {
	db *sqlx.DB
}

func NewGuestRepository(db *sqlx.DB) GuestRepository {
	return &guestRepository{db: db}
}

// Create selalu mengirim baris dengan arity tetap: field opsional yang tidak
// diisi masuk sebagai NULL eksplisit, bukan dihilangkan dari statement.
func (r *guestRepository) Create(ctx context.Context, req *model.CreateGuestRequest) (int64, error) {
	query := `
		INSERT INTO tamu
		(nama_lengkap, jenis_kelamin, email, no_hp, pekerjaan, alamat, keperluan, staff, dituju, tanggal_kehadiran)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		req.NamaLengkap, req.JenisKelamin, req.Email, req.NoHP, req.Pekerjaan,
		req.Alamat, req.Keperluan, req.Staff, req.Dituju, req.TanggalKehadiran,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *guestRepository) FindAll(ctx context.Context, filter model.GuestFilter) ([]*model.Guest, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(nama_lengkap ILIKE $%d OR dituju ILIKE $%d)", argIdx, argIdx+1))
		search := "%" + filter.Search + "%"
		args = append(args, search, search)
		argIdx += 2
	}

	if filter.Tanggal != "" {
		conditions = append(conditions, fmt.Sprintf("tanggal_kehadiran = $%d", argIdx))
		args = append(args, filter.Tanggal)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	query := fmt.Sprintf(`
		SELECT id, nama_lengkap, jenis_kelamin, email, no_hp, pekerjaan,
		       alamat, keperluan, staff, dituju, tanggal_kehadiran, created_at
		FROM tamu
		WHERE %s
		ORDER BY tanggal_kehadiran DESC, id DESC
	`, where)

	var guests []*model.Guest
	if err := r.db.SelectContext(ctx, &guests, query, args...); err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *guestRepository) FindByID(ctx context.Context, id int64) (*model.Guest, error) {
	var guest model.Guest
	query := `
		SELECT id, nama_lengkap, jenis_kelamin, email, no_hp, pekerjaan,
		       alamat, keperluan, staff, dituju, tanggal_kehadiran, created_at
		FROM tamu
		WHERE id = $1
	`
	err := r.db.GetContext(ctx, &guest, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) Update(ctx context.Context, id int64, req *model.UpdateGuestRequest) (int64, error) {
	query := `
		UPDATE tamu
		SET nama_lengkap = $1, jenis_kelamin = $2, email = $3, no_hp = $4,
		    pekerjaan = $5, alamat = $6, keperluan = $7, staff = $8,
		    dituju = $9, tanggal_kehadiran = $10
		WHERE id = $11
	`
	res, err := r.db.ExecContext(ctx, query,
		req.NamaLengkap, req.JenisKelamin, req.Email, req.NoHP, req.Pekerjaan,
		req.Alamat, req.Keperluan, req.Staff, req.Dituju, req.TanggalKehadiran,
		id,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *guestRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tamu WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
