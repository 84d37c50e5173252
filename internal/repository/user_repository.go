package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	query := `
		SELECT id, name, nip, username, password
		FROM users
		WHERE username = $1
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found, bukan error
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	query := `
		SELECT id, name, nip, username, password
		FROM users
		WHERE id = $1
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	query := `
		SELECT id, name, nip, username, password
		FROM users
		ORDER BY name ASC
	`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) (int64, error) {
	query := `
		UPDATE users
		SET name = :name, nip = :nip, username = :username, password = :password
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *userRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
