package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserRecordNotFound = errors.New("User tidak ditemukan")

type UpdateUserRequest struct {
	Name     string `json:"name"`
	NIP      string `json:"nip"`
	Username string `json:"username"`
	Password string `json:"password"` // opsional, kosong berarti tidak diganti
}

type UserService interface {
	GetAll(ctx context.Context) ([]model.UserResponse, error)
	GetByID(ctx context.Context, id int64) (*model.UserResponse, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*model.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAll(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse())
	}
	return responses, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserRecordNotFound
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserRecordNotFound
	}

	user.Name = req.Name
	user.NIP = req.NIP
	user.Username = req.Username

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	affected, err := s.userRepo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("mengupdate data user: %w", err)
	}
	if affected == 0 {
		return nil, ErrUserRecordNotFound
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	affected, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("menghapus data user: %w", err)
	}
	if affected == 0 {
		return ErrUserRecordNotFound
	}
	return nil
}
