package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Request DTOs
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	NamaPengguna string `json:"nama_pengguna"`
	Password     string `json:"password"`
}

// Pesan error ini adalah kontrak API yang dikonsumsi frontend, jangan diubah.
// "tidak ditemukan" dan "salah" sengaja dibedakan mengikuti perilaku lama.
var (
	ErrUserNotFound       = errors.New("Username tidak ditemukan")
	ErrWrongPassword      = errors.New("Password salah")
	ErrAdminNotFound      = errors.New("Admin tidak ditemukan")
	ErrWrongAdminPassword = errors.New("Password admin salah")
)

const auditWriteTimeout = 5 * time.Second

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*model.UserResponse, error)
	AdminLogin(ctx context.Context, req AdminLoginRequest) (*model.AdminResponse, error)
	// DrainAuditLog menunggu penulisan audit yang masih berjalan selesai.
	// Dipanggil sekali saat shutdown.
	DrainAuditLog()
}

type authService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	auditRepo repository.AuditLogRepository
	auditWG   sync.WaitGroup
}

func NewAuthService(
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	auditRepo repository.AuditLogRepository,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		auditRepo: auditRepo,
	}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("mengambil data user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Verifikasi fail-closed: selain mismatch (hash rusak/kosong) harus jadi
	// server error, tidak boleh lolos sebagai login sukses.
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrWrongPassword
		}
		return nil, fmt.Errorf("verifikasi password: %w", err)
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) AdminLogin(ctx context.Context, req AdminLoginRequest) (*model.AdminResponse, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, req.NamaPengguna)
	if err != nil {
		return nil, fmt.Errorf("mengambil data admin: %w", err)
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrWrongAdminPassword
		}
		return nil, fmt.Errorf("verifikasi password admin: %w", err)
	}

	log.Printf("[ADMIN LOGIN] Login berhasil untuk admin: %s", admin.NamaPengguna)
	s.recordAdminLogin(admin.NamaPengguna)

	resp := admin.ToResponse()
	return &resp, nil
}

// recordAdminLogin menulis log aktivitas secara best-effort di goroutine
// terpisah. Kegagalan hanya dicatat, tidak pernah menggagalkan login, dan
// tidak ada jaminan exactly-once.
func (s *authService) recordAdminLogin(namaPengguna string) {
	s.auditWG.Add(1)
	go func() {
		defer s.auditWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()

		entry := &model.AdminLoginLog{
			ID:            uuid.New(),
			UsernameAdmin: namaPengguna,
			WaktuLogin:    time.Now(),
		}
		if err := s.auditRepo.Create(ctx, entry); err != nil {
			log.Printf("[ADMIN LOGGING] Gagal menyimpan log aktivitas admin: %v", err)
			return
		}
		log.Println("[ADMIN LOGGING] Log aktivitas admin disimpan")
	}()
}

func (s *authService) DrainAuditLog() {
	s.auditWG.Wait()
}
