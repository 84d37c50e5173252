package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/repository"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/utils"
)

var ErrGuestNotFound = errors.New("Data tamu tidak ditemukan")

type GuestService interface {
	Create(ctx context.Context, req model.CreateGuestRequest) (int64, error)
	GetAll(ctx context.Context, filter model.GuestFilter) ([]*model.Guest, error)
	GetByID(ctx context.Context, id int64) (*model.Guest, error)
	Update(ctx context.Context, id int64, req model.UpdateGuestRequest) (*model.Guest, error)
	Delete(ctx context.Context, id int64) error
	ExportPDF(ctx context.Context, filter model.GuestFilter) ([]byte, error)
	Badge(ctx context.Context, id int64) ([]byte, error)
}

type guestService struct {
	guestRepo repository.GuestRepository
}

func NewGuestService(guestRepo repository.GuestRepository) GuestService {
	return &guestService{guestRepo: guestRepo}
}

func (s *guestService) Create(ctx context.Context, req model.CreateGuestRequest) (int64, error) {
	id, err := s.guestRepo.Create(ctx, &req)
	if err != nil {
		return 0, fmt.Errorf("menyimpan data tamu: %w", err)
	}
	return id, nil
}

func (s *guestService) GetAll(ctx context.Context, filter model.GuestFilter) ([]*model.Guest, error) {
	return s.guestRepo.FindAll(ctx, filter)
}

func (s *guestService) GetByID(ctx context.Context, id int64) (*model.Guest, error) {
	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}
	return guest, nil
}

func (s *guestService) Update(ctx context.Context, id int64, req model.UpdateGuestRequest) (*model.Guest, error) {
	affected, err := s.guestRepo.Update(ctx, id, &req)
	if err != nil {
		return nil, fmt.Errorf("mengupdate data tamu: %w", err)
	}
	if affected == 0 {
		return nil, ErrGuestNotFound
	}

	// Baris bisa saja dihapus di antara UPDATE dan pembacaan ulang;
	// jangan pernah balas sukses dengan body kosong.
	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}
	return guest, nil
}

func (s *guestService) Delete(ctx context.Context, id int64) error {
	affected, err := s.guestRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("menghapus data tamu: %w", err)
	}
	if affected == 0 {
		return ErrGuestNotFound
	}
	return nil
}

func (s *guestService) ExportPDF(ctx context.Context, filter model.GuestFilter) ([]byte, error) {
	guests, err := s.guestRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return utils.GenerateGuestReportPDF(guests, time.Now())
}

// Badge membuat QR code PNG untuk kartu tamu. Isinya hanya referensi
// kunjungan, bukan token akses.
func (s *guestService) Badge(ctx context.Context, id int64) ([]byte, error) {
	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}

	content := fmt.Sprintf("TAMU:%d|%s|%s",
		guest.ID, guest.NamaLengkap, guest.TanggalKehadiran.Format("2006-01-02"))
	return utils.GenerateQRCodePNG(content, 256)
}
