package service

import (
	"context"
	"time"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/repository"
)

// requiredGuestColumns adalah daftar kolom tamu yang wajib ada; frontend
// mengandalkan diff ini untuk mendeteksi skema yang belum dimigrasi.
var requiredGuestColumns = []string{
	"id", "nama_lengkap", "jenis_kelamin", "email", "no_hp",
	"pekerjaan", "alamat", "keperluan", "staff", "dituju", "tanggal_kehadiran",
}

type SystemService interface {
	// Status tidak pernah mengembalikan error: kegagalan store dilaporkan
	// di dalam payload sebagai degraded.
	Status(ctx context.Context) *model.StatusReport
	GuestTableSchema(ctx context.Context) (*model.SchemaReport, error)
}

type systemService struct {
	systemRepo repository.SystemRepository
}

func NewSystemService(systemRepo repository.SystemRepository) SystemService {
	return &systemService{systemRepo: systemRepo}
}

func (s *systemService) Status(ctx context.Context) *model.StatusReport {
	report := &model.StatusReport{
		Server:    "running",
		Timestamp: time.Now(),
	}

	if err := s.systemRepo.Ping(ctx); err != nil {
		report.Status = "degraded"
		report.Database = "disconnected"
		report.ErrorMessage = err.Error()
		return report
	}

	report.Status = "online"
	report.Database = "connected"
	return report
}

func (s *systemService) GuestTableSchema(ctx context.Context) (*model.SchemaReport, error) {
	columns, err := s.systemRepo.GuestTableColumns(ctx)
	if err != nil {
		return nil, err
	}

	observed := make(map[string]bool, len(columns))
	for _, col := range columns {
		observed[col.Field] = true
	}

	var missing []string
	for _, required := range requiredGuestColumns {
		if !observed[required] {
			missing = append(missing, required)
		}
	}

	report := &model.SchemaReport{
		Table:          "tamu",
		Schema:         columns,
		Status:         "valid",
		MissingColumns: missing, // nil saat lengkap -> JSON null
	}
	if len(missing) > 0 {
		report.Status = "invalid"
	}
	return report, nil
}
