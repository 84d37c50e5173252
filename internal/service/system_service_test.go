package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSystemRepo struct {
	pingFn    func(ctx context.Context) error
	columnsFn func(ctx context.Context) ([]model.TableColumn, error)
}

func (f *fakeSystemRepo) Ping(ctx context.Context) error {
	return f.pingFn(ctx)
}

func (f *fakeSystemRepo) GuestTableColumns(ctx context.Context) ([]model.TableColumn, error) {
	return f.columnsFn(ctx)
}

func columnsNamed(names ...string) []model.TableColumn {
	cols := make([]model.TableColumn, 0, len(names))
	for _, name := range names {
		cols = append(cols, model.TableColumn{Field: name, Type: "text", Null: "YES"})
	}
	return cols
}

func TestStatusOnline(t *testing.T) {
	svc := NewSystemService(&fakeSystemRepo{
		pingFn: func(ctx context.Context) error { return nil },
	})

	report := svc.Status(context.Background())
	assert.Equal(t, "online", report.Status)
	assert.Equal(t, "running", report.Server)
	assert.Equal(t, "connected", report.Database)
	assert.Empty(t, report.ErrorMessage)
	assert.False(t, report.Timestamp.IsZero())
}

func TestStatusDegraded(t *testing.T) {
	svc := NewSystemService(&fakeSystemRepo{
		pingFn: func(ctx context.Context) error { return errors.New("dial tcp: connection refused") },
	})

	report := svc.Status(context.Background())
	assert.Equal(t, "degraded", report.Status)
	assert.Equal(t, "running", report.Server)
	assert.Equal(t, "disconnected", report.Database)
	assert.NotEmpty(t, report.ErrorMessage)
	assert.False(t, report.Timestamp.IsZero())
}

func TestGuestTableSchemaValid(t *testing.T) {
	svc := NewSystemService(&fakeSystemRepo{
		columnsFn: func(ctx context.Context) ([]model.TableColumn, error) {
			return columnsNamed(
				"id", "nama_lengkap", "jenis_kelamin", "email", "no_hp",
				"pekerjaan", "alamat", "keperluan", "staff", "dituju",
				"tanggal_kehadiran", "created_at",
			), nil
		},
	})

	report, err := svc.GuestTableSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tamu", report.Table)
	assert.Equal(t, "valid", report.Status)
	assert.Nil(t, report.MissingColumns)
	assert.Len(t, report.Schema, 12)
}

func TestGuestTableSchemaMissingColumn(t *testing.T) {
	svc := NewSystemService(&fakeSystemRepo{
		columnsFn: func(ctx context.Context) ([]model.TableColumn, error) {
			return columnsNamed(
				"id", "nama_lengkap", "jenis_kelamin", "no_hp",
				"pekerjaan", "alamat", "keperluan", "staff", "dituju",
				"tanggal_kehadiran",
			), nil
		},
	})

	report, err := svc.GuestTableSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "invalid", report.Status)
	assert.Equal(t, []string{"email"}, report.MissingColumns)
}

func TestGuestTableSchemaStoreError(t *testing.T) {
	svc := NewSystemService(&fakeSystemRepo{
		columnsFn: func(ctx context.Context) ([]model.TableColumn, error) {
			return nil, errors.New("permission denied")
		},
	})

	report, err := svc.GuestTableSchema(context.Background())
	assert.Nil(t, report)
	assert.Error(t, err)
}
