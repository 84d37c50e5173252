package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGuestService struct {
	createFn    func(ctx context.Context, req model.CreateGuestRequest) (int64, error)
	getAllFn    func(ctx context.Context, filter model.GuestFilter) ([]*model.Guest, error)
	getByIDFn   func(ctx context.Context, id int64) (*model.Guest, error)
	updateFn    func(ctx context.Context, id int64, req model.UpdateGuestRequest) (*model.Guest, error)
	deleteFn    func(ctx context.Context, id int64) error
	exportFn    func(ctx context.Context, filter model.GuestFilter) ([]byte, error)
	badgeFn     func(ctx context.Context, id int64) ([]byte, error)
	createCalls int
}

func (f *fakeGuestService) Create(ctx context.Context, req model.CreateGuestRequest) (int64, error) {
	f.createCalls++
	return f.createFn(ctx, req)
}
func (f *fakeGuestService) GetAll(ctx context.Context, filter model.GuestFilter) ([]*model.Guest, error) {
	return f.getAllFn(ctx, filter)
}
func (f *fakeGuestService) GetByID(ctx context.Context, id int64) (*model.Guest, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeGuestService) Update(ctx context.Context, id int64, req model.UpdateGuestRequest) (*model.Guest, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeGuestService) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeGuestService) ExportPDF(ctx context.Context, filter model.GuestFilter) ([]byte, error) {
	return f.exportFn(ctx, filter)
}
func (f *fakeGuestService) Badge(ctx context.Context, id int64) ([]byte, error) {
	return f.badgeFn(ctx, id)
}

func requestWithID(method, path, id, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGuestCreateMissingFieldsSkipsStore(t *testing.T) {
	svc := &fakeGuestService{}
	h := NewGuestHandler(svc)

	payloads := []string{
		`{}`,
		`{"nama_lengkap":"Siti"}`,
		`{"nama_lengkap":"Siti","jenis_kelamin":"P"}`,
		`{"jenis_kelamin":"P","tanggal_kehadiran":"2026-08-28"}`,
		`{"nama_lengkap":"Siti","tanggal_kehadiran":"2026-08-28"}`,
		`{"nama_lengkap":"","jenis_kelamin":"P","tanggal_kehadiran":"2026-08-28"}`,
	}

	for _, payload := range payloads {
		rec := postJSON(h.Create, "/api/tamu", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "payload: %s", payload)
		assert.Equal(t, "Data tamu wajib (nama, jenis kelamin, tanggal hadir) tidak lengkap", errorMessage(t, rec))
	}

	assert.Zero(t, svc.createCalls)
}

func TestGuestCreateMinimalFields(t *testing.T) {
	var captured model.CreateGuestRequest
	svc := &fakeGuestService{
		createFn: func(ctx context.Context, req model.CreateGuestRequest) (int64, error) {
			captured = req
			return 123, nil
		},
	}
	h := NewGuestHandler(svc)

	rec := postJSON(h.Create, "/api/tamu",
		`{"nama_lengkap":"Siti Aminah","jenis_kelamin":"P","tanggal_kehadiran":"2026-08-28"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Data tamu berhasil disimpan", body.Message)
	assert.Equal(t, int64(123), body.ID)

	// Field opsional yang tidak dikirim tetap nil sampai ke service
	assert.Nil(t, captured.Email)
	assert.Nil(t, captured.NoHP)
	assert.Nil(t, captured.Dituju)
}

func TestGuestCreateStoreFailure(t *testing.T) {
	svc := &fakeGuestService{
		createFn: func(ctx context.Context, req model.CreateGuestRequest) (int64, error) {
			return 0, assert.AnError
		},
	}
	h := NewGuestHandler(svc)

	rec := postJSON(h.Create, "/api/tamu",
		`{"nama_lengkap":"Siti","jenis_kelamin":"P","tanggal_kehadiran":"2026-08-28"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Gagal menyimpan data tamu ke database", errorMessage(t, rec))
}

func TestGuestGetByIDInvalidID(t *testing.T) {
	h := NewGuestHandler(&fakeGuestService{})

	rec := httptest.NewRecorder()
	h.GetByID(rec, requestWithID(http.MethodGet, "/api/tamu/abc", "abc", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ID tamu tidak valid", errorMessage(t, rec))
}

func TestGuestGetByIDNotFound(t *testing.T) {
	svc := &fakeGuestService{
		getByIDFn: func(ctx context.Context, id int64) (*model.Guest, error) {
			return nil, service.ErrGuestNotFound
		},
	}
	h := NewGuestHandler(svc)

	rec := httptest.NewRecorder()
	h.GetByID(rec, requestWithID(http.MethodGet, "/api/tamu/99", "99", ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Data tamu tidak ditemukan", errorMessage(t, rec))
}

func TestGuestUpdateMissingFields(t *testing.T) {
	h := NewGuestHandler(&fakeGuestService{})

	rec := httptest.NewRecorder()
	h.Update(rec, requestWithID(http.MethodPut, "/api/tamu/1", "1", `{"nama_lengkap":"Siti"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGuestDelete(t *testing.T) {
	svc := &fakeGuestService{
		deleteFn: func(ctx context.Context, id int64) error {
			assert.Equal(t, int64(5), id)
			return nil
		},
	}
	h := NewGuestHandler(svc)

	rec := httptest.NewRecorder()
	h.Delete(rec, requestWithID(http.MethodDelete, "/api/tamu/5", "5", ""))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGuestExportPDFHeaders(t *testing.T) {
	svc := &fakeGuestService{
		exportFn: func(ctx context.Context, filter model.GuestFilter) ([]byte, error) {
			return []byte("%PDF-1.3 dummy"), nil
		},
	}
	h := NewGuestHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/tamu/export/pdf", nil)
	rec := httptest.NewRecorder()
	h.ExportPDF(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "laporan-buku-tamu.pdf")
}

func TestGuestBadgeNotFoundResponse(t *testing.T) {
	svc := &fakeGuestService{
		badgeFn: func(ctx context.Context, id int64) ([]byte, error) {
			return nil, service.ErrGuestNotFound
		},
	}
	h := NewGuestHandler(svc)

	rec := httptest.NewRecorder()
	h.Badge(rec, requestWithID(http.MethodGet, "/api/tamu/99/badge", "99", ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
