package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/response"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/service"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

type GuestHandler struct {
	svc service.GuestService
}

func NewGuestHandler(svc service.GuestService) *GuestHandler {
	return &GuestHandler{svc: svc}
}

type guestCreated struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type guestMessage struct {
	Message string `json:"message"`
}

// Create godoc
// @Summary      Simpan data tamu
// @Description  Catat satu kunjungan; field opsional disimpan NULL jika kosong
// @Tags         tamu
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateGuestRequest  true  "Data tamu"
// @Success      201      {object}  guestCreated
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /tamu [post]
func (h *GuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateGuestRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Data tamu wajib (nama, jenis kelamin, tanggal hadir) tidak lengkap")
		return
	}

	req.NamaLengkap = utils.SanitizeString(req.NamaLengkap)
	req.JenisKelamin = utils.SanitizeString(req.JenisKelamin)
	req.TanggalKehadiran = utils.SanitizeString(req.TanggalKehadiran)

	if req.NamaLengkap == "" || req.JenisKelamin == "" || req.TanggalKehadiran == "" {
		response.BadRequest(w, "Data tamu wajib (nama, jenis kelamin, tanggal hadir) tidak lengkap")
		return
	}

	id, err := h.svc.Create(r.Context(), req)
	if err != nil {
		log.Printf("[TAMU] Gagal menyimpan data tamu: %v", err)
		response.InternalError(w, "Gagal menyimpan data tamu ke database")
		return
	}

	response.JSON(w, http.StatusCreated, guestCreated{
		Message: "Data tamu berhasil disimpan",
		ID:      id,
	})
}

// GetAll godoc
// GET /api/tamu?search=&tanggal=
func (h *GuestHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.GuestFilter{
		Search:  q.Get("search"),
		Tanggal: q.Get("tanggal"),
	}

	guests, err := h.svc.GetAll(r.Context(), filter)
	if err != nil {
		log.Printf("[TAMU] Gagal mengambil data tamu: %v", err)
		response.InternalError(w, "Gagal mengambil data tamu")
		return
	}
	if guests == nil {
		guests = []*model.Guest{}
	}

	response.JSON(w, http.StatusOK, guests)
}

// GetByID godoc
// GET /api/tamu/{id}
func (h *GuestHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := guestID(w, r)
	if !ok {
		return
	}

	guest, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Printf("[TAMU] Gagal mengambil data tamu: %v", err)
		response.InternalError(w, "Gagal mengambil data tamu")
		return
	}

	response.JSON(w, http.StatusOK, guest)
}

// Update godoc
// PUT /api/tamu/{id}
func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := guestID(w, r)
	if !ok {
		return
	}

	var req model.UpdateGuestRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Data tamu wajib (nama, jenis kelamin, tanggal hadir) tidak lengkap")
		return
	}

	req.NamaLengkap = utils.SanitizeString(req.NamaLengkap)
	req.JenisKelamin = utils.SanitizeString(req.JenisKelamin)
	req.TanggalKehadiran = utils.SanitizeString(req.TanggalKehadiran)

	if req.NamaLengkap == "" || req.JenisKelamin == "" || req.TanggalKehadiran == "" {
		response.BadRequest(w, "Data tamu wajib (nama, jenis kelamin, tanggal hadir) tidak lengkap")
		return
	}

	guest, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Printf("[TAMU] Gagal mengupdate data tamu: %v", err)
		response.InternalError(w, "Gagal mengupdate data tamu")
		return
	}

	response.JSON(w, http.StatusOK, guest)
}

// Delete godoc
// DELETE /api/tamu/{id}
func (h *GuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := guestID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Printf("[TAMU] Gagal menghapus data tamu: %v", err)
		response.InternalError(w, "Gagal menghapus data tamu")
		return
	}

	response.JSON(w, http.StatusOK, guestMessage{Message: "Data tamu berhasil dihapus"})
}

// ExportPDF godoc
// GET /api/tamu/export/pdf?search=&tanggal=
func (h *GuestHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.GuestFilter{
		Search:  q.Get("search"),
		Tanggal: q.Get("tanggal"),
	}

	pdfBytes, err := h.svc.ExportPDF(r.Context(), filter)
	if err != nil {
		log.Printf("[TAMU] Gagal generate laporan PDF: %v", err)
		response.InternalError(w, "Gagal generate laporan PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="laporan-buku-tamu.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// Badge godoc
// GET /api/tamu/{id}/badge
func (h *GuestHandler) Badge(w http.ResponseWriter, r *http.Request) {
	id, ok := guestID(w, r)
	if !ok {
		return
	}

	png, err := h.svc.Badge(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Printf("[TAMU] Gagal generate badge: %v", err)
		response.InternalError(w, "Gagal generate badge tamu")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func guestID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "ID tamu tidak valid")
		return 0, false
	}
	return id, true
}
