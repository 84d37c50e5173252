package handler

import (
	"log"
	"net/http"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/response"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/service"
)

type SystemHandler struct {
	systemService service.SystemService
}

func NewSystemHandler(systemService service.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// Status godoc
// GET /api/status
func (h *SystemHandler) Status(w http.ResponseWriter, r *http.Request) {
	report := h.systemService.Status(r.Context())

	if report.Database != "connected" {
		log.Printf("[STATUS] Database check gagal: %s", report.ErrorMessage)
		response.JSON(w, http.StatusInternalServerError, report)
		return
	}

	response.JSON(w, http.StatusOK, report)
}

// GuestTableSchema godoc
// GET /api/schema/tamu
func (h *SystemHandler) GuestTableSchema(w http.ResponseWriter, r *http.Request) {
	report, err := h.systemService.GuestTableSchema(r.Context())
	if err != nil {
		log.Printf("[SCHEMA] Gagal mendapatkan skema tabel 'tamu': %v", err)
		response.InternalError(w, "Gagal mendapatkan skema tabel 'tamu'")
		return
	}

	response.JSON(w, http.StatusOK, report)
}
