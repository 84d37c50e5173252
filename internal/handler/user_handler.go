package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/response"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/service"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type userMessage struct {
	Message string `json:"message"`
}

// GetAll godoc
// GET /api/users
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.GetAll(r.Context())
	if err != nil {
		log.Printf("[USERS] Gagal mengambil data user: %v", err)
		response.InternalError(w, "Gagal mengambil data user")
		return
	}

	response.JSON(w, http.StatusOK, users)
}

// GetByID godoc
// GET /api/users/{id}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	user, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserRecordNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Printf("[USERS] Gagal mengambil data user: %v", err)
		response.InternalError(w, "Gagal mengambil data user")
		return
	}

	response.JSON(w, http.StatusOK, user)
}

// Update godoc
// PUT /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Format request tidak valid")
		return
	}

	req.Name = utils.SanitizeString(req.Name)
	req.Username = utils.SanitizeString(req.Username)
	if req.Name == "" || req.Username == "" {
		response.BadRequest(w, "Nama dan username wajib diisi")
		return
	}

	user, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrUserRecordNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Printf("[USERS] Gagal mengupdate data user: %v", err)
		response.InternalError(w, "Gagal mengupdate data user")
		return
	}

	response.JSON(w, http.StatusOK, user)
}

// Delete godoc
// DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserRecordNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		log.Printf("[USERS] Gagal menghapus data user: %v", err)
		response.InternalError(w, "Gagal menghapus data user")
		return
	}

	response.JSON(w, http.StatusOK, userMessage{Message: "Data user berhasil dihapus"})
}

func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "ID user tidak valid")
		return 0, false
	}
	return id, true
}
