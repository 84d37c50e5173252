package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/response"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/service"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginSuccess struct {
	Message string             `json:"message"`
	User    model.UserResponse `json:"user"`
}

type adminLoginSuccess struct {
	Message string              `json:"message"`
	Admin   model.AdminResponse `json:"admin"`
}

// Login godoc
// @Summary      Login user
// @Description  Verifikasi username dan password user, tanpa penerbitan token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  loginSuccess
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Username dan password wajib diisi")
		return
	}

	// Validasi presence harus selesai sebelum store disentuh
	req.Username = utils.SanitizeString(req.Username)
	if req.Username == "" || req.Password == "" {
		response.BadRequest(w, "Username dan password wajib diisi")
		return
	}

	user, err := h.authService.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrWrongPassword):
			response.Unauthorized(w, err.Error())
		default:
			log.Printf("[LOGIN] Gagal mengambil data user: %v", err)
			response.InternalError(w, "Terjadi kesalahan server saat mengambil data user")
		}
		return
	}

	response.JSON(w, http.StatusOK, loginSuccess{
		Message: "Login user berhasil",
		User:    *user,
	})
}

// AdminLogin godoc
// @Summary      Login admin
// @Description  Verifikasi kredensial admin dan catat log aktivitas (best effort)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  adminLoginSuccess
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /admin-login [post]
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req service.AdminLoginRequest

	if err := utils.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Nama pengguna dan password admin wajib diisi")
		return
	}

	log.Printf("[ADMIN LOGIN ATTEMPT] User: %s", req.NamaPengguna)

	req.NamaPengguna = utils.SanitizeString(req.NamaPengguna)
	if req.NamaPengguna == "" || req.Password == "" {
		response.BadRequest(w, "Nama pengguna dan password admin wajib diisi")
		return
	}

	admin, err := h.authService.AdminLogin(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminNotFound), errors.Is(err, service.ErrWrongAdminPassword):
			response.Unauthorized(w, err.Error())
		default:
			log.Printf("[ADMIN LOGIN] Gagal mengambil data admin: %v", err)
			response.InternalError(w, "Kesalahan server saat mengambil data admin")
		}
		return
	}

	response.JSON(w, http.StatusOK, adminLoginSuccess{
		Message: "Login admin berhasil",
		Admin:   *admin,
	})
}
