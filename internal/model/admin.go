package model

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID           int64  `db:"id"            json:"id"`
	NamaPengguna string `db:"nama_pengguna" json:"nama_pengguna"`
	Password     string `db:"password"      json:"-"` // never expose hash
}

type AdminResponse struct {
	ID           int64  `json:"id"`
	NamaPengguna string `json:"nama_pengguna"`
}

func (a *Admin) ToResponse() AdminResponse {
	return AdminResponse{
		ID:           a.ID,
		NamaPengguna: a.NamaPengguna,
	}
}

// AdminLoginLog adalah catatan audit login admin, append-only.
type AdminLoginLog struct {
	ID            uuid.UUID `db:"id"`
	UsernameAdmin string    `db:"username_admin"`
	WaktuLogin    time.Time `db:"waktu_login"`
}
