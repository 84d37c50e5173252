package model

import "time"

// Guest adalah satu baris di tabel tamu. Field opsional memakai pointer
// supaya NULL di database tetap NULL di JSON, bukan string kosong.
type Guest struct {
	ID               int64     `db:"id"                json:"id"`
	NamaLengkap      string    `db:"nama_lengkap"      json:"nama_lengkap"`
	JenisKelamin     string    `db:"jenis_kelamin"     json:"jenis_kelamin"`
	Email            *string   `db:"email"             json:"email"`
	NoHP             *string   `db:"no_hp"             json:"no_hp"`
	Pekerjaan        *string   `db:"pekerjaan"         json:"pekerjaan"`
	Alamat           *string   `db:"alamat"            json:"alamat"`
	Keperluan        *string   `db:"keperluan"         json:"keperluan"`
	Staff            *string   `db:"staff"             json:"staff"`
	Dituju           *string   `db:"dituju"            json:"dituju"`
	TanggalKehadiran time.Time `db:"tanggal_kehadiran" json:"tanggal_kehadiran"`
	CreatedAt        time.Time `db:"created_at"        json:"created_at"`
}

type CreateGuestRequest struct {
	NamaLengkap      string  `json:"nama_lengkap"`
	JenisKelamin     string  `json:"jenis_kelamin"`
	Email            *string `json:"email"`
	NoHP             *string `json:"no_hp"`
	Pekerjaan        *string `json:"pekerjaan"`
	Alamat           *string `json:"alamat"`
	Keperluan        *string `json:"keperluan"`
	Staff            *string `json:"staff"`
	Dituju           *string `json:"dituju"`
	TanggalKehadiran string  `json:"tanggal_kehadiran"`
}

type UpdateGuestRequest struct {
	NamaLengkap      string  `json:"nama_lengkap"`
	JenisKelamin     string  `json:"jenis_kelamin"`
	Email            *string `json:"email"`
	NoHP             *string `json:"no_hp"`
	Pekerjaan        *string `json:"pekerjaan"`
	Alamat           *string `json:"alamat"`
	Keperluan        *string `json:"keperluan"`
	Staff            *string `json:"staff"`
	Dituju           *string `json:"dituju"`
	TanggalKehadiran string  `json:"tanggal_kehadiran"`
}

type GuestFilter struct {
	Search  string // cocokkan nama_lengkap atau dituju
	Tanggal string // filter tanggal_kehadiran persis (YYYY-MM-DD)
}
