package model

type User struct {
	ID       int64  `db:"id"       json:"id"`
	Name     string `db:"name"     json:"name"`
	NIP      string `db:"nip"      json:"nip"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"` // never expose hash
}

// DTO untuk response login dan listing user
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	NIP      string `json:"nip"`
	Username string `json:"username"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		NIP:      u.NIP,
		Username: u.Username,
	}
}
