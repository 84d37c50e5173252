package database

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *sqlx.DB
}

func NewSeeder(db *sqlx.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedDefaultAdmin membuat akun admin default jika tabel admins masih kosong
func (s *Seeder) SeedDefaultAdmin(ctx context.Context) error {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM admins").Scan(&count)
	if err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin account already exists, skipping seed")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin@123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO admins (nama_pengguna, password)
		VALUES ($1, $2)
	`,
		"admin",
		string(hashedPassword),
	)

	if err != nil {
		return err
	}

	log.Println("Default admin account created:")
	log.Println("   Username: admin")
	log.Println("   Password: Admin@123")
	log.Println("   Segera ganti password setelah login pertama!")

	return nil
}
