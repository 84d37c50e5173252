package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// RunMigrations menjalankan file .sql di folder migrations sesuai urutan nama,
// sekali per versi. Versi yang sudah tercatat di schema_migrations dilewati.
func RunMigrations(ctx context.Context, db *sqlx.DB, migrationsPath string) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version     VARCHAR(255) PRIMARY KEY,
			executed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`); err != nil {
		return fmt.Errorf("membuat tabel schema_migrations: %w", err)
	}

	var versions []string
	if err := db.SelectContext(ctx, &versions, "SELECT version FROM schema_migrations"); err != nil {
		return fmt.Errorf("membaca schema_migrations: %w", err)
	}
	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}

	files, err := filepath.Glob(filepath.Join(migrationsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("membaca folder migrations: %w", err)
	}
	sort.Strings(files) // urutan nama file: 001_, 002_, dst

	for _, file := range files {
		version := filepath.Base(file)
		if applied[version] {
			log.Printf("Migration %s already applied, skipping", version)
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("membaca file migration %s: %w", version, err)
		}
		sql := string(content)
		if strings.TrimSpace(sql) == "" {
			continue
		}

		if err := applyMigration(ctx, db, version, sql); err != nil {
			return err
		}
		log.Printf("Migration applied: %s", version)
	}

	return nil
}

// applyMigration menjalankan satu file migration dan pencatatannya dalam satu
// transaksi, supaya versi tidak pernah tercatat tanpa SQL-nya ikut jalan.
func applyMigration(ctx context.Context, db *sqlx.DB, version, sql string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("mulai transaksi untuk %s: %w", version, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, sql); err != nil {
		return fmt.Errorf("menjalankan migration %s: %w", version, err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
		return fmt.Errorf("mencatat migration %s: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", version, err)
	}
	return nil
}
