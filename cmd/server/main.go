package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/config"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/database"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/handler"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/repository"
	"github.com/ardiansyah-dp/buku-tamu-backend/internal/service"
)

func main() {
	cfg := config.Load()

	// ── Database ─────────────────────────────────────────
	db := database.Connect(&cfg.Database)
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	log.Printf("Running migrations from: %s", migrationsPath)
	if err := database.RunMigrations(context.Background(), db, migrationsPath); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeder := database.NewSeeder(db)
	if err := seeder.SeedDefaultAdmin(context.Background()); err != nil {
		log.Printf("Warning: seed failed: %v", err)
	}

	// ── Repositories ─────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	systemRepo := repository.NewSystemRepository(db)

	// ── Services ─────────────────────────────────────────
	authService := service.NewAuthService(userRepo, adminRepo, auditRepo)
	guestService := service.NewGuestService(guestRepo)
	userService := service.NewUserService(userRepo)
	systemService := service.NewSystemService(systemRepo)

	// ── Handlers ─────────────────────────────────────────
	authHandler := handler.NewAuthHandler(authService)
	guestHandler := handler.NewGuestHandler(guestService)
	userHandler := handler.NewUserHandler(userService)
	systemHandler := handler.NewSystemHandler(systemService)

	// ── Router ───────────────────────────────────────────
	router := handler.NewRouter(authHandler, systemHandler, guestHandler, userHandler)

	// ── HTTP Server ──────────────────────────────────────
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server buku tamu berjalan di port %s (mode: %s)", cfg.App.Port, cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Tunggu penulisan log aktivitas admin yang masih in-flight
	authService.DrainAuditLog()

	log.Println("Server stopped gracefully")
}
