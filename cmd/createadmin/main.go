package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	adminRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/admin"
	adminsService "github.com/m04kA/SMC-CourtBookingService/internal/service/admins"
	"github.com/m04kA/SMC-CourtBookingService/migrations"
	"github.com/m04kA/SMC-CourtBookingService/pkg/jwtauth"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

// Регистрирует администратора: createadmin -email admin@college.edu -password ...
// Пароль можно передать через ADMIN_PASSWORD, чтобы он не попал в историю shell
func main() {
	cfgPath := flag.String("config", "config.toml", "path to config.toml")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrations.Up(ctx, db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	svc := adminsService.NewService(
		adminRepo.NewRepository(db),
		jwtauth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
		time.Duration(cfg.Auth.AdminTokenHours)*time.Hour,
		log,
	)

	admin, err := svc.Create(ctx, *email, *password)
	if err != nil {
		if errors.Is(err, adminsService.ErrAdminExists) {
			log.Fatal("Admin %s already exists", *email)
		}
		log.Fatal("Failed to create admin: %v", err)
	}

	log.Info("Admin created: id=%s, email=%s", admin.ID, admin.Email)
}
