package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"job-portal/internal/config"
	"job-portal/internal/database/migration"
	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/database/seeder"
	"job-portal/internal/pkg/logger"
	"job-portal/internal/pkg/password"
)

func main() {
	down := flag.Bool("down", false, "revert every migration instead of applying them")
	seed := flag.Bool("seed", true, "create the admin account from SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	r := migration.Runner{DSN: cfg.Database.DSN()}
	if *down {
		if err := r.Down(); err != nil {
			l.Fatal("migration down failed", zap.Error(err))
		}
		l.Info("migrations reverted")
		return
	}

	if err := r.Up(); err != nil {
		l.Fatal("migration failed", zap.Error(err))
	}
	l.Info("migrations applied")

	if !*seed {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		l.Fatal("failed to connect database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	runner := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.AdminSeeder{
			Email:    cfg.Security.SeedAdminEmail,
			Password: cfg.Security.SeedAdminPassword,
			Hasher:   password.NewBcryptHasher(cfg.Security.BcryptCost),
		},
	}}
	if err := runner.Run(ctx, db); err != nil {
		l.Fatal("seeding failed", zap.Error(err))
	}
	l.Info("seeding finished")
}
