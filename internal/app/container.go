package app

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"job-portal/internal/config"
	"job-portal/internal/database"
	dbpostgres "job-portal/internal/database/postgres"
	"job-portal/internal/infrastructure/cache"
	"job-portal/internal/infrastructure/storage"
	"job-portal/internal/metrics"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/pkg/password"
	"job-portal/internal/repository"
	appuc "job-portal/internal/usecase/application"
	ucauth "job-portal/internal/usecase/auth"
	jobuc "job-portal/internal/usecase/job"
	statsuc "job-portal/internal/usecase/stats"
	useruc "job-portal/internal/usecase/user"
	"job-portal/internal/ws"
)

// Container owns every long-lived dependency of the server process.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	Registry *prometheus.Registry
	Metrics  *metrics.Collector
	Tokens   jwt.Service

	Auth         ucauth.Usecase
	Users        useruc.Usecase
	Jobs         jobuc.Usecase
	Applications appuc.Usecase
	Stats        statsuc.Usecase
}

func NewContainer(cfg config.Config, l *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewCloudinary(cfg.Storage.CloudinaryURL, cfg.Storage.Folder)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewCollector(reg)

	rdb := cache.NewRedis(cfg.Redis, l)
	hub := ws.NewHub(l)
	tokens := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiresIn)
	hasher := password.NewBcryptHasher(cfg.Security.BcryptCost)

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	appRepo := repository.NewPostgresApplicationRepository(db)
	statsRepo := repository.NewPostgresStatsRepository(db)

	authSvc, err := ucauth.NewService(userRepo, hasher, tokens, rec)
	if err != nil {
		_ = rdb.Close()
		_ = db.Close()
		return nil, err
	}

	var jobCache jobuc.Cache
	var cachePinger statsuc.Pinger
	if rdb.Enabled() {
		jobCache = rdb
		cachePinger = rdb
	}

	c := &Container{
		Config:   cfg,
		Logger:   l,
		DB:       db,
		Cache:    rdb,
		Hub:      hub,
		Registry: reg,
		Metrics:  rec,
		Tokens:   tokens,

		Auth:         authSvc,
		Users:        useruc.NewService(userRepo),
		Jobs:         jobuc.NewService(jobRepo, jobCache, l),
		Applications: appuc.NewService(appRepo, store, hub, rec, l),
		Stats:        statsuc.NewService(statsRepo, db, cachePinger, hub, l),
	}

	go hub.Run()

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	c.Hub.Stop()

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
