package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/filestore"
	"github.com/folio-space/core/internal/modules/certificate"
	"github.com/folio-space/core/internal/modules/contact"
	"github.com/folio-space/core/internal/modules/identity"
	"github.com/folio-space/core/internal/modules/media"
	"github.com/folio-space/core/internal/modules/portfolio"
	"github.com/folio-space/core/internal/modules/profile"
	"github.com/folio-space/core/internal/modules/skill"
	"github.com/folio-space/core/internal/modules/testimonial"
	pkgredis "github.com/folio-space/core/internal/pkg/redis"
	"github.com/folio-space/core/internal/richtext"
	"github.com/folio-space/core/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the record store and every entity service built on it.
type App struct {
	cfg    *config.AppConfig
	db     *gorm.DB
	redis  *pkgredis.Client
	logger *zap.Logger

	Store        *store.Store
	Files        filestore.Storage
	Identities   *identity.Service
	Skills       *skill.Service
	Profiles     *profile.Service
	Contacts     *contact.Service
	Testimonials *testimonial.Service
	Media        *media.Service
	Portfolios   *portfolio.Service
	Certificates *certificate.Service
}

// New initializes the application: config → DB → Redis → storage → services.
func New(ctx context.Context, logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := database.Connect(cfg, cfg.Database.AutoMigrate)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	a := &App{cfg: cfg, db: db, logger: logger}

	var opts []store.Option
	if ttl := cfg.Cache.TTL(); ttl > 0 {
		opts = append(opts, store.WithListCache(ttl, cfg.Cache.Cleanup()))
	}
	if cfg.Redis.URL != "" {
		rc, err := pkgredis.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("redis: %w", err)
		}
		a.redis = rc
		opts = append(opts, store.WithPublisher(store.NewRedisPublisher(rc, cfg.Redis.Channel)))
	} else {
		logger.Info("redis url is empty, write events are not published")
	}

	files, err := filestore.New(cfg.Storage)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("storage: %w", err)
	}

	st := store.New(db, logger, opts...)
	a.Store = st
	a.Files = files
	a.Identities = identity.NewService(st, logger)
	a.Skills = skill.NewService(st, files)
	a.Profiles = profile.NewService(st, files)
	a.Contacts = contact.NewService(st, logger)
	a.Testimonials = testimonial.NewService(st, files)
	a.Media = media.NewService(st, files)
	a.Portfolios = portfolio.NewService(st, files, richtext.NewMarkdown())
	a.Certificates = certificate.NewService(st)

	logger.Info("record store ready",
		zap.String("database", cfg.Database.Driver),
		zap.String("storage", cfg.Storage.Driver),
		zap.Bool("events", a.redis != nil))
	return a, nil
}

// Shutdown releases the database and Redis connections.
func (a *App) Shutdown() error {
	return a.close()
}

func (a *App) close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
		a.redis = nil
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
		a.db = nil
	}
	return errors.Join(errs...)
}
