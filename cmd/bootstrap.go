package cmd

import (
	"context"
	"fmt"

	"storefront/core/catalog"
	"storefront/core/config"
	"storefront/core/database"
	"storefront/core/docstore"
	"storefront/core/logger"
	"storefront/core/storage"
	"storefront/feature/catalog/sources"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the shared dependencies of every command.
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	store  storage.Client
	db     *gorm.DB
	mongo  *mongo.Client
	// sources lists every reachable source; the configured one comes first.
	sources []catalog.Source
}

// bootstrap loads configuration, creates the logger and connects to every backend.
// Only the backend of the configured source is required; mirrors are optional
// and only take part in reconciliation.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Server.IsValidSource() {
		return nil, fmt.Errorf("unknown product source %q", cfg.Server.Source)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: logg}

	if client, err := storage.NewClient(cfg.Storage); err != nil {
		rt.optional(catalog.KindStorage, err)
	} else {
		rt.store = client
	}

	if cfg.Server.Uses(catalog.KindDatabase) {
		if conn, err := database.Connect(cfg.Database); err != nil {
			rt.optional(catalog.KindDatabase, err)
		} else {
			rt.db = conn
			logg.Info("Connected to catalog database", zap.String("driver", cfg.Database.Driver))
		}
	}

	if cfg.Server.Uses(catalog.KindMongo) {
		if conn, err := docstore.Connect(ctx, cfg.Mongo); err != nil {
			rt.optional(catalog.KindMongo, err)
		} else {
			rt.mongo = conn
			logg.Info("Connected to catalog document store", zap.String("database", cfg.Mongo.Database))
		}
	}

	deps := sources.Deps{
		Storage: rt.store,
		Bucket:  cfg.Storage.Bucket,
		Prefix:  cfg.Storage.Prefix,
		DB:      rt.db,
	}
	if rt.mongo != nil {
		deps.Mongo = docstore.Collection(rt.mongo, cfg.Mongo)
	}

	primary, err := sources.New(cfg.Server.Source, deps)
	if err != nil {
		rt.close(ctx)
		return nil, fmt.Errorf("configured source unavailable: %w", err)
	}
	rt.sources = append(rt.sources, primary)

	for _, kind := range cfg.Server.MirrorSources() {
		if src, err := sources.New(kind, deps); err == nil {
			rt.sources = append(rt.sources, src)
		}
	}

	rt.logger = logg.With(zap.String("source", primary.Name()))
	return rt, nil
}

func (rt *runtime) optional(kind string, err error) {
	if kind == rt.cfg.Server.Source {
		rt.logger.Error("Connection for configured source failed", zap.String("backend", kind), zap.Error(err))
		return
	}
	rt.logger.Warn("Optional mirror connection failed", zap.String("backend", kind), zap.Error(err))
}

// primary returns the configured source.
func (rt *runtime) primary() catalog.Source {
	return rt.sources[0]
}

func (rt *runtime) close(ctx context.Context) {
	if rt.mongo != nil {
		_ = rt.mongo.Disconnect(ctx)
	}
	if rt.db != nil {
		if sqlDB, err := rt.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = rt.logger.Sync()
}

// migrate creates the products table for every database-backed source.
func (rt *runtime) migrate(ctx context.Context, srcs ...catalog.Source) error {
	for _, src := range srcs {
		if dbSrc, ok := src.(*sources.DatabaseSource); ok {
			if err := dbSrc.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate products table: %w", err)
			}
		}
	}
	return nil
}
