package db

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"declutter/internal/config"
	"declutter/internal/model"
	"declutter/internal/repository"
)

// Store bundles the repositories of one backend together with its cleanup.
type Store struct {
	Users         repository.UserRepository
	Posts         repository.PostRepository
	Comments      repository.CommentRepository
	Notifications repository.NotificationRepository

	close func(ctx context.Context) error
}

// Close releases the backend connection.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the backend named by cfg.StoreDriver and prepares its
// schema: tables are migrated for MySQL, indexes are created for MongoDB.
func Open(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMySQL:
		return openMySQL(cfg, logger)
	case config.DriverMongo:
		return openMongo(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openMySQL(cfg *config.Config, logger logrus.FieldLogger) (*Store, error) {
	gormDB, err := NewMySQL(cfg.MySQLDSN)
	if err != nil {
		return nil, err
	}

	tables := []interface{}{&model.User{}, &model.Post{}, &model.Comment{}, &model.Notification{}}
	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				logger.WithError(err).Warn("drop table failed (may not exist)")
			}
		}
	}
	if err := gormDB.AutoMigrate(tables...); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql handle: %w", err)
	}
	logger.WithField("driver", config.DriverMySQL).Info("store ready")

	return &Store{
		Users:         repository.NewUserRepository(gormDB),
		Posts:         repository.NewPostRepository(gormDB),
		Comments:      repository.NewCommentRepository(gormDB),
		Notifications: repository.NewNotificationRepository(gormDB),
		close:         func(context.Context) error { return sqlDB.Close() },
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*Store, error) {
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required for the %s driver", config.DriverMongo)
	}
	client, err := NewMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	database := client.Database(cfg.MongoDatabase)

	if cfg.ResetDB {
		logger.WithField("database", cfg.MongoDatabase).Warn("RESET_DB=true detected, dropping database")
		if err := database.Drop(ctx); err != nil {
			logger.WithError(err).Warn("drop database failed")
		}
	}
	if err := repository.EnsureMongoIndexes(ctx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	logger.WithFields(logrus.Fields{"driver": config.DriverMongo, "database": cfg.MongoDatabase}).Info("store ready")

	return &Store{
		Users:         repository.NewMongoUserRepository(database),
		Posts:         repository.NewMongoPostRepository(database),
		Comments:      repository.NewMongoCommentRepository(database),
		Notifications: repository.NewMongoNotificationRepository(database),
		close:         client.Disconnect,
	}, nil
}
