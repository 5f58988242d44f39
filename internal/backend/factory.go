// Package backend selects and constructs the table store implementation
// named in the configuration.
package backend

import (
	"context"
	"fmt"

	"registro/internal/config"
	applog "registro/internal/log"
	"registro/internal/sheets"
	"registro/internal/sheets/google"
	"registro/internal/sheets/memory"
	"registro/internal/storage"
)

// CleanupFunc releases a backend's resources; nil when nothing to do.
type CleanupFunc func() error

// New builds the table store for cfg.DataBackend.
func New(ctx context.Context, cfg *config.Config, logger *applog.Logger) (sheets.TableStore, CleanupFunc, error) {
	l := logger.WithComponent(applog.ComponentBackend)

	switch cfg.DataBackend {
	case "sheets":
		cli, err := google.NewFromEnv(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize Google Sheets client: %w", err)
		}
		l.InfoContext(ctx, "Initialized Google Sheets backend",
			applog.FieldBackend, cfg.DataBackend)
		return cli, nil, nil

	case "sqlite":
		repo, err := storage.NewRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		l.InfoContext(ctx, "Initialized SQLite backend",
			applog.FieldBackend, cfg.DataBackend, "db_path", cfg.SQLiteDBPath)
		return repo, repo.Close, nil

	case "memory":
		store := memory.New()
		l.InfoContext(ctx, "Initialized memory backend",
			applog.FieldBackend, cfg.DataBackend)
		return store, nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
