package root

import (
	"context"
	"database/sql"

	"liferpg/internal/config"
	"liferpg/internal/engine"
	"liferpg/internal/storage"
	"liferpg/internal/ui"
)

func openDB(ctx context.Context) (*sql.DB, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	if cfg.NoColor {
		ui.DisableColors()
	}
	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, config.Config{}, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cfg, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, config.Config, func(), error) {
	db, cfg, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	return engine.NewService(db), cfg, cleanup, nil
}
