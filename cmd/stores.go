package main

import (
	"context"
	"fmt"

	"github.com/dtroode/taskflow-server/internal/config"
	"github.com/dtroode/taskflow-server/internal/model"
	"github.com/dtroode/taskflow-server/internal/repository/postgres"
	"github.com/dtroode/taskflow-server/internal/repository/sqlite"
)

// storeSet is the persistence backend selected by DATABASE_DRIVER.
type storeSet struct {
	Users    model.UserStore
	Profiles model.ProfileStore
	Projects model.ProjectStore
	Tasks    model.TaskStore
	Pinger   model.Pinger
	close    func() error
}

func (s *storeSet) Close() error {
	return s.close()
}

func openStores(ctx context.Context, cfg config.Database) (*storeSet, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, cfg.DSN, cfg.MaxConns, cfg.MinConns)
		if err != nil {
			return nil, err
		}
		return &storeSet{
			Users:    postgres.NewUserRepository(db),
			Profiles: postgres.NewProfileRepository(db),
			Projects: postgres.NewProjectRepository(db),
			Tasks:    postgres.NewTaskRepository(db),
			Pinger:   db,
			close:    db.Close,
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &storeSet{
			Users:    sqlite.NewUserRepository(db),
			Profiles: sqlite.NewProfileRepository(db),
			Projects: sqlite.NewProjectRepository(db),
			Tasks:    sqlite.NewTaskRepository(db),
			Pinger:   db,
			close:    db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
