package main

import (
	"github.com/ekranoplan/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(cctx *cli.Context) error {
	if err := s.loadDatabase(); err != nil {
		return err
	}

	if err := migration.Migrate(s.ctx); err != nil {
		return err
	}
	s.logger.Infof("Migrate database successful")

	cfg := s.configs.ScyllaDB
	if !cctx.Bool("skip-keyspace") {
		session, err := s.loadScyllaDB("")
		if err != nil {
			return err
		}

		err = migration.CreateKeyspace(session, cfg.KeySpace, cfg.ReplicationFactor)
		session.Close()
		if err != nil {
			return err
		}
	}

	session, err := s.loadScyllaDB(cfg.KeySpace)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := migration.MigrateScyllaDB(s.ctx, session); err != nil {
		return err
	}
	s.logger.Infof("Migrate scylla db successful")

	return nil
}
