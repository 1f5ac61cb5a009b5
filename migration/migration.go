package migration

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/pkg/xcontext"
	"github.com/scylladb/gocqlx/v2"
	"github.com/scylladb/gocqlx/v2/migrate"
)

//go:embed cql/*.cql
var cqlFS embed.FS

// Migrate creates or updates every relational table.
func Migrate(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}

// CreateKeyspace must run on a session which is not bound to any keyspace.
func CreateKeyspace(session gocqlx.Session, keyspace string, replicationFactor int) error {
	return session.ExecStmt(fmt.Sprintf(
		`CREATE KEYSPACE IF NOT EXISTS %s WITH replication = {'class': 'SimpleStrategy', 'replication_factor': %d}`,
		keyspace, replicationFactor,
	))
}

// MigrateScyllaDB applies the pending cql files in order. Applied files are
// tracked by gocqlx in the keyspace of the session.
func MigrateScyllaDB(ctx context.Context, session gocqlx.Session) error {
	files, err := CQLFiles()
	if err != nil {
		return err
	}

	xcontext.Logger(ctx).Infof("Applying cql migrations")
	return migrate.FromFS(ctx, session, files)
}

func CQLFiles() (fs.FS, error) {
	return fs.Sub(cqlFS, "cql")
}
