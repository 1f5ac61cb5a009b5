package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/pkg/testutil"
	"github.com/ekranoplan/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	ctx := testutil.MockContext()
	require.NoError(t, Migrate(ctx))

	migrator := xcontext.DB(ctx).Migrator()
	for _, table := range []any{&entity.User{}, &entity.Guild{}, &entity.Member{}, &entity.Role{}, &entity.GuildChannel{}} {
		require.True(t, migrator.HasTable(table))
	}
}

func TestCQLFiles(t *testing.T) {
	files, err := CQLFiles()
	require.NoError(t, err)

	names, err := fs.Glob(files, "*.cql")
	require.NoError(t, err)
	require.Equal(t, []string{"0001_messages.cql"}, names)

	content, err := fs.ReadFile(files, names[0])
	require.NoError(t, err)
	require.True(t, strings.Contains(string(content), "PRIMARY KEY ((channel_id, bucket), id)"))
	require.True(t, strings.Contains(string(content), "CLUSTERING ORDER BY (id DESC)"))
}
