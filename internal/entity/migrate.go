package entity

import (
	"context"

	"github.com/ekranoplan/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Guild{},
		&Member{},
		&Role{},
		&GuildChannel{},
	)
}
