package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ekranoplan/backend/config"
	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/internal/model"
	"github.com/ekranoplan/backend/pkg/authenticator"
	"github.com/ekranoplan/backend/pkg/logger"
	"github.com/ekranoplan/backend/pkg/xcontext"
	"github.com/google/uuid"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockConfigs() config.Configs {
	cfg := config.Default()
	cfg.ApiServer.DefaultLimit = 50
	cfg.ApiServer.MaxLimit = 100
	cfg.Auth.TokenSecret = "secret"
	cfg.Auth.AccessToken.Expiration = config.Duration{Duration: time.Minute}
	cfg.Message.MaxScanBuckets = 64
	return cfg
}

// MockContext returns a context holding a fresh in-memory database with all
// tables migrated. Every call gets its own database.
func MockContext() context.Context {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, MockConfigs())
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)
	ctx = xcontext.WithSnowFlake(ctx, node)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

// TokenEngine returns the engine that verifies tokens of mock contexts.
func TokenEngine() authenticator.TokenEngine[model.AccessToken] {
	cfg := MockConfigs()
	return authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken.Expiration.Duration)
}

// Token issues a valid session token for userID.
func Token(userID int64) string {
	token, err := TokenEngine().Generate(fmt.Sprint(userID), model.AccessToken{ID: userID})
	if err != nil {
		panic(err)
	}

	return token
}

// MockContextWithUserID returns a mock context carrying a session token of
// userID.
func MockContextWithUserID(ctx context.Context, userID int64) context.Context {
	return xcontext.WithAccessToken(ctx, Token(userID))
}
