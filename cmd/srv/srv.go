package main

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ekranoplan/backend/config"
	"github.com/ekranoplan/backend/internal/common"
	"github.com/ekranoplan/backend/internal/domain"
	"github.com/ekranoplan/backend/internal/model"
	"github.com/ekranoplan/backend/internal/repository"
	"github.com/ekranoplan/backend/pkg/authenticator"
	"github.com/ekranoplan/backend/pkg/cqlutil"
	"github.com/ekranoplan/backend/pkg/logger"
	"github.com/ekranoplan/backend/pkg/router"
	"github.com/ekranoplan/backend/pkg/xcontext"
	"github.com/ekranoplan/backend/pkg/xredis"
	"github.com/scylladb/gocqlx/v2"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs config.Configs
	logger  logger.Logger
	node    *snowflake.Node

	db              *gorm.DB
	scyllaDBSession gocqlx.Session
	redisClient     xredis.Client

	userRepo    repository.UserRepository
	memberRepo  repository.MemberRepository
	guildRepo   repository.GuildRepository
	roleRepo    repository.RoleRepository
	channelRepo repository.ChannelRepository
	messageRepo repository.MessageRepository

	sessionVerifier *common.SessionVerifier
	channelVerifier *common.ChannelVerifier

	userDomain    domain.UserDomain
	channelDomain domain.ChannelDomain
	messageDomain domain.MessageDomain

	router *router.Router
}

// loadCommon runs before every command.
func (s *srv) loadCommon(cctx *cli.Context) error {
	if err := s.loadConfig(cctx); err != nil {
		return err
	}

	s.loadLogger()
	if err := s.loadSnowflake(cctx.Int64("node")); err != nil {
		return err
	}

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, s.configs)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
	s.ctx = xcontext.WithSnowFlake(s.ctx, s.node)
	return nil
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	if secret := cctx.String("token-secret"); secret != "" {
		cfg.Auth.TokenSecret = secret
	}

	s.configs = cfg
	return nil
}

func (s *srv) loadLogger() {
	s.logger = logger.NewZapLogger(logger.ParseLevel(s.configs.LogLevel), s.configs.LogJSON)
}

func (s *srv) loadSnowflake(nodeID int64) error {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("cannot create snowflake node %d: %w", nodeID, err)
	}

	s.node = node
	return nil
}

func (s *srv) loadDatabase() error {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("cannot connect database: %w", err)
	}

	s.db = db
	s.ctx = xcontext.WithDB(s.ctx, s.db)
	return nil
}

func (s *srv) loadScyllaDB(keyspace string) (gocqlx.Session, error) {
	cfg := s.configs.ScyllaDB
	cluster := cqlutil.CreateCluster(keyspace, cfg.Timeout.Duration, cfg.Addr...)
	session, err := cqlutil.Connect(cluster)
	if err != nil {
		return gocqlx.Session{}, fmt.Errorf("cannot connect scylla db: %w", err)
	}

	s.logger.Infof("Connect scylla db successful in addr: %v", cfg.Addr)
	return session, nil
}

func (s *srv) loadRedis() error {
	client, err := xredis.NewClient(s.ctx, s.configs.Redis.Addr)
	if err != nil {
		return fmt.Errorf("cannot connect redis: %w", err)
	}

	s.redisClient = client
	return nil
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository(s.redisClient, s.configs.Redis.UserCacheTTL.Duration)
	s.memberRepo = repository.NewMemberRepository()
	s.guildRepo = repository.NewGuildRepository()
	s.roleRepo = repository.NewRoleRepository()
	s.channelRepo = repository.NewChannelRepository()
	s.messageRepo = repository.NewMessageRepository(s.scyllaDBSession)
}

func (s *srv) loadVerifiers() error {
	resolution, err := common.ParseRoleResolution(s.configs.Permission.RoleResolution)
	if err != nil {
		return err
	}

	tokenEngine := authenticator.NewTokenEngine[model.AccessToken](
		s.configs.Auth.TokenSecret, s.configs.Auth.AccessToken.Expiration.Duration)

	s.sessionVerifier = common.NewSessionVerifier(tokenEngine, s.userRepo, s.memberRepo)
	s.channelVerifier = common.NewChannelVerifier(
		s.sessionVerifier, s.guildRepo, s.channelRepo, s.roleRepo, resolution)
	return nil
}

func (s *srv) loadDomains() {
	s.userDomain = domain.NewUserDomain(s.userRepo, s.sessionVerifier)
	s.channelDomain = domain.NewChannelDomain(s.channelRepo, s.sessionVerifier, s.channelVerifier)
	s.messageDomain = domain.NewMessageDomain(s.messageRepo, s.channelVerifier)
}
