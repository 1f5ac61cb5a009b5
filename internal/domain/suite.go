package domain

import (
	"context"

	"github.com/ekranoplan/backend/internal/common"
	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/internal/repository"
	"github.com/ekranoplan/backend/mocks"
	"github.com/ekranoplan/backend/pkg/testutil"
)

// suite is a guild with one channel and members of every kind, backed by an
// in-memory database and message store.
type suite struct {
	ctx context.Context

	Guild   entity.Guild
	Channel entity.GuildChannel

	Owner    entity.User
	Reader   entity.User
	Writer   entity.User
	Manager  entity.User
	Bot      entity.User
	Stranger entity.User
	Staff    entity.User

	userRepo    repository.UserRepository
	channelRepo repository.ChannelRepository
	messageRepo *mocks.MemoryMessageRepository

	sessionVerifier *common.SessionVerifier
	channelVerifier *common.ChannelVerifier
}

func newSuite() *suite {
	s := &suite{ctx: testutil.MockContext()}
	ctx := s.ctx

	s.Owner = testutil.SampleUser(ctx, nil)
	s.Reader = testutil.SampleUser(ctx, nil)
	s.Writer = testutil.SampleUser(ctx, nil)
	s.Manager = testutil.SampleUser(ctx, nil)
	s.Bot = testutil.SampleUser(ctx, &entity.User{Bot: true})
	s.Stranger = testutil.SampleUser(ctx, nil)
	s.Staff = testutil.SampleUser(ctx, &entity.User{Flags: entity.STAFF})

	s.Guild = testutil.SampleGuild(ctx, &entity.Guild{
		OwnerID:     s.Owner.ID,
		Permissions: entity.VIEW_CHANNEL | entity.READ_MESSAGE_HISTORY,
	})
	writerRole := testutil.SampleRole(ctx, &entity.Role{
		GuildID:     s.Guild.ID,
		Permissions: entity.VIEW_CHANNEL | entity.SEND_MESSAGES | entity.READ_MESSAGE_HISTORY,
	})
	managerRole := testutil.SampleRole(ctx, &entity.Role{
		GuildID:     s.Guild.ID,
		Permissions: entity.MANAGE_CHANNEL,
	})

	testutil.SampleMember(ctx, &entity.Member{ID: s.Owner.ID, GuildID: s.Guild.ID, Owner: true})
	testutil.SampleMember(ctx, &entity.Member{ID: s.Reader.ID, GuildID: s.Guild.ID})
	testutil.SampleMember(ctx, &entity.Member{
		ID:      s.Writer.ID,
		GuildID: s.Guild.ID,
		Roles:   entity.Array[int64]{writerRole.ID},
	})
	testutil.SampleMember(ctx, &entity.Member{
		ID:      s.Manager.ID,
		GuildID: s.Guild.ID,
		Roles:   entity.Array[int64]{managerRole.ID},
	})
	testutil.SampleMember(ctx, &entity.Member{
		ID:      s.Bot.ID,
		GuildID: s.Guild.ID,
		Roles:   entity.Array[int64]{writerRole.ID, managerRole.ID},
	})

	s.Channel = testutil.SampleChannel(ctx, &entity.GuildChannel{GuildID: s.Guild.ID})

	s.userRepo = repository.NewUserRepository(nil, 0)
	s.channelRepo = repository.NewChannelRepository()
	s.messageRepo = mocks.NewMemoryMessageRepository()
	s.sessionVerifier = common.NewSessionVerifier(
		testutil.TokenEngine(), s.userRepo, repository.NewMemberRepository())
	s.channelVerifier = common.NewChannelVerifier(
		s.sessionVerifier,
		repository.NewGuildRepository(),
		s.channelRepo,
		repository.NewRoleRepository(),
		common.RoleResolutionMerge,
	)

	return s
}

// as returns the suite context carrying a session of user.
func (s *suite) as(user entity.User) context.Context {
	return testutil.MockContextWithUserID(s.ctx, user.ID)
}
