package repository

import (
	"testing"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMemberRepository_Get(t *testing.T) {
	ctx := testutil.MockContext()
	memberRepo := NewMemberRepository()

	err := memberRepo.Create(ctx, &entity.Member{
		ID:      10,
		GuildID: 20,
		Roles:   entity.Array[int64]{3, 1, 2},
	})
	require.NoError(t, err)

	member, err := memberRepo.Get(ctx, 10, 20)
	require.NoError(t, err)
	require.Equal(t, entity.Array[int64]{3, 1, 2}, member.Roles)

	_, err = memberRepo.Get(ctx, 10, 21)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRoleRepository_GetByIDs(t *testing.T) {
	ctx := testutil.MockContext()
	roleRepo := NewRoleRepository()

	for i, permissions := range []entity.PermissionFlag{entity.SEND_MESSAGES, entity.MANAGE_CHANNEL} {
		err := roleRepo.Create(ctx, &entity.Role{
			SnowFlakeBase: entity.SnowFlakeBase{ID: int64(i + 1)},
			GuildID:       5,
			Permissions:   permissions,
			Position:      i,
		})
		require.NoError(t, err)
	}

	roles, err := roleRepo.GetByIDs(ctx, []int64{2, 1, 9})
	require.NoError(t, err)
	require.Len(t, roles, 2)

	roles, err = roleRepo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, roles)

	roles, err = roleRepo.GetByGuildID(ctx, 5)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	require.Equal(t, entity.SEND_MESSAGES, roles[0].Permissions)

	role, err := roleRepo.GetByID(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, entity.MANAGE_CHANNEL, role.Permissions)
}

func TestChannelRepository(t *testing.T) {
	ctx := testutil.MockContext()
	channelRepo := NewChannelRepository()
	guildRepo := NewGuildRepository()

	require.NoError(t, guildRepo.Create(ctx, &entity.Guild{
		SnowFlakeBase: entity.SnowFlakeBase{ID: 7},
		Permissions:   entity.VIEW_CHANNEL,
	}))

	guild, err := guildRepo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, entity.VIEW_CHANNEL, guild.Permissions)

	overwrites := entity.Array[entity.PermissionOverwrite]{
		{ID: 1234567890123, Allow: entity.SEND_MESSAGES},
		{ID: 1234567890124, Deny: entity.SEND_MESSAGES},
	}
	require.NoError(t, channelRepo.Create(ctx, &entity.GuildChannel{
		SnowFlakeBase:        entity.SnowFlakeBase{ID: 2},
		GuildID:              7,
		Position:             2,
		PermissionOverwrites: overwrites,
	}))
	require.NoError(t, channelRepo.Create(ctx, &entity.GuildChannel{
		SnowFlakeBase: entity.SnowFlakeBase{ID: 1},
		GuildID:       7,
		Position:      1,
	}))

	channel, err := channelRepo.GetByID(ctx, 2, 7)
	require.NoError(t, err)
	require.Equal(t, overwrites, channel.PermissionOverwrites)

	_, err = channelRepo.GetByID(ctx, 2, 8)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	channels, err := channelRepo.GetByGuildID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, channels, 2)
	require.Equal(t, int64(1), channels[0].ID)
}
