package repository

import (
	"context"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/pkg/xcontext"
)

type ChannelRepository interface {
	Create(ctx context.Context, data *entity.GuildChannel) error
	GetByID(ctx context.Context, id, guildID int64) (*entity.GuildChannel, error)
	GetByGuildID(ctx context.Context, guildID int64) ([]entity.GuildChannel, error)
}

type channelRepository struct{}

func NewChannelRepository() ChannelRepository {
	return &channelRepository{}
}

func (r *channelRepository) Create(ctx context.Context, data *entity.GuildChannel) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *channelRepository) GetByID(ctx context.Context, id, guildID int64) (*entity.GuildChannel, error) {
	var result entity.GuildChannel
	err := xcontext.DB(ctx).
		Where("id=? AND guild_id=?", id, guildID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *channelRepository) GetByGuildID(ctx context.Context, guildID int64) ([]entity.GuildChannel, error) {
	var result []entity.GuildChannel
	err := xcontext.DB(ctx).
		Where("guild_id=?", guildID).
		Order("position").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
