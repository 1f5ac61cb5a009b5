package repository

import (
	"context"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/pkg/xcontext"
)

type GuildRepository interface {
	Create(ctx context.Context, data *entity.Guild) error
	GetByID(ctx context.Context, id int64) (*entity.Guild, error)
}

type guildRepository struct{}

func NewGuildRepository() GuildRepository {
	return &guildRepository{}
}

func (r *guildRepository) Create(ctx context.Context, data *entity.Guild) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *guildRepository) GetByID(ctx context.Context, id int64) (*entity.Guild, error) {
	var result entity.Guild
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
