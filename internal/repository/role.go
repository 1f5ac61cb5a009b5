package repository

import (
	"context"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/pkg/xcontext"
)

type RoleRepository interface {
	Create(context.Context, *entity.Role) error
	GetByID(context.Context, int64) (*entity.Role, error)
	GetByIDs(context.Context, []int64) ([]entity.Role, error)
	GetByGuildID(context.Context, int64) ([]entity.Role, error)
}

type roleRepository struct{}

func NewRoleRepository() RoleRepository {
	return &roleRepository{}
}

func (r *roleRepository) Create(ctx context.Context, e *entity.Role) error {
	return xcontext.DB(ctx).Create(e).Error
}

func (r *roleRepository) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	result := entity.Role{}
	if err := xcontext.DB(ctx).Take(&result, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *roleRepository) GetByIDs(ctx context.Context, ids []int64) ([]entity.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	result := []entity.Role{}
	if err := xcontext.DB(ctx).Find(&result, "id IN (?)", ids).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *roleRepository) GetByGuildID(ctx context.Context, guildID int64) ([]entity.Role, error) {
	result := []entity.Role{}
	err := xcontext.DB(ctx).
		Order("position").
		Find(&result, "guild_id=?", guildID).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
