package repository

import (
	"context"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/pkg/xcontext"
)

type MemberRepository interface {
	Create(ctx context.Context, data *entity.Member) error
	Get(ctx context.Context, userID, guildID int64) (*entity.Member, error)
}

type memberRepository struct{}

func NewMemberRepository() MemberRepository {
	return &memberRepository{}
}

func (r *memberRepository) Create(ctx context.Context, data *entity.Member) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *memberRepository) Get(ctx context.Context, userID, guildID int64) (*entity.Member, error) {
	var result entity.Member
	err := xcontext.DB(ctx).
		Where("id=? AND guild_id=?", userID, guildID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
