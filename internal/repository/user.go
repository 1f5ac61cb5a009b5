package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/pkg/xcontext"
	"github.com/ekranoplan/backend/pkg/xredis"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}

type userRepository struct {
	redisClient xredis.Client
	ttl         time.Duration
}

// NewUserRepository returns a repository reading users from the database. A
// non-nil redisClient turns GetByID into a read-through cache.
func NewUserRepository(redisClient xredis.Client, ttl time.Duration) UserRepository {
	return &userRepository{redisClient: redisClient, ttl: ttl}
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	if err := xcontext.DB(ctx).Create(data).Error; err != nil {
		return err
	}

	if r.redisClient != nil {
		if err := r.redisClient.Del(ctx, userKey(data.ID)); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot invalidate cached user %d: %v", data.ID, err)
		}
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	if r.redisClient != nil {
		var cached entity.User
		err := r.redisClient.GetObj(ctx, userKey(id), &cached)
		if err == nil {
			return &cached, nil
		}

		if !errors.Is(err, xredis.ErrNil) {
			xcontext.Logger(ctx).Warnf("Cannot get cached user %d: %v", id, err)
		}
	}

	var record entity.User
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	if r.redisClient != nil {
		if err := r.redisClient.SetObj(ctx, userKey(id), record, r.ttl); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot cache user %d: %v", id, err)
		}
	}

	return &record, nil
}
