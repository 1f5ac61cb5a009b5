package mocks

import (
	"context"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MessageRepository struct {
	mock.Mock
}

func (r *MessageRepository) Create(arg1 context.Context, arg2 *entity.Message) error {
	args := r.Called(arg1, arg2)
	return args.Error(0)
}

func (r *MessageRepository) Get(arg1 context.Context, arg2, arg3, arg4 int64) (*entity.Message, error) {
	args := r.Called(arg1, arg2, arg3, arg4)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Message), args.Error(1)
}

func (r *MessageRepository) GetListByBucket(arg1 context.Context, arg2 repository.BucketFilter) ([]entity.Message, error) {
	args := r.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Message), args.Error(1)
}

type MemberRepository struct {
	mock.Mock
}

func (r *MemberRepository) Create(arg1 context.Context, arg2 *entity.Member) error {
	args := r.Called(arg1, arg2)
	return args.Error(0)
}

func (r *MemberRepository) Get(arg1 context.Context, arg2, arg3 int64) (*entity.Member, error) {
	args := r.Called(arg1, arg2, arg3)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Member), args.Error(1)
}

type RoleRepository struct {
	mock.Mock
}

func (r *RoleRepository) Create(arg1 context.Context, arg2 *entity.Role) error {
	args := r.Called(arg1, arg2)
	return args.Error(0)
}

func (r *RoleRepository) GetByID(arg1 context.Context, arg2 int64) (*entity.Role, error) {
	args := r.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

func (r *RoleRepository) GetByIDs(arg1 context.Context, arg2 []int64) ([]entity.Role, error) {
	args := r.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Role), args.Error(1)
}

func (r *RoleRepository) GetByGuildID(arg1 context.Context, arg2 int64) ([]entity.Role, error) {
	args := r.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Role), args.Error(1)
}

type ChannelRepository struct {
	mock.Mock
}

func (r *ChannelRepository) Create(arg1 context.Context, arg2 *entity.GuildChannel) error {
	args := r.Called(arg1, arg2)
	return args.Error(0)
}

func (r *ChannelRepository) GetByID(arg1 context.Context, arg2, arg3 int64) (*entity.GuildChannel, error) {
	args := r.Called(arg1, arg2, arg3)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GuildChannel), args.Error(1)
}

func (r *ChannelRepository) GetByGuildID(arg1 context.Context, arg2 int64) ([]entity.GuildChannel, error) {
	args := r.Called(arg1, arg2)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GuildChannel), args.Error(1)
}
