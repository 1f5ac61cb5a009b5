package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"time"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/pkg/xcontext"
)

// SampleUser creates a new user in database with a fresh id. The sample user
// can be overwritten by non-zero fields of init.
func SampleUser(ctx context.Context, init *entity.User) entity.User {
	id := xcontext.SnowFlake(ctx).Generate().Int64()
	sample := &entity.User{
		SnowFlakeBase: entity.SnowFlakeBase{ID: id},
		Username:      fmt.Sprintf("user-%d", id),
		Discriminator: "0001",
		Email:         fmt.Sprintf("user-%d@ekranoplan.dev", id),
	}

	return create(ctx, sample, init)
}

func SampleGuild(ctx context.Context, init *entity.Guild) entity.Guild {
	id := xcontext.SnowFlake(ctx).Generate().Int64()
	sample := &entity.Guild{
		SnowFlakeBase: entity.SnowFlakeBase{ID: id},
		Name:          fmt.Sprintf("guild-%d", id),
	}

	return create(ctx, sample, init)
}

func SampleRole(ctx context.Context, init *entity.Role) entity.Role {
	id := xcontext.SnowFlake(ctx).Generate().Int64()
	sample := &entity.Role{
		SnowFlakeBase: entity.SnowFlakeBase{ID: id},
		Name:          fmt.Sprintf("role-%d", id),
	}

	return create(ctx, sample, init)
}

// SampleMember joins the user to the guild. Both ids must be set in init.
func SampleMember(ctx context.Context, init *entity.Member) entity.Member {
	sample := &entity.Member{JoinedAt: time.Now()}
	return create(ctx, sample, init)
}

// SampleChannel creates a channel placed after every existing channel of
// the guild unless init says otherwise.
func SampleChannel(ctx context.Context, init *entity.GuildChannel) entity.GuildChannel {
	id := xcontext.SnowFlake(ctx).Generate().Int64()
	sample := &entity.GuildChannel{
		SnowFlakeBase: entity.SnowFlakeBase{ID: id},
		Name:          fmt.Sprintf("channel-%d", id),
		ParentID:      sql.NullInt64{},
	}

	if init == nil || init.Position == 0 {
		var guildID int64
		if init != nil {
			guildID = init.GuildID
		}

		var maxPosition sql.NullInt64
		err := xcontext.DB(ctx).Model(&entity.GuildChannel{}).
			Select("MAX(position)").
			Where("guild_id=?", guildID).
			Scan(&maxPosition).Error
		if err != nil {
			panic(err)
		}
		sample.Position = int(maxPosition.Int64) + 1
	}

	return create(ctx, sample, init)
}

func create[T any](ctx context.Context, sample *T, init *T) T {
	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := xcontext.DB(ctx).Create(sample).Error; err != nil {
		panic(err)
	}

	return *sample
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
