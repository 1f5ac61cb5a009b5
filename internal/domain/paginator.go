package domain

import (
	"context"
	"errors"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/internal/repository"
	"github.com/ekranoplan/backend/pkg/numberutil"
	"github.com/ekranoplan/backend/pkg/xcontext"
	"github.com/gocql/gocql"
)

const defaultMessageLimit = 50

// MessagePaginator reads the messages of a channel across its time buckets.
// A channel never holds messages in a bucket older than its own id.
type MessagePaginator struct {
	messageRepo repository.MessageRepository
}

func NewMessagePaginator(messageRepo repository.MessageRepository) *MessagePaginator {
	return &MessagePaginator{messageRepo: messageRepo}
}

// ListMessages returns at most limit messages older than before (all when
// before is zero), newest first. Buckets are walked from the newest one down
// and the walk stops as soon as the page is full.
func (p *MessagePaginator) ListMessages(
	ctx context.Context,
	channelID, before int64,
	limit int,
) ([]entity.Message, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}

	firstBucket := numberutil.BucketFrom(channelID)
	bucket := numberutil.BucketAt(xcontext.Now(ctx))
	if before > 0 {
		if beforeBucket := numberutil.BucketFrom(before); beforeBucket < bucket {
			bucket = beforeBucket
		}
	}

	maxScanBuckets := xcontext.Configs(ctx).Message.MaxScanBuckets
	result := []entity.Message{}
	for scanned := 0; bucket >= firstBucket && len(result) < limit; scanned++ {
		if maxScanBuckets > 0 && scanned >= maxScanBuckets {
			break
		}

		messages, err := p.messageRepo.GetListByBucket(ctx, repository.BucketFilter{
			ChannelID: channelID,
			Bucket:    bucket,
			Before:    before,
			Limit:     limit - len(result),
		})
		if err != nil {
			return nil, err
		}

		result = append(result, messages...)
		bucket--
	}

	if len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

// GetMessage returns nil without error if the message does not exist in the
// channel.
func (p *MessagePaginator) GetMessage(
	ctx context.Context,
	channelID, messageID int64,
) (*entity.Message, error) {
	if messageID <= 0 {
		return nil, nil
	}

	bucket := numberutil.BucketFrom(messageID)
	if bucket < numberutil.BucketFrom(channelID) || bucket > numberutil.BucketAt(xcontext.Now(ctx)) {
		return nil, nil
	}

	msg, err := p.messageRepo.Get(ctx, messageID, channelID, bucket)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return msg, nil
}
