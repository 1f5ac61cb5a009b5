package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/internal/repository"
	"github.com/gocql/gocql"
)

type partition struct {
	channelID int64
	bucket    int64
}

// MemoryMessageRepository keeps messages in memory, partitioned and ordered
// like the messages table. It records every bucket query it serves.
type MemoryMessageRepository struct {
	mu         sync.Mutex
	partitions map[partition][]entity.Message
	queries    []repository.BucketFilter
}

func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{partitions: make(map[partition][]entity.Message)}
}

func (r *MemoryMessageRepository) Create(ctx context.Context, data *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := partition{channelID: data.ChannelID, bucket: data.Bucket}
	messages := r.partitions[key]
	for i := range messages {
		if messages[i].ID == data.ID {
			messages[i] = *data
			return nil
		}
	}

	messages = append(messages, *data)
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID > messages[j].ID })
	r.partitions[key] = messages
	return nil
}

func (r *MemoryMessageRepository) Get(ctx context.Context, id, channelID, bucket int64) (*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, msg := range r.partitions[partition{channelID: channelID, bucket: bucket}] {
		if msg.ID == id {
			result := msg
			return &result, nil
		}
	}

	return nil, gocql.ErrNotFound
}

func (r *MemoryMessageRepository) GetListByBucket(
	ctx context.Context, filter repository.BucketFilter,
) ([]entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queries = append(r.queries, filter)

	result := []entity.Message{}
	for _, msg := range r.partitions[partition{channelID: filter.ChannelID, bucket: filter.Bucket}] {
		if len(result) >= filter.Limit {
			break
		}

		if filter.Before > 0 && msg.ID >= filter.Before {
			continue
		}

		result = append(result, msg)
	}

	return result, nil
}

// Queries returns the bucket queries served so far.
func (r *MemoryMessageRepository) Queries() []repository.BucketFilter {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]repository.BucketFilter(nil), r.queries...)
}
