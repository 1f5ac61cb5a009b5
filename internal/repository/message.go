package repository

import (
	"context"

	"github.com/ekranoplan/backend/internal/entity"
	"github.com/ekranoplan/backend/pkg/cqlutil"
	"github.com/ekranoplan/backend/pkg/reflectutil"
	"github.com/scylladb/gocqlx/v2"
	"github.com/scylladb/gocqlx/v2/qb"
	"github.com/scylladb/gocqlx/v2/table"
)

// BucketFilter selects messages of a single (channel, bucket) partition,
// newest first. Before is exclusive and ignored when zero.
type BucketFilter struct {
	ChannelID int64
	Bucket    int64
	Before    int64
	Limit     int
}

type MessageRepository interface {
	Create(ctx context.Context, data *entity.Message) error

	// Get returns gocql.ErrNotFound if the message is not stored in the
	// given bucket.
	Get(ctx context.Context, id, channelID, bucket int64) (*entity.Message, error)
	GetListByBucket(ctx context.Context, filter BucketFilter) ([]entity.Message, error)
}

type messageRepository struct {
	session gocqlx.Session
	tbl     *table.Table
}

func NewMessageRepository(session gocqlx.Session) MessageRepository {
	e := &entity.Message{}
	m := table.Metadata{
		Name:    e.TableName(),
		Columns: reflectutil.GetColumnNames(e),
		PartKey: []string{"channel_id", "bucket"},
		SortKey: []string{"id"},
	}

	return &messageRepository{
		session: session,
		tbl:     table.New(m),
	}
}

func (r *messageRepository) Create(ctx context.Context, data *entity.Message) error {
	return cqlutil.Insert(ctx, r.session, r.tbl, data)
}

func (r *messageRepository) Get(ctx context.Context, id, channelID, bucket int64) (*entity.Message, error) {
	var result entity.Message
	stmt, names := r.tbl.Get()
	err := r.session.Query(stmt, names).
		WithContext(ctx).
		BindMap(qb.M{"channel_id": channelID, "bucket": bucket, "id": id}).
		GetRelease(&result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *messageRepository) GetListByBucket(ctx context.Context, filter BucketFilter) ([]entity.Message, error) {
	builder := qb.Select(r.tbl.Name()).
		Columns(r.tbl.Metadata().Columns...).
		Where(qb.Eq("channel_id"), qb.Eq("bucket"))

	if filter.Before > 0 {
		builder = builder.Where(qb.Lt("id"))
	}

	stmt, names := builder.
		OrderBy("id", qb.DESC).
		Limit(uint(filter.Limit)).
		ToCql()

	var result []entity.Message
	err := r.session.Query(stmt, names).
		WithContext(ctx).
		BindMap(qb.M{"channel_id": filter.ChannelID, "bucket": filter.Bucket, "id": filter.Before}).
		SelectRelease(&result)
	if err != nil {
		return nil, err
	}

	return result, nil
}
