package numberutil

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const BucketDuration int64 = 1000 * 60 * 60 * 24 * 10 // 10 days

// BucketFrom returns the bucket of the snowflake id. A zero id means the
// bucket of the current time.
func BucketFrom(id int64) int64 {
	if id != 0 {
		sfID := snowflake.ParseInt64(id)
		return sfID.Time() / BucketDuration
	}

	return BucketAt(time.Now())
}

func BucketAt(t time.Time) int64 {
	return t.UnixMilli() / BucketDuration
}

// FirstIDAt returns the smallest snowflake id generated at t.
func FirstIDAt(t time.Time) int64 {
	return (t.UnixMilli() - snowflake.Epoch) << (snowflake.NodeBits + snowflake.StepBits)
}
