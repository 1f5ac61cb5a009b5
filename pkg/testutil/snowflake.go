package testutil

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ekranoplan/backend/pkg/numberutil"
)

// IDAt returns a snowflake id generated at t with the given sequence number.
func IDAt(t time.Time, step int64) int64 {
	return numberutil.FirstIDAt(t) | (step & (1<<snowflake.StepBits - 1))
}

// IDInBucket returns an id generated offset after the start of bucket.
func IDInBucket(bucket int64, offset time.Duration, step int64) int64 {
	start := time.UnixMilli(bucket * numberutil.BucketDuration)
	return IDAt(start.Add(offset), step)
}
