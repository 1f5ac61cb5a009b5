package cqlutil

import (
	"context"
	"time"

	"github.com/gocql/gocql"
	"github.com/scylladb/gocqlx/v2"
	"github.com/scylladb/gocqlx/v2/table"
)

func CreateCluster(keyspace string, timeout time.Duration, addrs ...string) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(addrs...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = timeout
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())
	cluster.RetryPolicy = &gocql.ExponentialBackoffRetryPolicy{NumRetries: 3, Min: 50 * time.Millisecond, Max: time.Second}

	return cluster
}

func Connect(cluster *gocql.ClusterConfig) (gocqlx.Session, error) {
	return gocqlx.WrapSession(cluster.CreateSession())
}

// Insert writes data into tbl, binding columns by struct field name.
func Insert(ctx context.Context, session gocqlx.Session, tbl *table.Table, data any) error {
	stmt, names := tbl.Insert()
	return session.Query(stmt, names).WithContext(ctx).BindStruct(data).ExecRelease()
}
