package kv_di

import (
	"context"

	"github.com/lintang-b-s/intersection-graph/pkg/kvdb"

	"github.com/spf13/viper"
	bolt "go.etcd.io/bbolt"
)

func New(ctx context.Context) (*kvdb.KVDB, error) {
	viper.SetDefault("BBOLT_PATH", "intersections.db")

	db, err := bolt.Open(viper.GetString("BBOLT_PATH"), 0600, nil)
	if err != nil {
		return nil, err
	}

	bboltKV, err := kvdb.NewKVDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	cleanup := func() {
		_ = db.Close()
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		cleanup()
	}()

	return bboltKV, nil
}
