package redisrepo

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/dexroute/rcs/repository"
)

// RedisTxManager is a structure encapsulating creation of atomic transactions.
type RedisTxManager struct {
	client *redis.Client
}

var (
	_ repository.TxManager = &RedisTxManager{}
)

// NewTxManager creates a new TxManager.
func NewTxManager(redisClient *redis.Client) repository.TxManager {
	return &RedisTxManager{
		client: redisClient,
	}
}

// StartTx implements repository.TxManager.
func (rm *RedisTxManager) StartTx() repository.Tx {
	return repository.NewRedisTx(rm.client.TxPipeline())
}

// Ping implements repository.TxManager.
func (rm *RedisTxManager) Ping(ctx context.Context) error {
	return rm.client.Ping(ctx).Err()
}
