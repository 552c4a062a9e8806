package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrTxNotActive is returned when operating on a transaction that was not started.
var ErrTxNotActive = errors.New("transaction is not in progress")

// Tx defines an interface for atomic transaction.
type Tx interface {
	// Exec executes the transaction.
	// Returns an error if transaction is not in progress.
	Exec(context.Context) error

	// IsActive returns true if transaction is in progress.
	IsActive() bool

	// AsRedisTx returns a redis transaction.
	// Returns an error if this is not a redis transaction.
	AsRedisTx() (*RedisTx, error)
}

// TxManager defines an interface for atomic transaction manager.
type TxManager interface {
	// StartTx starts a new atomic transaction.
	StartTx() Tx
	// Ping checks that the underlying storage is reachable.
	Ping(ctx context.Context) error
}

// RedisTx is a redis transaction.
type RedisTx struct {
	pipeliner redis.Pipeliner
}

var _ Tx = &RedisTx{}

// NewRedisTx creates a new redis transaction.
func NewRedisTx(pipeliner redis.Pipeliner) *RedisTx {
	return &RedisTx{
		pipeliner: pipeliner,
	}
}

// Exec implements Tx.
func (rt *RedisTx) Exec(ctx context.Context) error {
	if !rt.IsActive() {
		return ErrTxNotActive
	}

	_, err := rt.pipeliner.Exec(ctx)
	return err
}

// IsActive implements Tx.
func (rt *RedisTx) IsActive() bool {
	return rt.pipeliner != nil
}

// AsRedisTx implements Tx.
func (rt *RedisTx) AsRedisTx() (*RedisTx, error) {
	return rt, nil
}

// GetPipeliner returns a redis pipeliner for the transaction.
// Returns an error if the transaction is not in progress.
func (rt *RedisTx) GetPipeliner(ctx context.Context) (redis.Pipeliner, error) {
	if !rt.IsActive() {
		return nil, ErrTxNotActive
	}

	return rt.pipeliner, nil
}
