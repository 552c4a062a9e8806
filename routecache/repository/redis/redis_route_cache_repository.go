package routecacheredisrepo

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/json"
	"github.com/dexroute/rcs/domain/mvc"
	"github.com/dexroute/rcs/repository"
)

type redisRouteCacheRepo struct {
	repositoryManager repository.TxManager
	blockTime         time.Duration
}

const (
	keySeparator = "~"

	routeCachePrefix = "rc" + keySeparator
	routesPrefix     = routeCachePrefix + "routes" + keySeparator
)

var (
	_ mvc.RouteCacheRepository = &redisRouteCacheRepo{}
)

// New creates a redis route cache repository.
// Keys expire (blocks to live + 1) block times after they are written so that
// entries no lookup can serve anymore are evicted by redis.
func New(repositoryManager repository.TxManager, blockTime time.Duration) mvc.RouteCacheRepository {
	return &redisRouteCacheRepo{
		repositoryManager: repositoryManager,
		blockTime:         blockTime,
	}
}

// GetCachedRoutes implements mvc.RouteCacheRepository.
func (r *redisRouteCacheRepo) GetCachedRoutes(ctx context.Context, key domain.RouteCacheKey) (domain.CachedRoutes, bool, error) {
	tx := r.repositoryManager.StartTx()

	redisTx, err := tx.AsRedisTx()
	if err != nil {
		return domain.CachedRoutes{}, false, err
	}

	pipeliner, err := redisTx.GetPipeliner(ctx)
	if err != nil {
		return domain.CachedRoutes{}, false, err
	}

	// Create command to retrieve results.
	getCmd := pipeliner.Get(ctx, getRoutesKey(key))

	_, err = pipeliner.Exec(ctx)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.CachedRoutes{}, false, nil
		}
		return domain.CachedRoutes{}, false, err
	}

	var cachedRoutes domain.CachedRoutes
	if err := json.Unmarshal([]byte(getCmd.Val()), &cachedRoutes); err != nil {
		return domain.CachedRoutes{}, false, err
	}

	return cachedRoutes, true, nil
}

// SetCachedRoutes implements mvc.RouteCacheRepository.
func (r *redisRouteCacheRepo) SetCachedRoutes(ctx context.Context, key domain.RouteCacheKey, cachedRoutes domain.CachedRoutes) error {
	tx := r.repositoryManager.StartTx()

	redisTx, err := tx.AsRedisTx()
	if err != nil {
		return err
	}

	pipeliner, err := redisTx.GetPipeliner(ctx)
	if err != nil {
		return err
	}

	cachedRoutesStr, err := json.Marshal(cachedRoutes)
	if err != nil {
		return err
	}

	cmd := pipeliner.Set(ctx, getRoutesKey(key), cachedRoutesStr, r.expiry(cachedRoutes.BlocksToLive))
	if err := cmd.Err(); err != nil {
		return err
	}

	// Execute transaction.
	return tx.Exec(ctx)
}

// Ping implements mvc.RouteCacheRepository.
func (r *redisRouteCacheRepo) Ping(ctx context.Context) error {
	return r.repositoryManager.Ping(ctx)
}

func (r *redisRouteCacheRepo) expiry(blocksToLive uint64) time.Duration {
	return time.Duration(blocksToLive+1) * r.blockTime
}

func getRoutesKey(key domain.RouteCacheKey) string {
	return routesPrefix + key.String()
}
