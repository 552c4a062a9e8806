package http

import (
	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
	"github.com/dexroute/rcs/log"
)

func NewRouteCacheHandlerWithLogger(us mvc.RouteCacheUsecase, chainClient mvc.ChainClient, chainID domain.ChainID, logger log.Logger) *RouteCacheHandler {
	return &RouteCacheHandler{
		RCUsecase:   us,
		ChainClient: chainClient,
		ChainID:     chainID,
		logger:      logger,
	}
}
