package http

import (
	"github.com/dexroute/rcs/domain"
	"github.com/dexroute/rcs/domain/mvc"
	"github.com/dexroute/rcs/log"
)

func ExtractVersion(ldFlagsValueStr string) (string, error) {
	return extractVersion(ldFlagsValueStr)
}

func NewTestSystemHandler(config domain.Config, repository mvc.RouteCacheRepository, chainClient mvc.ChainClient) *SystemHandler {
	return &SystemHandler{
		logger:       &log.NoOpLogger{},
		RCRepository: repository,
		ChainClient:  chainClient,
		config:       config,
	}
}
