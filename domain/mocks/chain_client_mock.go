package mocks

import (
	"context"

	"github.com/dexroute/rcs/domain/mvc"
)

var _ mvc.ChainClient = &ChainClientMock{}

// ChainClientMock is a mock implementation of the ChainClient interface
type ChainClientMock struct {
	GetLatestHeightFunc func(ctx context.Context) (uint64, error)
}

// GetLatestHeight implements mvc.ChainClient.
func (m *ChainClientMock) GetLatestHeight(ctx context.Context) (uint64, error) {
	if m.GetLatestHeightFunc != nil {
		return m.GetLatestHeightFunc(ctx)
	}

	panic("unimplemented")
}
