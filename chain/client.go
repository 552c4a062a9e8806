package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	deliveryhttp "github.com/dexroute/rcs/delivery/http"
	"github.com/dexroute/rcs/domain/mvc"
)

// Client reads the latest block of an EVM chain.
type Client interface {
	mvc.ChainClient

	Close()
}

type chainClient struct {
	ethClient *ethclient.Client
}

var _ Client = &chainClient{}

// NewClient dials the EVM JSON-RPC endpoint. Requests go through the instrumented default HTTP client.
func NewClient(ctx context.Context, rpcEndpoint string) (Client, error) {
	rpcClient, err := rpc.DialOptions(ctx, rpcEndpoint, rpc.WithHTTPClient(deliveryhttp.DefaultClient))
	if err != nil {
		return nil, err
	}

	return &chainClient{
		ethClient: ethclient.NewClient(rpcClient),
	}, nil
}

// GetLatestHeight implements mvc.ChainClient.
func (c *chainClient) GetLatestHeight(ctx context.Context) (uint64, error) {
	return c.ethClient.BlockNumber(ctx)
}

// Close closes the underlying RPC connection.
func (c *chainClient) Close() {
	c.ethClient.Close()
}
