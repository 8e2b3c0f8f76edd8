package handlers

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sprintertech/sprinter-teleport/bridger"
	"github.com/sprintertech/sprinter-teleport/cache"
)

type L1Client interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
}

type DepositStatusReader interface {
	GetDepositStatus(ctx context.Context, receipt *types.Receipt, l2 bridger.ChainClient, l3 bridger.ChainClient) (*bridger.Erc20DepositStatus, error)
}

type JobCacher interface {
	Job(depositTx common.Hash) (cache.Job, error)
}
