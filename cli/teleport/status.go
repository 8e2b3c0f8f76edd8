// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package teleport

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/sprintertech/sprinter-teleport/bridger"
	"github.com/sprintertech/sprinter-teleport/retryable"
)

var (
	statusCMD = &cobra.Command{
		Use:   "status",
		Short: "Print the status of every hop of a teleport",
		RunE:  status,
	}
)

var (
	statusTx  string
	statusEth bool
)

func init() {
	statusCMD.PersistentFlags().StringVar(&statusTx, "tx", "", "L1 teleport transaction hash")
	statusCMD.PersistentFlags().BoolVar(&statusEth, "eth", false, "the teleport moved the L1 coin")
	_ = statusCMD.MarkPersistentFlagRequired("tx")
}

func status(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	hash, err := parseHash(statusTx)
	if err != nil {
		return err
	}

	route, err := loadRoute(ctx)
	if err != nil {
		return err
	}
	receipt, err := route.L1.Client.TransactionReceipt(ctx, hash)
	if err != nil {
		return err
	}

	if statusEth {
		b, err := bridger.NewEthBridger(route.Triple, retryable.NewWatcher())
		if err != nil {
			return err
		}
		s, err := b.GetDepositStatus(ctx, receipt, route.L2.Client, route.L3.Client)
		if err != nil {
			return err
		}
		return printJSON(s)
	}

	b, err := tokenBridger(route)
	if err != nil {
		return err
	}
	s, err := b.GetDepositStatus(ctx, receipt, route.L2.Client, route.L3.Client)
	if err != nil {
		return err
	}
	return printJSON(s)
}
