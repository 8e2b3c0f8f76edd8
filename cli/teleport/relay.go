// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package teleport

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sprintertech/sprinter-teleport/bridger"
)

var (
	relayCMD = &cobra.Command{
		Use:   "relay",
		Short: "Call the L2 forwarder of a relayed teleport",
		Long:  "Decodes the relayer info from the L1 teleport and calls the forwarder factory from the configured L2 key",
		RunE:  relay,
	}
)

var (
	relayTx string
)

func init() {
	relayCMD.PersistentFlags().StringVar(&relayTx, "tx", "", "L1 teleport transaction hash")
	_ = relayCMD.MarkPersistentFlagRequired("tx")
}

func relay(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	hash, err := parseHash(relayTx)
	if err != nil {
		return err
	}

	route, err := loadRoute(ctx)
	if err != nil {
		return err
	}
	tx, _, err := route.L1.Client.TransactionByHash(ctx, hash)
	if err != nil {
		return err
	}
	info, err := bridger.ParseRelayerInfoFromTx(tx.To(), tx.Data())
	if err != nil {
		return err
	}

	signer, err := route.L2.Signer()
	if err != nil {
		return err
	}
	forwarderCall, err := bridger.RelayDeposit(ctx, route.Registry, info, signer)
	if err != nil {
		return err
	}

	fmt.Printf("Called forwarder in %s\n", forwarderCall.Hash().Hex())
	return nil
}
