// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package teleport

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/sprintertech/sprinter-teleport/bridger"
	"github.com/sprintertech/sprinter-teleport/retryable"
)

var (
	depositCMD = &cobra.Command{
		Use:   "deposit",
		Short: "Teleport L1 coin or tokens to L3",
		Long:  "Plans the gas of every hop and sends the teleport from the configured L1 key",
		RunE:  deposit,
	}
)

var (
	depositToken  string
	depositAmount string
	depositTo     string
	depositEth    bool
	depositRelay  bool
	skipGasToken  bool
)

func init() {
	depositCMD.PersistentFlags().StringVar(&depositToken, "l1-token", "", "L1 token to teleport")
	depositCMD.PersistentFlags().StringVar(&depositAmount, "amount", "", "amount in the smallest token unit")
	depositCMD.PersistentFlags().StringVar(&depositTo, "to", "", "L3 recipient, defaults to the sender")
	depositCMD.PersistentFlags().BoolVar(&depositEth, "eth", false, "teleport the L1 coin instead of a token")
	depositCMD.PersistentFlags().BoolVar(&depositRelay, "relayed", false, "leave the L2 forwarder call to a relayer")
	depositCMD.PersistentFlags().BoolVar(&skipGasToken, "skip-gas-token", false, "do not bridge the L3 fee token")
	_ = depositCMD.MarkPersistentFlagRequired("amount")
}

func deposit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	amount, err := parseAmount(depositAmount)
	if err != nil {
		return err
	}

	route, err := loadRoute(ctx)
	if err != nil {
		return err
	}
	signer, err := route.L1.Signer()
	if err != nil {
		return err
	}

	to := signer.From()
	if depositTo != "" {
		if !common.IsHexAddress(depositTo) {
			return fmt.Errorf("invalid recipient %s", depositTo)
		}
		to = common.HexToAddress(depositTo)
	}

	if depositEth {
		b, err := bridger.NewEthBridger(route.Triple, retryable.NewWatcher())
		if err != nil {
			return err
		}
		req, err := b.GetDepositRequest(ctx, bridger.EthDepositParams{
			Amount: amount,
			From:   signer.From(),
			To:     to,
		}, route.L1.Client, route.L2.Client, route.L3.Client)
		if err != nil {
			return err
		}
		tx, err := b.Deposit(ctx, req, signer)
		if err != nil {
			return err
		}
		fmt.Printf("Sent coin teleport %s\n", tx.Hash().Hex())
		return nil
	}

	if !common.IsHexAddress(depositToken) {
		return fmt.Errorf("invalid l1 token %s", depositToken)
	}
	params := bridger.Erc20DepositParams{
		L1Token:      common.HexToAddress(depositToken),
		Amount:       amount,
		From:         signer.From(),
		To:           to,
		SkipGasToken: skipGasToken,
	}

	if depositRelay {
		b, err := tokenBridger(route)
		if err != nil {
			return err
		}
		req, err := b.GetDepositRequest(ctx, params, route.L1.Client, route.L2.Client, route.L3.Client)
		if err != nil {
			return err
		}
		result, err := b.Deposit(ctx, req, signer)
		if err != nil {
			return err
		}
		fmt.Printf("Sent relayed teleport %s\n", result.Tx.Hash().Hex())
		return printJSON(result.RelayerInfo)
	}

	b, err := bridger.NewErc20Bridger(route.Triple, retryable.NewWatcher())
	if err != nil {
		return err
	}
	req, err := b.GetDepositRequest(ctx, params, route.L1.Client, route.L2.Client, route.L3.Client)
	if err != nil {
		return err
	}
	tx, err := b.Deposit(ctx, req, signer)
	if err != nil {
		return err
	}
	fmt.Printf("Sent token teleport %s to forwarder %s\n", tx.Hash().Hex(), req.Forwarder.Hex())
	return nil
}
