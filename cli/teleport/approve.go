// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package teleport

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
	"github.com/sprintertech/sprinter-teleport/bridger"
)

var (
	approveCMD = &cobra.Command{
		Use:   "approve",
		Short: "Approve the teleporter to spend an L1 token",
		Long:  "Approves the l1 token, or with --gas-token the l1 counterpart of the L3 fee token",
		RunE:  approve,
	}
)

var (
	approveToken    string
	approveAmount   string
	approveGasToken bool
)

func init() {
	approveCMD.PersistentFlags().StringVar(&approveToken, "l1-token", "", "L1 token to approve")
	approveCMD.PersistentFlags().StringVar(&approveAmount, "amount", "", "allowance, defaults to unlimited")
	approveCMD.PersistentFlags().BoolVar(&approveGasToken, "gas-token", false, "approve the L3 fee token")
}

func approve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	var amount *big.Int
	if approveAmount != "" {
		a, err := parseAmount(approveAmount)
		if err != nil {
			return err
		}
		amount = a
	}

	route, err := loadRoute(ctx)
	if err != nil {
		return err
	}
	signer, err := route.L1.Signer()
	if err != nil {
		return err
	}
	b, err := tokenBridger(route)
	if err != nil {
		return err
	}

	var tx *types.Transaction
	if approveGasToken {
		if amount == nil {
			return fmt.Errorf("gas token approval needs an amount")
		}
		tx, err = b.ApproveGasToken(ctx, amount, route.L1.Client, route.L2.Client, signer)
	} else {
		if !common.IsHexAddress(approveToken) {
			return fmt.Errorf("invalid l1 token %s", approveToken)
		}
		tx, err = b.ApproveToken(ctx, bridger.ApproveParams{
			L1Token: common.HexToAddress(approveToken),
			Amount:  amount,
		}, signer)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Sent approval %s\n", tx.Hash().Hex())
	return nil
}
