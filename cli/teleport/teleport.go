// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package teleport

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"github.com/sprintertech/sprinter-teleport/app"
	"github.com/sprintertech/sprinter-teleport/bridger"
	"github.com/sprintertech/sprinter-teleport/retryable"
)

var TeleportCLI = &cobra.Command{
	Use:   "teleport",
	Short: "Teleport commands",
	Long:  "Send, approve, inspect and relay L1 to L3 teleports",
}

func init() {
	TeleportCLI.AddCommand(depositCMD, approveCMD, statusCMD, relayCMD)
}

func loadRoute(ctx context.Context) (*app.Route, error) {
	configuration, err := app.LoadConfig()
	if err != nil {
		return nil, err
	}
	return app.NewRoute(ctx, configuration)
}

func tokenBridger(route *app.Route) (*bridger.RelayedErc20Bridger, error) {
	return bridger.NewRelayedErc20Bridger(route.Triple, retryable.NewWatcher())
}

func parseAmount(amount string) (*big.Int, error) {
	a, ok := new(big.Int).SetString(amount, 10)
	if !ok || a.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %s", amount)
	}
	return a, nil
}

func parseHash(hash string) (common.Hash, error) {
	b, err := hexutil.Decode(hash)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid transaction hash %s", hash)
	}
	return common.BytesToHash(b), nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
