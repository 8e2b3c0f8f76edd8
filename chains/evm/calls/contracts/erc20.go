// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/consts"
)

type ERC20Contract struct {
	Contract
}

func NewERC20Contract(
	caller ContractCaller,
	address common.Address,
) *ERC20Contract {
	return &ERC20Contract{
		Contract: NewContract(address, consts.ERC20ABI, caller),
	}
}

func (c *ERC20Contract) Decimals(ctx context.Context) (uint8, error) {
	res, err := c.CallContract(ctx, "decimals")
	if err != nil {
		return 0, err
	}

	return *abi.ConvertType(res[0], new(uint8)).(*uint8), nil
}

// L1Address returns the parent chain counterpart of a standard bridged token
func (c *ERC20Contract) L1Address(ctx context.Context) (common.Address, error) {
	res, err := c.CallContract(ctx, "l1Address")
	if err != nil {
		return common.Address{}, err
	}

	return *abi.ConvertType(res[0], new(common.Address)).(*common.Address), nil
}

func (c *ERC20Contract) Allowance(ctx context.Context, owner common.Address, spender common.Address) (*big.Int, error) {
	res, err := c.CallContract(ctx, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

func (c *ERC20Contract) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	res, err := c.CallContract(ctx, "balanceOf", account)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

func (c *ERC20Contract) ApproveCalldata(spender common.Address, amount *big.Int) ([]byte, error) {
	return c.PackMethod("approve", spender, amount)
}
