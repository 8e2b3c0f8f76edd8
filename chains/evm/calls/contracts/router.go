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

// DisabledGateway is the gateway a router assigns to tokens that can no longer be bridged
var DisabledGateway = common.HexToAddress("0x0000000000000000000000000000000000000001")

type GatewayRouterContract struct {
	Contract
}

func NewGatewayRouterContract(
	caller ContractCaller,
	address common.Address,
) *GatewayRouterContract {
	return &GatewayRouterContract{
		Contract: NewContract(address, consts.GatewayRouterABI, caller),
	}
}

// Gateway returns the gateway that handles the token, or the default gateway
// of the router if no gateway was registered for it.
func (c *GatewayRouterContract) Gateway(ctx context.Context, token common.Address) (common.Address, error) {
	return c.callAddress(ctx, "getGateway", token)
}

// CalculateL2TokenAddress returns the child chain address of the parent chain token
func (c *GatewayRouterContract) CalculateL2TokenAddress(ctx context.Context, token common.Address) (common.Address, error) {
	return c.callAddress(ctx, "calculateL2TokenAddress", token)
}

// TokenToGateway returns the registered gateway of the token, zero if none was registered
func (c *GatewayRouterContract) TokenToGateway(ctx context.Context, token common.Address) (common.Address, error) {
	return c.callAddress(ctx, "l1TokenToGateway", token)
}

func (c *GatewayRouterContract) callAddress(ctx context.Context, method string, args ...interface{}) (common.Address, error) {
	res, err := c.CallContract(ctx, method, args...)
	if err != nil {
		return common.Address{}, err
	}

	out := *abi.ConvertType(res[0], new(common.Address)).(*common.Address)
	return out, nil
}

type GatewayContract struct {
	Contract
}

type FinalizeInboundTransferInput struct {
	Token  common.Address `abi:"_token"`
	From   common.Address `abi:"_from"`
	To     common.Address `abi:"_to"`
	Amount *big.Int       `abi:"_amount"`
	Data   []byte         `abi:"_data"`
}

func NewGatewayContract() *GatewayContract {
	return &GatewayContract{
		Contract: NewContract(common.Address{}, consts.GatewayABI, nil),
	}
}

// DecodeFinalizeInboundTransfer decodes the child gateway call a token deposit ticket executes
func (c *GatewayContract) DecodeFinalizeInboundTransfer(calldata []byte) (*FinalizeInboundTransferInput, error) {
	res, err := c.UnpackMethodInput("finalizeInboundTransfer", calldata)
	if err != nil {
		return nil, err
	}

	var input FinalizeInboundTransferInput
	err = c.ABI.Methods["finalizeInboundTransfer"].Inputs.Copy(&input, res)
	if err != nil {
		return nil, err
	}
	return &input, nil
}
