// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/consts"
)

type RetryableGasParams struct {
	L2GasPriceBid                       *big.Int
	L3GasPriceBid                       *big.Int
	L2ForwarderFactoryGasLimit          *big.Int
	L1l2FeeTokenBridgeGasLimit          *big.Int
	L1l2TokenBridgeGasLimit             *big.Int
	L2l3TokenBridgeGasLimit             *big.Int
	L2ForwarderFactoryMaxSubmissionCost *big.Int
	L1l2FeeTokenBridgeMaxSubmissionCost *big.Int
	L1l2TokenBridgeMaxSubmissionCost    *big.Int
	L2l3TokenBridgeMaxSubmissionCost    *big.Int
}

type TeleportParams struct {
	L1Token           common.Address
	L1FeeToken        common.Address
	L1l2Router        common.Address
	L2l3RouterOrInbox common.Address
	To                common.Address
	Amount            *big.Int
	GasParams         RetryableGasParams
}

type L2ForwarderParams struct {
	Owner          common.Address
	L2Token        common.Address
	RouterOrInbox  common.Address
	To             common.Address
	GasLimit       *big.Int
	GasPriceBid    *big.Int
	RelayerPayment *big.Int
}

type RelayedTeleportInput struct {
	Params          TeleportParams    `abi:"params"`
	ForwarderParams L2ForwarderParams `abi:"forwarderParams"`
	L2ChainId       *big.Int          `abi:"l2ChainId"`
}

type TeleporterContract struct {
	Contract
}

func NewTeleporterContract(address common.Address) *TeleporterContract {
	return &TeleporterContract{
		Contract: NewContract(address, consts.TeleporterABI, nil),
	}
}

func (c *TeleporterContract) TeleportCalldata(params TeleportParams) ([]byte, error) {
	return c.PackMethod("teleport", params)
}

func (c *TeleporterContract) RelayedTeleportCalldata(params TeleportParams, forwarderParams L2ForwarderParams, l2ChainID *big.Int) ([]byte, error) {
	return c.PackMethod("relayedTeleport", params, forwarderParams, l2ChainID)
}

func (c *TeleporterContract) DecodeTeleport(calldata []byte) (*TeleportParams, error) {
	res, err := c.UnpackMethodInput("teleport", calldata)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(TeleportParams)).(*TeleportParams), nil
}

func (c *TeleporterContract) DecodeRelayedTeleport(calldata []byte) (*RelayedTeleportInput, error) {
	res, err := c.UnpackMethodInput("relayedTeleport", calldata)
	if err != nil {
		return nil, err
	}

	var input RelayedTeleportInput
	err = c.ABI.Methods["relayedTeleport"].Inputs.Copy(&input, res)
	if err != nil {
		return nil, err
	}
	return &input, nil
}

type ForwarderFactoryContract struct {
	Contract
}

func NewForwarderFactoryContract(address common.Address) *ForwarderFactoryContract {
	return &ForwarderFactoryContract{
		Contract: NewContract(address, consts.ForwarderFactoryABI, nil),
	}
}

// CallForwarderCalldata builds the factory call that deploys the forwarder
// if it is missing and makes it bridge its balance onwards
func (c *ForwarderFactoryContract) CallForwarderCalldata(params L2ForwarderParams) ([]byte, error) {
	return c.PackMethod("callForwarder", params)
}

func (c *ForwarderFactoryContract) DecodeCallForwarder(calldata []byte) (*L2ForwarderParams, error) {
	res, err := c.UnpackMethodInput("callForwarder", calldata)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(L2ForwarderParams)).(*L2ForwarderParams), nil
}

// UnpackCalledL2Forwarder returns the forwarder address and params of a CalledL2Forwarder log
func (c *ForwarderFactoryContract) UnpackCalledL2Forwarder(data []byte, topics []common.Hash) (common.Address, *L2ForwarderParams, error) {
	if len(topics) != 2 {
		return common.Address{}, nil, fmt.Errorf("invalid CalledL2Forwarder topics")
	}

	res, err := c.ABI.Unpack("CalledL2Forwarder", data)
	if err != nil {
		return common.Address{}, nil, err
	}

	params := abi.ConvertType(res[0], new(L2ForwarderParams)).(*L2ForwarderParams)
	return common.BytesToAddress(topics[1].Bytes()), params, nil
}
