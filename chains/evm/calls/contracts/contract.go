// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
)

// ContractCaller is the read side of client.EVMClient.
type ContractCaller interface {
	CallContract(ctx context.Context, callArgs map[string]interface{}, blockNumber *big.Int) ([]byte, error)
}

// Contract extends the sygma-core contract with context aware calls.
// The caller is optional for contracts that are only used to build or
// decode transaction data.
type Contract struct {
	contracts.Contract
	address common.Address
	caller  ContractCaller
}

func NewContract(address common.Address, contractABI abi.ABI, caller ContractCaller) Contract {
	return Contract{
		Contract: contracts.NewContract(address, contractABI, nil, nil, nil),
		address:  address,
		caller:   caller,
	}
}

func (c *Contract) Address() common.Address {
	return c.address
}

// CallContract executes a call of the method at the latest block and returns
// the unpacked outputs. Call errors, reverts included, are returned as is.
func (c *Contract) CallContract(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	if c.caller == nil {
		return nil, fmt.Errorf("no caller configured for contract %s", c.address.Hex())
	}

	input, err := c.PackMethod(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed packing %s: %w", method, err)
	}

	to := c.address
	out, err := c.caller.CallContract(ctx, client.ToCallArg(ethereum.CallMsg{To: &to, Data: input}), nil)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 && len(c.ABI.Methods[method].Outputs) > 0 {
		return nil, fmt.Errorf("no code at %s for %s call", c.address.Hex(), method)
	}

	res, err := c.UnpackResult(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed unpacking %s result: %w", method, err)
	}
	return res, nil
}

// UnpackMethodInput verifies the calldata selector belongs to the method
// and returns the decoded arguments.
func (c *Contract) UnpackMethodInput(method string, calldata []byte) ([]interface{}, error) {
	m, ok := c.ABI.Methods[method]
	if !ok {
		return nil, fmt.Errorf("unknown method %s", method)
	}
	if len(calldata) < 4 || !bytes.Equal(calldata[:4], m.ID) {
		return nil, fmt.Errorf("calldata is not a %s call", method)
	}

	return m.Inputs.Unpack(calldata[4:])
}
