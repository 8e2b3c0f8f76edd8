// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// EthBridge holds the core messaging contracts of a child chain, deployed on its parent chain
type EthBridge struct {
	Bridge common.Address `json:"bridge"`
	Inbox  common.Address `json:"inbox"`
}

// TokenBridge holds the token bridge contracts between a child chain and its parent chain
type TokenBridge struct {
	ParentGatewayRouter common.Address `json:"parentGatewayRouter"`
	ChildGatewayRouter  common.Address `json:"childGatewayRouter"`
	ParentERC20Gateway  common.Address `json:"parentErc20Gateway"`
	ChildERC20Gateway   common.Address `json:"childErc20Gateway"`
	ParentWethGateway   common.Address `json:"parentWethGateway"`
	ChildWethGateway    common.Address `json:"childWethGateway"`
	ParentWeth          common.Address `json:"parentWeth"`
	ChildWeth           common.Address `json:"childWeth"`
}

// TeleporterContracts are the contracts that drive a parent of parent chain to
// child chain transfer through the chain they are attached to
type TeleporterContracts struct {
	L1Teleporter              common.Address `json:"l1Teleporter"`
	L2ForwarderFactory        common.Address `json:"l2ForwarderFactory"`
	L2ForwarderImplementation common.Address `json:"l2ForwarderImplementation"`
}

// Network describes a child chain relative to its parent chain
type Network struct {
	ChainID       uint64 `json:"chainId"`
	ParentChainID uint64 `json:"parentChainId"`
	Name          string `json:"name"`

	EthBridge   EthBridge   `json:"ethBridge"`
	TokenBridge TokenBridge `json:"tokenBridge"`
	// NativeToken is the parent chain address of the token the chain pays fees in,
	// zero if the chain pays fees in the parent chain coin
	NativeToken common.Address `json:"nativeToken"`

	Teleporter *TeleporterContracts `json:"teleporter,omitempty"`
}

// UsesCustomFeeToken reports whether the chain pays execution fees in a token
func (n Network) UsesCustomFeeToken() bool {
	return n.NativeToken != (common.Address{})
}

func (n Network) Validate() error {
	if n.ChainID == 0 {
		return fmt.Errorf("network %s is missing chain id", n.Name)
	}
	if n.ParentChainID == 0 {
		return fmt.Errorf("network %d is missing parent chain id", n.ChainID)
	}
	if n.EthBridge.Bridge == (common.Address{}) || n.EthBridge.Inbox == (common.Address{}) {
		return fmt.Errorf("network %d is missing bridge contracts", n.ChainID)
	}
	return nil
}
