// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-teleport/network"
)

type TokenBridgeConfig struct {
	ParentGatewayRouter string `mapstructure:"parentGatewayRouter"`
	ChildGatewayRouter  string `mapstructure:"childGatewayRouter"`
	ParentERC20Gateway  string `mapstructure:"parentErc20Gateway"`
	ChildERC20Gateway   string `mapstructure:"childErc20Gateway"`
	ParentWethGateway   string `mapstructure:"parentWethGateway"`
	ChildWethGateway    string `mapstructure:"childWethGateway"`
	ParentWeth          string `mapstructure:"parentWeth"`
	ChildWeth           string `mapstructure:"childWeth"`
}

type TeleporterConfig struct {
	L1Teleporter              string `mapstructure:"l1Teleporter"`
	L2ForwarderFactory        string `mapstructure:"l2ForwarderFactory"`
	L2ForwarderImplementation string `mapstructure:"l2ForwarderImplementation"`
}

// NetworkConfig is the configured description of a child chain
type NetworkConfig struct {
	Name          string            `mapstructure:"name"`
	ChainID       uint64            `mapstructure:"chainId"`
	ParentChainID uint64            `mapstructure:"parentChainId"`
	Bridge        string            `mapstructure:"bridge"`
	Inbox         string            `mapstructure:"inbox"`
	NativeToken   string            `mapstructure:"nativeToken"`
	TokenBridge   TokenBridgeConfig `mapstructure:"tokenBridge"`
	Teleporter    *TeleporterConfig `mapstructure:"teleporter"`
}

func (c NetworkConfig) ToNetwork() (network.Network, error) {
	p := addressParser{}
	n := network.Network{
		ChainID:       c.ChainID,
		ParentChainID: c.ParentChainID,
		Name:          c.Name,
		EthBridge: network.EthBridge{
			Bridge: p.required("bridge", c.Bridge),
			Inbox:  p.required("inbox", c.Inbox),
		},
		TokenBridge: network.TokenBridge{
			ParentGatewayRouter: p.required("tokenBridge.parentGatewayRouter", c.TokenBridge.ParentGatewayRouter),
			ChildGatewayRouter:  p.required("tokenBridge.childGatewayRouter", c.TokenBridge.ChildGatewayRouter),
			ParentERC20Gateway:  p.required("tokenBridge.parentErc20Gateway", c.TokenBridge.ParentERC20Gateway),
			ChildERC20Gateway:   p.required("tokenBridge.childErc20Gateway", c.TokenBridge.ChildERC20Gateway),
			ParentWethGateway:   p.optional("tokenBridge.parentWethGateway", c.TokenBridge.ParentWethGateway),
			ChildWethGateway:    p.optional("tokenBridge.childWethGateway", c.TokenBridge.ChildWethGateway),
			ParentWeth:          p.optional("tokenBridge.parentWeth", c.TokenBridge.ParentWeth),
			ChildWeth:           p.optional("tokenBridge.childWeth", c.TokenBridge.ChildWeth),
		},
		NativeToken: p.optional("nativeToken", c.NativeToken),
	}

	if c.Teleporter != nil {
		n.Teleporter = &network.TeleporterContracts{
			L1Teleporter:              p.required("teleporter.l1Teleporter", c.Teleporter.L1Teleporter),
			L2ForwarderFactory:        p.required("teleporter.l2ForwarderFactory", c.Teleporter.L2ForwarderFactory),
			L2ForwarderImplementation: p.required("teleporter.l2ForwarderImplementation", c.Teleporter.L2ForwarderImplementation),
		}
	}

	if p.err != nil {
		return network.Network{}, fmt.Errorf("network %d: %w", c.ChainID, p.err)
	}
	return n, n.Validate()
}

// addressParser keeps the first invalid address it sees
type addressParser struct {
	err error
}

func (p *addressParser) required(field string, value string) common.Address {
	if value == "" && p.err == nil {
		p.err = fmt.Errorf("required field %s empty", field)
	}
	return p.optional(field, value)
}

func (p *addressParser) optional(field string, value string) common.Address {
	if value == "" {
		return common.Address{}
	}
	if !common.IsHexAddress(value) {
		if p.err == nil {
			p.err = fmt.Errorf("invalid address %s for field %s", value, field)
		}
		return common.Address{}
	}
	return common.HexToAddress(value)
}
