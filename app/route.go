// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/sprintertech/sprinter-teleport/chains/evm"
	"github.com/sprintertech/sprinter-teleport/config"
	"github.com/sprintertech/sprinter-teleport/network"
	"github.com/sprintertech/sprinter-teleport/transactor"
	evmClient "github.com/sygmaprotocol/sygma-core/chains/evm/client"
)

// Chain is a configured chain with an open endpoint
type Chain struct {
	Config *evm.EVMConfig
	Client *evmClient.EVMClient
}

// Signer builds a transactor from the chain key
func (c *Chain) Signer() (*transactor.Transactor, error) {
	if c.Config.GeneralChainConfig.Key == "" {
		return nil, fmt.Errorf("no key configured for chain %d", *c.Config.GeneralChainConfig.Id)
	}
	return transactor.NewTransactorFromKey(c.Client, c.Config.GeneralChainConfig.Key)
}

// Route holds the networks and endpoints of the configured l1, l2 and l3 chains
type Route struct {
	Registry *network.Registry
	Triple   network.ChainTriple

	L1 *Chain
	L2 *Chain
	L3 *Chain
}

// LoadConfig reads the configuration selected by the config and config-url flags
func LoadConfig() (*config.Config, error) {
	var err error
	configFlag := viper.GetString(config.ConfigFlagName)
	configURL := viper.GetString("config-url")

	var shared *config.RawConfig
	if configURL != "" {
		shared, err = config.GetSharedConfigFromNetwork(configURL)
		if err != nil {
			return nil, err
		}
	}

	if strings.ToLower(configFlag) == "env" {
		return config.GetConfigFromENV(shared)
	}
	return config.GetConfigFromFile(configFlag, shared)
}

// NewRoute registers the configured networks and dials the chains of the
// route ending at the configured l3
func NewRoute(ctx context.Context, configuration *config.Config) (*Route, error) {
	registry, err := network.NewRegistry(configuration.Networks...)
	if err != nil {
		return nil, err
	}

	triple, err := registry.ChainTriple(configuration.RelayerConfig.L3ChainID)
	if err != nil {
		return nil, err
	}

	chains := make(map[uint64]*Chain)
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				c, err := evm.NewEVMConfig(chainConfig)
				if err != nil {
					return nil, err
				}

				client, err := evmClient.NewEVMClient(c.GeneralChainConfig.Endpoint, nil)
				if err != nil {
					return nil, fmt.Errorf("failed dialing chain %d: %w", *c.GeneralChainConfig.Id, err)
				}
				chainID, err := client.ChainID(ctx)
				if err != nil {
					return nil, fmt.Errorf("failed reading chain id of %s: %w", c.GeneralChainConfig.Name, err)
				}
				if chainID.Uint64() != *c.GeneralChainConfig.Id {
					return nil, fmt.Errorf("endpoint of %s serves chain %s, expected %d", c.GeneralChainConfig.Name, chainID, *c.GeneralChainConfig.Id)
				}

				log.Info().Uint64("chain", *c.GeneralChainConfig.Id).Msgf("Connected to EVM chain %s", c.GeneralChainConfig.Name)
				chains[*c.GeneralChainConfig.Id] = &Chain{
					Config: c,
					Client: client,
				}
			}
		default:
			return nil, fmt.Errorf("type '%s' not recognized", chainConfig["type"])
		}
	}

	route := &Route{
		Registry: registry,
		Triple:   triple,
	}
	for _, r := range []struct {
		chain **Chain
		id    uint64
	}{
		{&route.L1, triple.L1ChainID()},
		{&route.L2, triple.L2ChainID()},
		{&route.L3, triple.L3ChainID()},
	} {
		c, ok := chains[r.id]
		if !ok {
			return nil, fmt.Errorf("no chain configured for network %d", r.id)
		}
		*r.chain = c
	}

	return route, nil
}
