// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/viper"
	"github.com/sprintertech/sprinter-teleport/config"
)

// KeyEnvPrefix prefixes the environment variable that overrides the key of a chain
const KeyEnvPrefix = "TELEPORT_KEY_"

var endpointSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

type GeneralChainConfig struct {
	Name               string  `mapstructure:"name"`
	Id                 *uint64 `mapstructure:"id"`
	Endpoint           string  `mapstructure:"endpoint"`
	Type               string  `mapstructure:"type"`
	BlockstorePath     string  `mapstructure:"blockstorePath" default:"./lvldbdata"`
	Blocktime          uint64  `mapstructure:"blocktime" default:"12"`
	BlockConfirmations uint64  `mapstructure:"blockConfirmations" default:"5"`
	// Key signs the transactions sent on the chain, read only chains leave it empty
	Key string `mapstructure:"key"`
}

func (c *GeneralChainConfig) Validate() error {
	if c.Id == nil {
		return fmt.Errorf("required field chain.Id empty for chain %v", c.Name)
	}
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty for chain %v", *c.Id)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %v", *c.Id)
	}

	u, err := url.Parse(c.Endpoint)
	if err != nil || !endpointSchemes[u.Scheme] {
		return fmt.Errorf("invalid endpoint %s of chain %v", c.Endpoint, *c.Id)
	}
	return nil
}

// ParseFlags applies the blockstore flag and the key of the chain from the
// environment, both take precedence over the config file
func (c *GeneralChainConfig) ParseFlags() {
	blockstore := viper.GetString(config.BlockstoreFlagName)
	if blockstore != "" {
		c.BlockstorePath = blockstore
	}

	if c.Id == nil {
		return
	}
	key := os.Getenv(fmt.Sprintf("%s%d", KeyEnvPrefix, *c.Id))
	if key != "" {
		c.Key = key
	}
}
