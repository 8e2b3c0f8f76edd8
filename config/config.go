// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/sprintertech/sprinter-teleport/network"
)

// EnvConfigName holds the json configuration when the config flag is set to env
const EnvConfigName = "TELEPORT_CONFIG"

type Config struct {
	RelayerConfig RelayerConfig
	Networks      []network.Network
	ChainConfigs  []map[string]interface{}
}

type RelayerConfig struct {
	LogLevel                  zerolog.Level
	OpenTelemetryCollectorURL string
	Env                       string
	Id                        string
	HealthPort                uint16
	ApiAddr                   string
	// L3ChainID selects the route the service bridges to
	L3ChainID         uint64
	MinRelayerPayment *big.Int
	JobTTL            time.Duration
	// RelayTimeout bounds the wait for a sent forwarder call to show on l2
	RelayTimeout time.Duration
}

type RawRelayerConfig struct {
	LogLevel                  string `mapstructure:"logLevel" default:"info"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL"`
	Env                       string `mapstructure:"env"`
	Id                        string `mapstructure:"id"`
	HealthPort                uint16 `mapstructure:"healthPort" default:"9001"`
	ApiAddr                   string `mapstructure:"apiAddr" default:":3000"`
	L3ChainID                 uint64 `mapstructure:"l3ChainId"`
	MinRelayerPayment         string `mapstructure:"minRelayerPayment" default:"0"`
	JobTTL                    uint64 `mapstructure:"jobTTL" default:"3600"`
	RelayTimeout              uint64 `mapstructure:"relayTimeout" default:"900"`
}

type RawConfig struct {
	RelayerConfig RawRelayerConfig         `mapstructure:"relayerConfig"`
	Networks      []NetworkConfig          `mapstructure:"networks"`
	ChainConfigs  []map[string]interface{} `mapstructure:"chains"`
}

func (c *RawRelayerConfig) Validate() error {
	if c.L3ChainID == 0 {
		return fmt.Errorf("required field relayerConfig.l3ChainId empty")
	}
	return nil
}

// GetConfigFromFile reads the configuration file at path. Fields missing from
// the file are filled from the shared configuration when one is provided.
func GetConfigFromFile(path string, shared *RawConfig) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	return processConfig(v, shared)
}

// GetConfigFromENV reads the json configuration stored in the TELEPORT_CONFIG variable
func GetConfigFromENV(shared *RawConfig) (*Config, error) {
	raw, ok := os.LookupEnv(EnvConfigName)
	if !ok {
		return nil, fmt.Errorf("%s is not set", EnvConfigName)
	}

	v, err := readJSON([]byte(raw))
	if err != nil {
		return nil, err
	}
	return processConfig(v, shared)
}

// GetSharedConfigFromNetwork fetches the json configuration shared by all
// instances of the service
func GetSharedConfigFromNetwork(url string) (*RawConfig, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shared config request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	v, err := readJSON(body)
	if err != nil {
		return nil, err
	}

	c := &RawConfig{}
	err = v.Unmarshal(c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func readJSON(data []byte) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("json")
	err := v.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return v, nil
}

func processConfig(v *viper.Viper, shared *RawConfig) (*Config, error) {
	raw := RawConfig{}
	err := v.Unmarshal(&raw)
	if err != nil {
		return nil, err
	}

	if shared != nil {
		err = mergo.Merge(&raw, *shared)
		if err != nil {
			return nil, err
		}
	}

	err = defaults.Set(&raw.RelayerConfig)
	if err != nil {
		return nil, err
	}
	err = raw.RelayerConfig.Validate()
	if err != nil {
		return nil, err
	}

	relayerConfig, err := processRelayerConfig(raw.RelayerConfig)
	if err != nil {
		return nil, err
	}

	networks := make([]network.Network, len(raw.Networks))
	for i, n := range raw.Networks {
		networks[i], err = n.ToNetwork()
		if err != nil {
			return nil, err
		}
	}

	return &Config{
		RelayerConfig: relayerConfig,
		Networks:      networks,
		ChainConfigs:  raw.ChainConfigs,
	}, nil
}

func processRelayerConfig(rc RawRelayerConfig) (RelayerConfig, error) {
	level, err := zerolog.ParseLevel(rc.LogLevel)
	if err != nil {
		return RelayerConfig{}, fmt.Errorf("invalid log level %s: %w", rc.LogLevel, err)
	}

	payment, ok := new(big.Int).SetString(rc.MinRelayerPayment, 10)
	if !ok || payment.Sign() < 0 {
		return RelayerConfig{}, fmt.Errorf("invalid minimum relayer payment %s", rc.MinRelayerPayment)
	}

	return RelayerConfig{
		LogLevel:                  level,
		OpenTelemetryCollectorURL: rc.OpenTelemetryCollectorURL,
		Env:                       rc.Env,
		Id:                        rc.Id,
		HealthPort:                rc.HealthPort,
		ApiAddr:                   rc.ApiAddr,
		L3ChainID:                 rc.L3ChainID,
		MinRelayerPayment:         payment,
		// nolint:gosec
		JobTTL: time.Duration(rc.JobTTL) * time.Second,
		// nolint:gosec
		RelayTimeout: time.Duration(rc.RelayTimeout) * time.Second,
	}, nil
}
