package config_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/sprintertech/sprinter-teleport/config"
	"github.com/stretchr/testify/suite"
)

const validConfig = `{
	"relayerConfig": {
		"logLevel": "debug",
		"l3ChainId": 333,
		"minRelayerPayment": "1000"
	},
	"networks": [
		{
			"name": "l2",
			"chainId": 42161,
			"parentChainId": 1,
			"bridge": "0x0000000000000000000000000000000000000001",
			"inbox": "0x0000000000000000000000000000000000000002",
			"tokenBridge": {
				"parentGatewayRouter": "0x0000000000000000000000000000000000000003",
				"childGatewayRouter": "0x0000000000000000000000000000000000000004",
				"parentErc20Gateway": "0x0000000000000000000000000000000000000005",
				"childErc20Gateway": "0x0000000000000000000000000000000000000006"
			},
			"teleporter": {
				"l1Teleporter": "0x0000000000000000000000000000000000000007",
				"l2ForwarderFactory": "0x0000000000000000000000000000000000000008",
				"l2ForwarderImplementation": "0x0000000000000000000000000000000000000009"
			}
		}
	],
	"chains": [
		{
			"id": 1,
			"name": "l1",
			"type": "evm",
			"endpoint": "ws://l1.com"
		}
	]
}`

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(s.T().TempDir(), "config.json")
	err := os.WriteFile(path, []byte(content), 0600)
	s.Nil(err)
	return path
}

func (s *GetConfigTestSuite) Test_MissingFile() {
	_, err := config.GetConfigFromFile(filepath.Join(s.T().TempDir(), "missing.json"), nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_MissingL3ChainID() {
	path := s.writeConfig(`{"relayerConfig": {}}`)

	_, err := config.GetConfigFromFile(path, nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_InvalidLogLevel() {
	path := s.writeConfig(`{"relayerConfig": {"l3ChainId": 333, "logLevel": "loud"}}`)

	_, err := config.GetConfigFromFile(path, nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_InvalidRelayerPayment() {
	path := s.writeConfig(`{"relayerConfig": {"l3ChainId": 333, "minRelayerPayment": "-1"}}`)

	_, err := config.GetConfigFromFile(path, nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_InvalidNetworkAddress() {
	path := s.writeConfig(`{"relayerConfig": {"l3ChainId": 333}, "networks": [{"chainId": 42161, "parentChainId": 1, "bridge": "invalid"}]}`)

	_, err := config.GetConfigFromFile(path, nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_DefaultRelayerConfig() {
	path := s.writeConfig(`{"relayerConfig": {"l3ChainId": 333}}`)

	c, err := config.GetConfigFromFile(path, nil)

	s.Nil(err)
	s.Equal(zerolog.InfoLevel, c.RelayerConfig.LogLevel)
	s.Equal(uint16(9001), c.RelayerConfig.HealthPort)
	s.Equal(":3000", c.RelayerConfig.ApiAddr)
	s.Equal(uint64(333), c.RelayerConfig.L3ChainID)
	s.Equal("0", c.RelayerConfig.MinRelayerPayment.String())
	s.Equal(time.Hour, c.RelayerConfig.JobTTL)
	s.Equal(15*time.Minute, c.RelayerConfig.RelayTimeout)
	s.Empty(c.Networks)
}

func (s *GetConfigTestSuite) Test_ValidConfig() {
	path := s.writeConfig(validConfig)

	c, err := config.GetConfigFromFile(path, nil)

	s.Nil(err)
	s.Equal(zerolog.DebugLevel, c.RelayerConfig.LogLevel)
	s.Equal("1000", c.RelayerConfig.MinRelayerPayment.String())
	s.Len(c.Networks, 1)
	s.Equal(uint64(42161), c.Networks[0].ChainID)
	s.Equal(common.HexToAddress("0x5"), c.Networks[0].TokenBridge.ParentERC20Gateway)
	s.Equal(common.HexToAddress("0x8"), c.Networks[0].Teleporter.L2ForwarderFactory)
	s.False(c.Networks[0].UsesCustomFeeToken())
	s.Len(c.ChainConfigs, 1)
	s.Equal("evm", c.ChainConfigs[0]["type"])
}

func (s *GetConfigTestSuite) Test_SharedConfigFillsMissingFields() {
	path := s.writeConfig(`{"relayerConfig": {"logLevel": "warn"}}`)
	shared := &config.RawConfig{
		RelayerConfig: config.RawRelayerConfig{
			LogLevel:  "debug",
			L3ChainID: 333,
		},
	}

	c, err := config.GetConfigFromFile(path, shared)

	s.Nil(err)
	s.Equal(zerolog.WarnLevel, c.RelayerConfig.LogLevel)
	s.Equal(uint64(333), c.RelayerConfig.L3ChainID)
}

func (s *GetConfigTestSuite) Test_ENV_Missing() {
	_, err := config.GetConfigFromENV(nil)

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_ENV_ValidConfig() {
	s.T().Setenv(config.EnvConfigName, validConfig)

	c, err := config.GetConfigFromENV(nil)

	s.Nil(err)
	s.Equal(uint64(333), c.RelayerConfig.L3ChainID)
	s.Len(c.Networks, 1)
}

func (s *GetConfigTestSuite) Test_SharedConfigFromNetwork() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(validConfig))
	}))
	defer server.Close()

	c, err := config.GetSharedConfigFromNetwork(server.URL)

	s.Nil(err)
	s.Equal(uint64(333), c.RelayerConfig.L3ChainID)
	s.Equal("0x0000000000000000000000000000000000000007", c.Networks[0].Teleporter.L1Teleporter)
}

func (s *GetConfigTestSuite) Test_SharedConfigFromNetwork_FailedRequest() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := config.GetSharedConfigFromNetwork(server.URL)

	s.NotNil(err)
}
