package network_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-teleport/network"
	"github.com/stretchr/testify/suite"
)

func arbitrum() network.Network {
	return network.Network{
		ChainID:       42161,
		ParentChainID: 1,
		Name:          "arbitrum",
		EthBridge: network.EthBridge{
			Bridge: common.HexToAddress("0x8315177aB297bA92A06054cE80a67Ed4DBd7ed3a"),
			Inbox:  common.HexToAddress("0x4Dbd4fc535Ac27206064B68FfCf827b0A60BAB3f"),
		},
		Teleporter: &network.TeleporterContracts{
			L1Teleporter:       common.HexToAddress("0x01"),
			L2ForwarderFactory: common.HexToAddress("0x02"),
		},
	}
}

func orbit() network.Network {
	return network.Network{
		ChainID:       660279,
		ParentChainID: 42161,
		Name:          "xai",
		EthBridge: network.EthBridge{
			Bridge: common.HexToAddress("0x7dd8A76bdAeBE3BBBaCD7Aa87f1D4FDa1E60f94f"),
			Inbox:  common.HexToAddress("0xaE21fDA3de92dE2FDAF606233b2863782Ba046F9"),
		},
		NativeToken: common.HexToAddress("0x4Cb9a7AE498CEDcBb5EAe9f25736aE7d428C9D66"),
	}
}

type RegistryTestSuite struct {
	suite.Suite
}

func TestRunRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) Test_NewRegistry_DuplicateNetwork() {
	_, err := network.NewRegistry(arbitrum(), arbitrum())

	s.NotNil(err)
}

func (s *RegistryTestSuite) Test_NewRegistry_InvalidNetwork() {
	n := arbitrum()
	n.EthBridge = network.EthBridge{}

	_, err := network.NewRegistry(n)

	s.NotNil(err)
}

func (s *RegistryTestSuite) Test_Network_ReturnsCopy() {
	r, err := network.NewRegistry(arbitrum())
	s.Nil(err)

	n, err := r.Network(42161)
	s.Nil(err)
	n.Teleporter.L1Teleporter = common.HexToAddress("0xdead")

	teleporter, err := r.Teleporter(42161)
	s.Nil(err)
	s.Equal(common.HexToAddress("0x01"), teleporter.L1Teleporter)
}

func (s *RegistryTestSuite) Test_Teleporter_Missing() {
	r, err := network.NewRegistry(arbitrum(), orbit())
	s.Nil(err)

	_, err = r.Teleporter(660279)

	s.NotNil(err)
}

func (s *RegistryTestSuite) Test_ChainTriple_Valid() {
	r, err := network.NewRegistry(arbitrum(), orbit())
	s.Nil(err)

	triple, err := r.ChainTriple(660279)

	s.Nil(err)
	s.Equal(uint64(1), triple.L1ChainID())
	s.Equal(uint64(42161), triple.L2ChainID())
	s.Equal(uint64(660279), triple.L3ChainID())
	s.True(triple.L3().UsesCustomFeeToken())
	s.False(triple.L2().UsesCustomFeeToken())
}

func (s *RegistryTestSuite) Test_ChainTriple_UnknownParent() {
	r, err := network.NewRegistry(orbit())
	s.Nil(err)

	_, err = r.ChainTriple(660279)

	s.NotNil(err)
}

func (s *RegistryTestSuite) Test_NewChainTriple_NotAChild() {
	l3 := orbit()
	l3.ParentChainID = 10

	_, err := network.NewChainTriple(arbitrum(), l3)

	s.NotNil(err)
}
