package bridger_test

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	mock_bridger "github.com/sprintertech/sprinter-teleport/bridger/mock"
	"github.com/sprintertech/sprinter-teleport/network"
	"go.uber.org/mock/gomock"
)

var (
	l1Token  = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	l2Token  = common.HexToAddress("0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1")
	l3Token  = common.HexToAddress("0x0000000000000000000000000000000000003333")
	feeL1    = common.HexToAddress("0x4e3FBD56CD56c3e72c1403e103b45Db9da5B9D2B")
	feeL2    = common.HexToAddress("0x4Cb9a7AE498CEDcBb5EAe9f25736aE7d428C9D66")
	sender   = common.HexToAddress("0xa3A7B6F88361F48403514059F1F16C8E78d60EeC")
	receiver = common.HexToAddress("0xb4B8b6F88361F48403514059F1F16C8E78d61fFd")
)

func testL2() network.Network {
	return network.Network{
		ChainID:       42161,
		ParentChainID: 1,
		Name:          "arbitrum",
		EthBridge: network.EthBridge{
			Bridge: common.HexToAddress("0x8315177aB297bA92A06054cE80a67Ed4DBd7ed3a"),
			Inbox:  common.HexToAddress("0x4Dbd4fc535Ac27206064B68FfCf827b0A60BAB3f"),
		},
		TokenBridge: network.TokenBridge{
			ParentGatewayRouter: common.HexToAddress("0x72Ce9c846789fdB6fC1f34aC4AD25Dd9ef7031ef"),
			ChildGatewayRouter:  common.HexToAddress("0x5288c571Fd7aD117beA99bF60FE0846C4E84F933"),
			ParentERC20Gateway:  common.HexToAddress("0xa3A7B6F88361F48403514059F1F16C8E78d60EeC"),
			ChildERC20Gateway:   common.HexToAddress("0x09e9222E96E7B4AE2a407B98d48e330053351EEe"),
			ParentWethGateway:   common.HexToAddress("0xd92023E9d9911199a6711321D1277285e6d4e2db"),
			ChildWethGateway:    common.HexToAddress("0x6c411aD3E74De3E7Bd422b94A27770f5B86C623B"),
			ParentWeth:          common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
			ChildWeth:           common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"),
		},
		Teleporter: &network.TeleporterContracts{
			L1Teleporter:              common.HexToAddress("0xCBd276E5EF5C5e5F9657A4b1A4B4Ddf27F420DBe"),
			L2ForwarderFactory:        common.HexToAddress("0x791d2AbC6c3A459E13B9AdF54Fb5e97B7Af38f87"),
			L2ForwarderImplementation: common.HexToAddress("0x302275067251F5FcdB9359Bda735fD8f7A4A54c0"),
		},
	}
}

func testL3(customFee bool) network.Network {
	n := network.Network{
		ChainID:       660279,
		ParentChainID: 42161,
		Name:          "xai",
		EthBridge: network.EthBridge{
			Bridge: common.HexToAddress("0x7dd8A76bdAeBE3BBBaCD7Aa87f1D4FDa1E60f94f"),
			Inbox:  common.HexToAddress("0xaE21fDA3de92dE2FDAF606233b2863782Ba046F9"),
		},
		TokenBridge: network.TokenBridge{
			ParentGatewayRouter: common.HexToAddress("0x22CCA5Dc96a4Ac1EC32c9c7C5ad4D66254a24C35"),
			ChildGatewayRouter:  common.HexToAddress("0xd096e8dE90D34de758B0E0bA4a796eA2e1e272cF"),
			ParentERC20Gateway:  common.HexToAddress("0xb591cE747CF19cF30e11d656EB94134F523A9e77"),
			ChildERC20Gateway:   common.HexToAddress("0x0c71417917D24F4A6A6A55559B98c5cCEcb33F7a"),
		},
	}
	if customFee {
		n.NativeToken = feeL2
	}
	return n
}

func testTriple(customFee bool) network.ChainTriple {
	triple, err := network.NewChainTriple(testL2(), testL3(customFee))
	if err != nil {
		panic(err)
	}
	return triple
}

// chain is a mocked endpoint whose contract calls are answered from a table
// keyed by target and calldata
type chain struct {
	client *mock_bridger.MockChainClient
	calls  map[string][]byte
	errs   map[string]error
}

func newChain(ctrl *gomock.Controller, chainID uint64, baseFee int64, gasPrice int64) *chain {
	c := &chain{
		client: mock_bridger.NewMockChainClient(ctrl),
		calls:  make(map[string][]byte),
		errs:   make(map[string]error),
	}
	c.client.EXPECT().ChainID(gomock.Any()).Return(new(big.Int).SetUint64(chainID), nil).AnyTimes()
	c.client.EXPECT().HeaderByNumber(gomock.Any(), gomock.Any()).Return(&types.Header{Number: big.NewInt(1), BaseFee: big.NewInt(baseFee)}, nil).AnyTimes()
	c.client.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(gasPrice), nil).AnyTimes()
	c.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, callArgs map[string]interface{}, block *big.Int) ([]byte, error) {
			to, data := callTarget(callArgs)
			key := callKey(to, data)
			if err, ok := c.errs[key]; ok {
				return nil, err
			}
			out, ok := c.calls[key]
			if !ok {
				return nil, fmt.Errorf("execution reverted: unexpected call to %s", to.Hex())
			}
			return out, nil
		},
	).AnyTimes()
	return c
}

// callTarget reads the target and calldata from eth_call arguments
func callTarget(callArgs map[string]interface{}) (common.Address, []byte) {
	var to common.Address
	switch v := callArgs["to"].(type) {
	case *common.Address:
		to = *v
	case common.Address:
		to = v
	}

	var data []byte
	switch v := callArgs["data"].(type) {
	case hexutil.Bytes:
		data = v
	case []byte:
		data = v
	}
	return to, data
}

func callKey(to common.Address, data []byte) string {
	return to.Hex() + common.Bytes2Hex(data)
}

func (c *chain) stub(to common.Address, contractABI abi.ABI, method string, args []interface{}, results ...interface{}) {
	input, err := contractABI.Pack(method, args...)
	if err != nil {
		panic(err)
	}
	output, err := contractABI.Methods[method].Outputs.Pack(results...)
	if err != nil {
		panic(err)
	}
	c.calls[callKey(to, input)] = output
}

func (c *chain) fail(to common.Address, contractABI abi.ABI, method string, args []interface{}, err error) {
	input, packErr := contractABI.Pack(method, args...)
	if packErr != nil {
		panic(packErr)
	}
	c.errs[callKey(to, input)] = err
}
