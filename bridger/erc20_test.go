package bridger_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sprintertech/sprinter-teleport/bridger"
	mock_bridger "github.com/sprintertech/sprinter-teleport/bridger/mock"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/consts"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-teleport/forwarder"
	"github.com/sprintertech/sprinter-teleport/network"
	"github.com/sprintertech/sprinter-teleport/retryable"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type Erc20BridgerTestSuite struct {
	suite.Suite

	ctrl        *gomock.Controller
	l1          *chain
	l2          *chain
	l3          *chain
	mockWatcher *mock_bridger.MockTicketWatcher
	mockSigner  *mock_bridger.MockSigner

	l2Network network.Network
	l3Network network.Network
}

func TestRunErc20BridgerTestSuite(t *testing.T) {
	suite.Run(t, new(Erc20BridgerTestSuite))
}

func (s *Erc20BridgerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.l1 = newChain(s.ctrl, 1, 10, 0)
	s.l2 = newChain(s.ctrl, 42161, 2, 100)
	s.l3 = newChain(s.ctrl, 660279, 1, 50)
	s.mockWatcher = mock_bridger.NewMockTicketWatcher(s.ctrl)
	s.mockSigner = mock_bridger.NewMockSigner(s.ctrl)
	s.l2Network = testL2()
	s.l3Network = testL3(false)
}

func (s *Erc20BridgerTestSuite) stubDefaultGateways(token common.Address, tokenOnL2 common.Address) {
	l1Router := s.l2Network.TokenBridge.ParentGatewayRouter
	l2Router := s.l3Network.TokenBridge.ParentGatewayRouter
	s.l1.stub(l1Router, consts.GatewayRouterABI, "getGateway", []interface{}{token}, s.l2Network.TokenBridge.ParentERC20Gateway)
	s.l1.stub(l1Router, consts.GatewayRouterABI, "calculateL2TokenAddress", []interface{}{token}, tokenOnL2)
	s.l2.stub(l2Router, consts.GatewayRouterABI, "getGateway", []interface{}{tokenOnL2}, s.l3Network.TokenBridge.ParentERC20Gateway)
}

func (s *Erc20BridgerTestSuite) stubFeeToken(l1Decimals uint8, l2Decimals uint8) {
	s.l2.stub(feeL2, consts.ERC20ABI, "l1Address", nil, feeL1)
	s.l1.stub(s.l2Network.TokenBridge.ParentGatewayRouter, consts.GatewayRouterABI, "calculateL2TokenAddress", []interface{}{feeL1}, feeL2)
	s.l1.stub(feeL1, consts.ERC20ABI, "decimals", nil, l1Decimals)
	s.l2.stub(feeL2, consts.ERC20ABI, "decimals", nil, l2Decimals)
}

func (s *Erc20BridgerTestSuite) bridger(customFee bool) *bridger.Erc20Bridger {
	b, err := bridger.NewErc20Bridger(testTriple(customFee), s.mockWatcher)
	s.Nil(err)
	if customFee {
		s.l3Network = testL3(true)
	}
	return b
}

func (s *Erc20BridgerTestSuite) depositParams() bridger.Erc20DepositParams {
	return bridger.Erc20DepositParams{
		L1Token: l1Token,
		Amount:  big.NewInt(1000),
		From:    sender,
		To:      receiver,
	}
}

func (s *Erc20BridgerTestSuite) expectedForwarder() common.Address {
	teleporter := s.l2Network.Teleporter
	return forwarder.NewCalculator(teleporter.L2ForwarderFactory, teleporter.L2ForwarderImplementation).Address(forwarder.Params{
		Owner:  retryable.ApplyL1ToL2Alias(sender),
		Token:  l2Token,
		Router: s.l3Network.TokenBridge.ParentGatewayRouter,
		To:     receiver,
	})
}

func (s *Erc20BridgerTestSuite) Test_NewErc20Bridger_MissingTeleporter() {
	l2 := testL2()
	l2.Teleporter = nil
	triple, err := network.NewChainTriple(l2, testL3(false))
	s.Nil(err)

	_, err = bridger.NewErc20Bridger(triple, s.mockWatcher)

	var constructionErr *bridger.ConstructionError
	s.True(errors.As(err, &constructionErr))
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_CoinFeeL3() {
	b := s.bridger(false)
	s.stubDefaultGateways(l1Token, l2Token)

	req, err := b.GetDepositRequest(context.Background(), s.depositParams(), s.l1.client, s.l2.client, s.l3.client)

	s.Nil(err)
	s.Equal(s.l2Network.Teleporter.L1Teleporter, req.TxRequest.To)
	s.Equal("750465920", req.TxRequest.Value.String())
	s.Equal("0", req.GasTokenAmount.String())
	s.Equal(s.expectedForwarder(), req.Forwarder)
	s.Nil(req.RelayerInfo)

	params, err := contracts.NewTeleporterContract(req.TxRequest.To).DecodeTeleport(req.TxRequest.Data)
	s.Nil(err)
	s.Equal(l1Token, params.L1Token)
	s.Equal(common.Address{}, params.L1FeeToken)
	s.Equal(s.l2Network.TokenBridge.ParentGatewayRouter, params.L1l2Router)
	s.Equal(s.l3Network.TokenBridge.ParentGatewayRouter, params.L2l3RouterOrInbox)
	s.Equal(receiver, params.To)
	s.Equal("1000", params.Amount.String())
	s.Equal("300", params.GasParams.L2GasPriceBid.String())
	s.Equal("150", params.GasParams.L3GasPriceBid.String())
	s.Equal("110720", params.GasParams.L2ForwarderFactoryMaxSubmissionCost.String())
	s.Equal("296000", params.GasParams.L1l2TokenBridgeMaxSubmissionCost.String())
	s.Equal("0", params.GasParams.L1l2FeeTokenBridgeMaxSubmissionCost.String())
	s.Equal("59200", params.GasParams.L2l3TokenBridgeMaxSubmissionCost.String())
	s.Equal("1000000", params.GasParams.L2l3TokenBridgeGasLimit.String())

	s.Equal(retryable.ApplyL1ToL2Alias(sender), req.ForwarderParams.Owner)
	s.Equal(l2Token, req.ForwarderParams.L2Token)
	s.Equal("0", req.ForwarderParams.RelayerPayment.String())
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_ToDefaultsToSender() {
	b := s.bridger(false)
	s.stubDefaultGateways(l1Token, l2Token)
	params := s.depositParams()
	params.To = common.Address{}

	req, err := b.GetDepositRequest(context.Background(), params, s.l1.client, s.l2.client, s.l3.client)

	s.Nil(err)
	s.Equal(sender, req.TeleportParams.To)
	s.Equal(sender, req.ForwarderParams.To)
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_CustomFeeL3() {
	b := s.bridger(true)
	s.stubDefaultGateways(l1Token, l2Token)
	s.stubFeeToken(18, 18)

	req, err := b.GetDepositRequest(context.Background(), s.depositParams(), s.l1.client, s.l2.client, s.l3.client)

	s.Nil(err)
	s.Equal("900702720", req.TxRequest.Value.String())
	s.Equal("150000000", req.GasTokenAmount.String())
	s.Equal(feeL1, req.TeleportParams.L1FeeToken)
	s.Equal("0", req.TeleportParams.GasParams.L2l3TokenBridgeMaxSubmissionCost.String())
	s.Equal("296000", req.TeleportParams.GasParams.L1l2FeeTokenBridgeMaxSubmissionCost.String())
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_SkipGasToken() {
	b := s.bridger(true)
	s.stubDefaultGateways(l1Token, l2Token)
	params := s.depositParams()
	params.SkipGasToken = true

	req, err := b.GetDepositRequest(context.Background(), params, s.l1.client, s.l2.client, s.l3.client)

	s.Nil(err)
	s.Equal(common.Address{}, req.TeleportParams.L1FeeToken)
	s.Equal("0", req.GasTokenAmount.String())
	s.Equal("600406720", req.TxRequest.Value.String())
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_CustomL1L2Gateway() {
	b := s.bridger(false)
	s.stubDefaultGateways(l1Token, l2Token)
	s.l1.stub(s.l2Network.TokenBridge.ParentGatewayRouter, consts.GatewayRouterABI, "getGateway", []interface{}{l1Token}, common.HexToAddress("0x0000000000000000000000000000000000000c57"))

	_, err := b.GetDepositRequest(context.Background(), s.depositParams(), s.l1.client, s.l2.client, s.l3.client)

	var gasErr *bridger.GasEstimationUnsupportedError
	s.True(errors.As(err, &gasErr))
	s.Equal(bridger.L1L2Hop, gasErr.Hop)
	s.Equal("Cannot estimate gas for custom l1l2 gateway, please provide gas params", err.Error())
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_CustomL2L3Gateway() {
	b := s.bridger(false)
	s.stubDefaultGateways(l1Token, l2Token)
	s.l2.stub(s.l3Network.TokenBridge.ParentGatewayRouter, consts.GatewayRouterABI, "getGateway", []interface{}{l2Token}, common.HexToAddress("0x0000000000000000000000000000000000000c57"))

	_, err := b.GetDepositRequest(context.Background(), s.depositParams(), s.l1.client, s.l2.client, s.l3.client)

	s.Equal("Cannot estimate gas for custom l2l3 gateway, please provide gas params", err.Error())
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_WethRoutesThroughWethGateway() {
	b := s.bridger(false)
	weth := s.l2Network.TokenBridge.ParentWeth
	s.l1.stub(s.l2Network.TokenBridge.ParentGatewayRouter, consts.GatewayRouterABI, "calculateL2TokenAddress", []interface{}{weth}, s.l2Network.TokenBridge.ChildWeth)
	params := s.depositParams()
	params.L1Token = weth

	_, err := b.GetDepositRequest(context.Background(), params, s.l1.client, s.l2.client, s.l3.client)

	var gasErr *bridger.GasEstimationUnsupportedError
	s.True(errors.As(err, &gasErr))
	s.Equal(bridger.L1L2Hop, gasErr.Hop)
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_ManualGasParams() {
	b := s.bridger(false)
	s.l1.stub(s.l2Network.TokenBridge.ParentGatewayRouter, consts.GatewayRouterABI, "calculateL2TokenAddress", []interface{}{l1Token}, l2Token)
	manual := bridger.DefaultRetryableGasParams()
	manual.L1L2TokenBridgeGasLimit = 2_000_000
	manual.L1L2TokenBridgeMaxSubmissionCost = big.NewInt(1)
	params := s.depositParams()
	params.Overrides.ManualGasParams = &manual

	req, err := b.GetDepositRequest(context.Background(), params, s.l1.client, s.l2.client, s.l3.client)

	s.Nil(err)
	s.Equal("2000000", req.TeleportParams.GasParams.L1l2TokenBridgeGasLimit.String())
	s.Equal("1", req.TeleportParams.GasParams.L1l2TokenBridgeMaxSubmissionCost.String())
	s.Nil(manual.L2ForwarderFactoryMaxSubmissionCost)
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_GasPriceOverride() {
	b := s.bridger(false)
	s.stubDefaultGateways(l1Token, l2Token)
	params := s.depositParams()
	params.Overrides.L2GasPrice = &bridger.GasPriceOverride{Base: big.NewInt(1000), PercentIncrease: big.NewInt(0)}

	req, err := b.GetDepositRequest(context.Background(), params, s.l1.client, s.l2.client, s.l3.client)

	s.Nil(err)
	s.Equal("1000", req.TeleportParams.GasParams.L2GasPriceBid.String())
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_DecimalsMismatch() {
	b := s.bridger(true)
	s.stubDefaultGateways(l1Token, l2Token)
	s.stubFeeToken(6, 18)

	_, err := b.GetDepositRequest(context.Background(), s.depositParams(), s.l1.client, s.l2.client, s.l3.client)

	var decimalsErr *bridger.GasTokenDecimalsMismatchError
	s.True(errors.As(err, &decimalsErr))
	s.Equal(network.L1, decimalsErr.Chain)
	s.Equal(uint8(6), decimalsErr.Decimals)
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_GasTokenUnavailable() {
	b := s.bridger(true)
	s.stubDefaultGateways(l1Token, l2Token)
	s.stubFeeToken(18, 18)
	s.l1.stub(s.l2Network.TokenBridge.ParentGatewayRouter, consts.GatewayRouterABI, "calculateL2TokenAddress", []interface{}{feeL1}, common.HexToAddress("0x0000000000000000000000000000000000000bad"))

	_, err := b.GetDepositRequest(context.Background(), s.depositParams(), s.l1.client, s.l2.client, s.l3.client)

	var unavailable *bridger.GasTokenUnavailableError
	s.True(errors.As(err, &unavailable))
	s.Equal(feeL2, unavailable.Token)
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_FeeTokenWithoutL1Address() {
	b := s.bridger(true)
	s.stubDefaultGateways(l1Token, l2Token)
	s.l2.fail(feeL2, consts.ERC20ABI, "l1Address", nil, fmt.Errorf("execution reverted"))

	_, err := b.GetDepositRequest(context.Background(), s.depositParams(), s.l1.client, s.l2.client, s.l3.client)

	var unavailable *bridger.GasTokenUnavailableError
	s.True(errors.As(err, &unavailable))
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_ChainMismatch() {
	b := s.bridger(false)
	wrongL2 := newChain(s.ctrl, 10, 1, 1)

	_, err := b.GetDepositRequest(context.Background(), s.depositParams(), s.l1.client, wrongL2.client, s.l3.client)

	var mismatch *bridger.ChainMismatchError
	s.True(errors.As(err, &mismatch))
	s.Equal(network.L2, mismatch.Role)
}

func (s *Erc20BridgerTestSuite) Test_GetDepositRequest_InvalidAmount() {
	b := s.bridger(false)
	params := s.depositParams()
	params.Amount = big.NewInt(0)

	_, err := b.GetDepositRequest(context.Background(), params, s.l1.client, s.l2.client, s.l3.client)

	s.NotNil(err)
}

func (s *Erc20BridgerTestSuite) Test_Deposit_SendsTeleport() {
	b := s.bridger(false)
	s.stubDefaultGateways(l1Token, l2Token)
	req, err := b.GetDepositRequest(context.Background(), s.depositParams(), s.l1.client, s.l2.client, s.l3.client)
	s.Nil(err)
	tx := types.NewTx(&types.DynamicFeeTx{})
	s.mockSigner.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	s.mockSigner.EXPECT().Transact(gomock.Any(), req.TxRequest.To, req.TxRequest.Data, req.TxRequest.Value).Return(tx, nil)

	sent, err := b.Deposit(context.Background(), req, s.mockSigner)

	s.Nil(err)
	s.Equal(tx, sent)
}

func (s *Erc20BridgerTestSuite) Test_Deposit_SignerOnWrongChain() {
	b := s.bridger(false)
	s.mockSigner.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(42161), nil)

	_, err := b.Deposit(context.Background(), &bridger.Erc20DepositRequest{}, s.mockSigner)

	var mismatch *bridger.ChainMismatchError
	s.True(errors.As(err, &mismatch))
	s.Equal(network.L1, mismatch.Role)
}

func (s *Erc20BridgerTestSuite) Test_ApproveToken_DefaultsToUnlimited() {
	b := s.bridger(false)
	expected, _ := consts.ERC20ABI.Pack("approve", s.l2Network.Teleporter.L1Teleporter, math.MaxBig256)
	s.mockSigner.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	s.mockSigner.EXPECT().Transact(gomock.Any(), l1Token, expected, big.NewInt(0)).Return(types.NewTx(&types.DynamicFeeTx{}), nil)

	_, err := b.ApproveToken(context.Background(), bridger.ApproveParams{L1Token: l1Token}, s.mockSigner)

	s.Nil(err)
}

func (s *Erc20BridgerTestSuite) Test_ApproveGasToken_CoinFeeL3() {
	b := s.bridger(false)

	_, err := b.ApproveGasToken(context.Background(), nil, s.l1.client, s.l2.client, s.mockSigner)

	s.NotNil(err)
}

func (s *Erc20BridgerTestSuite) Test_ApproveGasToken_CustomFeeL3() {
	b := s.bridger(true)
	s.stubFeeToken(18, 18)
	expected, _ := consts.ERC20ABI.Pack("approve", s.l2Network.Teleporter.L1Teleporter, big.NewInt(5))
	s.mockSigner.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1), nil)
	s.mockSigner.EXPECT().Transact(gomock.Any(), feeL1, expected, big.NewInt(0)).Return(types.NewTx(&types.DynamicFeeTx{}), nil)

	_, err := b.ApproveGasToken(context.Background(), big.NewInt(5), s.l1.client, s.l2.client, s.mockSigner)

	s.Nil(err)
}

func (s *Erc20BridgerTestSuite) Test_GetGasTokenL1Address() {
	b := s.bridger(true)
	s.stubFeeToken(18, 18)

	address, err := b.GetGasTokenL1Address(context.Background(), s.l1.client, s.l2.client)

	s.Nil(err)
	s.Equal(feeL1, address)
}

func (s *Erc20BridgerTestSuite) Test_GetL2ERC20Address_IsStable() {
	b := s.bridger(false)
	s.stubDefaultGateways(l1Token, l2Token)

	first, err := b.GetL2ERC20Address(context.Background(), l1Token, s.l1.client)
	s.Nil(err)
	second, err := b.GetL2ERC20Address(context.Background(), l1Token, s.l1.client)
	s.Nil(err)

	s.Equal(l2Token, first)
	s.Equal(first, second)
}

func (s *Erc20BridgerTestSuite) Test_GetL3ERC20Address() {
	b := s.bridger(false)
	s.stubDefaultGateways(l1Token, l2Token)
	s.l2.stub(s.l3Network.TokenBridge.ParentGatewayRouter, consts.GatewayRouterABI, "calculateL2TokenAddress", []interface{}{l2Token}, l3Token)

	address, err := b.GetL3ERC20Address(context.Background(), l1Token, s.l1.client, s.l2.client)

	s.Nil(err)
	s.Equal(l3Token, address)
}

func (s *Erc20BridgerTestSuite) Test_GatewayAddresses() {
	b := s.bridger(false)
	s.stubDefaultGateways(l1Token, l2Token)

	l1l2, err := b.GetL1L2GatewayAddress(context.Background(), l1Token, s.l1.client)
	s.Nil(err)
	s.Equal(s.l2Network.TokenBridge.ParentERC20Gateway, l1l2)

	l2l3, err := b.GetL2L3GatewayAddress(context.Background(), l1Token, s.l1.client, s.l2.client)
	s.Nil(err)
	s.Equal(s.l3Network.TokenBridge.ParentERC20Gateway, l2l3)

	weth, err := b.GetL1L2GatewayAddress(context.Background(), s.l2Network.TokenBridge.ParentWeth, s.l1.client)
	s.Nil(err)
	s.Equal(s.l2Network.TokenBridge.ParentWethGateway, weth)
}

func (s *Erc20BridgerTestSuite) Test_TokenIsDisabled() {
	b := s.bridger(false)
	s.l1.stub(s.l2Network.TokenBridge.ParentGatewayRouter, consts.GatewayRouterABI, "l1TokenToGateway", []interface{}{l1Token}, contracts.DisabledGateway)
	s.l2.stub(s.l3Network.TokenBridge.ParentGatewayRouter, consts.GatewayRouterABI, "l1TokenToGateway", []interface{}{l2Token}, s.l3Network.TokenBridge.ParentERC20Gateway)

	disabled, err := b.L1TokenIsDisabled(context.Background(), l1Token, s.l1.client)
	s.Nil(err)
	s.True(disabled)

	disabled, err = b.L2TokenIsDisabled(context.Background(), l2Token, s.l2.client)
	s.Nil(err)
	s.False(disabled)
}
