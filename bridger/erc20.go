// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-teleport/forwarder"
	"github.com/sprintertech/sprinter-teleport/network"
	"github.com/sprintertech/sprinter-teleport/retryable"
)

// forwarderCallSize is the calldata size of a forwarder factory call
const forwarderCallSize uint64 = 4 + 7*32

type completionMode int

const (
	// selfRedeem makes the last l1 to l2 ticket call the forwarder factory
	selfRedeem completionMode = iota
	// relayed makes the last l1 to l2 ticket fund the forwarder and leaves
	// the forwarder call to a relayer
	relayed
)

type Erc20DepositParams struct {
	L1Token common.Address
	Amount  *big.Int
	// From is the l1 account that sends the teleport
	From common.Address
	// To is the l3 recipient, defaults to From
	To common.Address
	// SkipGasToken leaves funding the l3 fee token of the forwarder to the caller
	SkipGasToken bool
	Overrides    TokenOverrides
}

type Erc20DepositRequest struct {
	TxRequest       TxRequest
	GasTokenAmount  *big.Int
	TeleportParams  contracts.TeleportParams
	ForwarderParams contracts.L2ForwarderParams
	// Forwarder is the l2 address the tokens are bridged to
	Forwarder   common.Address
	RelayerInfo *RelayerInfo
}

// Erc20Bridger teleports tokens from L1 to L3 through a deterministic
// forwarder contract on L2
type Erc20Bridger struct {
	route

	mode       completionMode
	teleporter network.TeleporterContracts
	calculator *forwarder.Calculator
	factory    *contracts.ForwarderFactoryContract
	gateway    *contracts.GatewayContract
}

func NewErc20Bridger(triple network.ChainTriple, watcher TicketWatcher) (*Erc20Bridger, error) {
	return newErc20Bridger(triple, watcher, selfRedeem)
}

func newErc20Bridger(triple network.ChainTriple, watcher TicketWatcher, mode completionMode) (*Erc20Bridger, error) {
	r := newRoute(triple, watcher)
	if r.l2.Teleporter == nil {
		return nil, &ConstructionError{Reason: fmt.Sprintf("network %d has no teleporter contracts", r.l2.ChainID)}
	}
	teleporter := *r.l2.Teleporter

	return &Erc20Bridger{
		route:      r,
		mode:       mode,
		teleporter: teleporter,
		calculator: forwarder.NewCalculator(teleporter.L2ForwarderFactory, teleporter.L2ForwarderImplementation),
		factory:    contracts.NewForwarderFactoryContract(teleporter.L2ForwarderFactory),
		gateway:    contracts.NewGatewayContract(),
	}, nil
}

// GetDepositRequest plans the teleport transaction without sending anything
func (b *Erc20Bridger) GetDepositRequest(ctx context.Context, params Erc20DepositParams, l1 ChainClient, l2 ChainClient, l3 ChainClient) (*Erc20DepositRequest, error) {
	err := b.checkChains(ctx, l1, l2, l3)
	if err != nil {
		return nil, err
	}

	if params.Amount == nil || params.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("deposit amount has to be positive")
	}
	if params.From == (common.Address{}) {
		return nil, fmt.Errorf("deposit sender is required")
	}
	to := params.To
	if to == (common.Address{}) {
		to = params.From
	}

	plan, err := b.planTokenGas(ctx, params.L1Token, params.Overrides, params.SkipGasToken, l1, l2, l3)
	if err != nil {
		return nil, err
	}

	l2Token, err := b.l2ERC20Address(ctx, params.L1Token, l1)
	if err != nil {
		return nil, err
	}

	relayerPayment := big.NewInt(0)
	if b.mode == relayed {
		relayerPayment = params.Overrides.RelayerPayment
		if relayerPayment == nil {
			relayerPayment = gasCost(plan.Params.L2ForwarderFactoryGasLimit, plan.L2GasPrice)
		}
	}

	forwarderParams := contracts.L2ForwarderParams{
		Owner:          retryable.ApplyL1ToL2Alias(params.From),
		L2Token:        l2Token,
		RouterOrInbox:  b.l3.TokenBridge.ParentGatewayRouter,
		To:             to,
		GasLimit:       new(big.Int).SetUint64(plan.Params.L2L3TokenBridgeGasLimit),
		GasPriceBid:    plan.L3GasPrice,
		RelayerPayment: relayerPayment,
	}
	teleportParams := contracts.TeleportParams{
		L1Token:           params.L1Token,
		L1FeeToken:        plan.L1FeeToken,
		L1l2Router:        b.l2.TokenBridge.ParentGatewayRouter,
		L2l3RouterOrInbox: b.l3.TokenBridge.ParentGatewayRouter,
		To:                to,
		Amount:            params.Amount,
		GasParams:         b.contractGasParams(plan),
	}

	teleporter := contracts.NewTeleporterContract(b.teleporter.L1Teleporter)
	req := &Erc20DepositRequest{
		GasTokenAmount:  plan.GasTokenAmount,
		TeleportParams:  teleportParams,
		ForwarderParams: forwarderParams,
		Forwarder:       b.calculator.Address(forwarderParamsKey(forwarderParams)),
		TxRequest: TxRequest{
			To:    b.teleporter.L1Teleporter,
			Value: b.teleportValue(plan, relayerPayment),
		},
	}

	l2ChainID := new(big.Int).SetUint64(b.l2.ChainID)
	switch b.mode {
	case relayed:
		req.TxRequest.Data, err = teleporter.RelayedTeleportCalldata(teleportParams, forwarderParams, l2ChainID)
		req.RelayerInfo = relayerInfo(forwarderParams, l2ChainID)
	default:
		req.TxRequest.Data, err = teleporter.TeleportCalldata(teleportParams)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().Msgf("Planned teleport of %s %s to %s through forwarder %s", params.Amount, params.L1Token.Hex(), to.Hex(), req.Forwarder.Hex())
	return req, nil
}

// Deposit sends the planned teleport from the l1 signer
func (b *Erc20Bridger) Deposit(ctx context.Context, req *Erc20DepositRequest, l1Signer Signer) (*types.Transaction, error) {
	if req == nil {
		return nil, fmt.Errorf("missing deposit request")
	}
	return b.transact(ctx, l1Signer, network.L1, b.triple.L1ChainID(), req.TxRequest)
}

type ApproveParams struct {
	L1Token common.Address
	// Amount defaults to unlimited
	Amount *big.Int
}

// ApproveToken grants the teleporter an allowance of the l1 token
func (b *Erc20Bridger) ApproveToken(ctx context.Context, params ApproveParams, l1Signer Signer) (*types.Transaction, error) {
	req, err := b.approveRequest(params.L1Token, params.Amount)
	if err != nil {
		return nil, err
	}
	return b.transact(ctx, l1Signer, network.L1, b.triple.L1ChainID(), *req)
}

// ApproveGasToken grants the teleporter an allowance of the l1 counterpart of the l3 fee token
func (b *Erc20Bridger) ApproveGasToken(ctx context.Context, amount *big.Int, l1 ChainClient, l2 ChainClient, l1Signer Signer) (*types.Transaction, error) {
	err := b.checkChains(ctx, l1, l2, nil)
	if err != nil {
		return nil, err
	}
	if !b.l3.UsesCustomFeeToken() {
		return nil, fmt.Errorf("network %d pays fees in its parent coin", b.l3.ChainID)
	}

	l1FeeToken, err := b.gasTokenL1Address(ctx, l1, l2)
	if err != nil {
		return nil, err
	}

	req, err := b.approveRequest(l1FeeToken, amount)
	if err != nil {
		return nil, err
	}
	return b.transact(ctx, l1Signer, network.L1, b.triple.L1ChainID(), *req)
}

// GetGasTokenL1Address returns the l1 address of the token l3 pays fees in
func (b *Erc20Bridger) GetGasTokenL1Address(ctx context.Context, l1 ChainClient, l2 ChainClient) (common.Address, error) {
	err := b.checkChains(ctx, l1, l2, nil)
	if err != nil {
		return common.Address{}, err
	}
	if !b.l3.UsesCustomFeeToken() {
		return common.Address{}, nil
	}
	return b.gasTokenL1Address(ctx, l1, l2)
}

func (b *Erc20Bridger) GetL2ERC20Address(ctx context.Context, l1Token common.Address, l1 ChainClient) (common.Address, error) {
	err := b.checkChains(ctx, l1, nil, nil)
	if err != nil {
		return common.Address{}, err
	}
	return b.l2ERC20Address(ctx, l1Token, l1)
}

func (b *Erc20Bridger) GetL3ERC20Address(ctx context.Context, l1Token common.Address, l1 ChainClient, l2 ChainClient) (common.Address, error) {
	err := b.checkChains(ctx, l1, l2, nil)
	if err != nil {
		return common.Address{}, err
	}

	l2Token, err := b.l2ERC20Address(ctx, l1Token, l1)
	if err != nil {
		return common.Address{}, err
	}
	return contracts.NewGatewayRouterContract(l2, b.l3.TokenBridge.ParentGatewayRouter).CalculateL2TokenAddress(ctx, l2Token)
}

// GetL1L2GatewayAddress returns the gateway that bridges the token from l1 to l2
func (b *Erc20Bridger) GetL1L2GatewayAddress(ctx context.Context, l1Token common.Address, l1 ChainClient) (common.Address, error) {
	err := b.checkChains(ctx, l1, nil, nil)
	if err != nil {
		return common.Address{}, err
	}
	return b.l1L2GatewayAddress(ctx, l1Token, l1)
}

// GetL2L3GatewayAddress returns the gateway that bridges the l2 counterpart of the token from l2 to l3
func (b *Erc20Bridger) GetL2L3GatewayAddress(ctx context.Context, l1Token common.Address, l1 ChainClient, l2 ChainClient) (common.Address, error) {
	err := b.checkChains(ctx, l1, l2, nil)
	if err != nil {
		return common.Address{}, err
	}
	return b.l2L3GatewayAddress(ctx, l1Token, l1, l2)
}

// L1TokenIsDisabled reports whether the l1 router refuses to bridge the token
func (b *Erc20Bridger) L1TokenIsDisabled(ctx context.Context, l1Token common.Address, l1 ChainClient) (bool, error) {
	err := b.checkChains(ctx, l1, nil, nil)
	if err != nil {
		return false, err
	}
	return tokenIsDisabled(ctx, contracts.NewGatewayRouterContract(l1, b.l2.TokenBridge.ParentGatewayRouter), l1Token)
}

// L2TokenIsDisabled reports whether the l2 router refuses to bridge the l2 token
func (b *Erc20Bridger) L2TokenIsDisabled(ctx context.Context, l2Token common.Address, l2 ChainClient) (bool, error) {
	err := b.checkChains(ctx, nil, l2, nil)
	if err != nil {
		return false, err
	}
	return tokenIsDisabled(ctx, contracts.NewGatewayRouterContract(l2, b.l3.TokenBridge.ParentGatewayRouter), l2Token)
}

func tokenIsDisabled(ctx context.Context, router *contracts.GatewayRouterContract, token common.Address) (bool, error) {
	gateway, err := router.TokenToGateway(ctx, token)
	if err != nil {
		return false, err
	}
	return gateway == contracts.DisabledGateway, nil
}

func (b *Erc20Bridger) l2ERC20Address(ctx context.Context, l1Token common.Address, l1 ChainClient) (common.Address, error) {
	return contracts.NewGatewayRouterContract(l1, b.l2.TokenBridge.ParentGatewayRouter).CalculateL2TokenAddress(ctx, l1Token)
}

func (b *Erc20Bridger) l1L2GatewayAddress(ctx context.Context, l1Token common.Address, l1 ChainClient) (common.Address, error) {
	if b.l2.TokenBridge.ParentWeth != (common.Address{}) && l1Token == b.l2.TokenBridge.ParentWeth {
		return b.l2.TokenBridge.ParentWethGateway, nil
	}
	return contracts.NewGatewayRouterContract(l1, b.l2.TokenBridge.ParentGatewayRouter).Gateway(ctx, l1Token)
}

func (b *Erc20Bridger) l2L3GatewayAddress(ctx context.Context, l1Token common.Address, l1 ChainClient, l2 ChainClient) (common.Address, error) {
	l2Token, err := b.l2ERC20Address(ctx, l1Token, l1)
	if err != nil {
		return common.Address{}, err
	}
	if b.l3.TokenBridge.ParentWeth != (common.Address{}) && l2Token == b.l3.TokenBridge.ParentWeth {
		return b.l3.TokenBridge.ParentWethGateway, nil
	}
	return contracts.NewGatewayRouterContract(l2, b.l3.TokenBridge.ParentGatewayRouter).Gateway(ctx, l2Token)
}

func (b *Erc20Bridger) approveRequest(token common.Address, amount *big.Int) (*TxRequest, error) {
	if amount == nil {
		amount = math.MaxBig256
	}

	data, err := contracts.NewERC20Contract(nil, token).ApproveCalldata(b.teleporter.L1Teleporter, amount)
	if err != nil {
		return nil, err
	}
	return &TxRequest{
		To:    token,
		Data:  data,
		Value: big.NewInt(0),
	}, nil
}

func (b *Erc20Bridger) contractGasParams(plan *GasPlan) contracts.RetryableGasParams {
	p := plan.Params
	return contracts.RetryableGasParams{
		L2GasPriceBid:                       plan.L2GasPrice,
		L3GasPriceBid:                       plan.L3GasPrice,
		L2ForwarderFactoryGasLimit:          new(big.Int).SetUint64(p.L2ForwarderFactoryGasLimit),
		L1l2FeeTokenBridgeGasLimit:          new(big.Int).SetUint64(p.L1L2FeeTokenBridgeGasLimit),
		L1l2TokenBridgeGasLimit:             new(big.Int).SetUint64(p.L1L2TokenBridgeGasLimit),
		L2l3TokenBridgeGasLimit:             new(big.Int).SetUint64(p.L2L3TokenBridgeGasLimit),
		L2ForwarderFactoryMaxSubmissionCost: p.L2ForwarderFactoryMaxSubmissionCost,
		L1l2FeeTokenBridgeMaxSubmissionCost: p.L1L2FeeTokenBridgeMaxSubmissionCost,
		L1l2TokenBridgeMaxSubmissionCost:    p.L1L2TokenBridgeMaxSubmissionCost,
		L2l3TokenBridgeMaxSubmissionCost:    p.L2L3TokenBridgeMaxSubmissionCost,
	}
}

// teleportValue is the l1 coin amount that pays for every ticket of the teleport
func (b *Erc20Bridger) teleportValue(plan *GasPlan, relayerPayment *big.Int) *big.Int {
	p := plan.Params
	value := new(big.Int).Add(p.L1L2TokenBridgeMaxSubmissionCost, gasCost(p.L1L2TokenBridgeGasLimit, plan.L2GasPrice))
	value.Add(value, p.L2ForwarderFactoryMaxSubmissionCost)
	value.Add(value, gasCost(p.L2ForwarderFactoryGasLimit, plan.L2GasPrice))

	if plan.L1FeeToken != (common.Address{}) {
		value.Add(value, p.L1L2FeeTokenBridgeMaxSubmissionCost)
		value.Add(value, gasCost(p.L1L2FeeTokenBridgeGasLimit, plan.L2GasPrice))
	}
	if !b.l3.UsesCustomFeeToken() {
		value.Add(value, p.L2L3TokenBridgeMaxSubmissionCost)
		value.Add(value, gasCost(p.L2L3TokenBridgeGasLimit, plan.L3GasPrice))
	}
	return value.Add(value, relayerPayment)
}

func forwarderParamsKey(p contracts.L2ForwarderParams) forwarder.Params {
	return forwarder.Params{
		Owner:  p.Owner,
		Token:  p.L2Token,
		Router: p.RouterOrInbox,
		To:     p.To,
	}
}
