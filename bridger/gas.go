// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-teleport/network"
)

const (
	DefaultGasLimit uint64 = 1_000_000
	// DefaultRetryableSize is the calldata size assumed for token bridge tickets
	// since the gateway builds their payload on chain
	DefaultRetryableSize uint64 = 1000

	DefaultGasPricePercentIncrease      int64 = 200
	DefaultSubmissionFeePercentIncrease int64 = 300

	submissionBaseBytes = 1400
	submissionBytePrice = 6
	requiredFeeDecimals = 18
	percentDenominator  = 100
)

// GasPriceOverride replaces the suggested gas price of a chain and or the
// percentage it is increased by
type GasPriceOverride struct {
	Base            *big.Int
	PercentIncrease *big.Int
}

// RetryableGasParams are the gas limits and submission costs of every ticket
// of a token teleport. Nil submission costs are estimated.
type RetryableGasParams struct {
	L2ForwarderFactoryGasLimit uint64
	L1L2FeeTokenBridgeGasLimit uint64
	L1L2TokenBridgeGasLimit    uint64
	L2L3TokenBridgeGasLimit    uint64

	L2ForwarderFactoryMaxSubmissionCost *big.Int
	L1L2FeeTokenBridgeMaxSubmissionCost *big.Int
	L1L2TokenBridgeMaxSubmissionCost    *big.Int
	L2L3TokenBridgeMaxSubmissionCost    *big.Int
}

// DefaultRetryableGasParams are safe for tokens bridged through default gateways only
func DefaultRetryableGasParams() RetryableGasParams {
	return RetryableGasParams{
		L2ForwarderFactoryGasLimit: DefaultGasLimit,
		L1L2FeeTokenBridgeGasLimit: DefaultGasLimit,
		L1L2TokenBridgeGasLimit:    DefaultGasLimit,
		L2L3TokenBridgeGasLimit:    DefaultGasLimit,
	}
}

type TokenOverrides struct {
	// ManualGasParams skip gas estimation, required for custom gateways
	ManualGasParams              *RetryableGasParams
	L2GasPrice                   *GasPriceOverride
	L3GasPrice                   *GasPriceOverride
	SubmissionFeePercentIncrease *big.Int
	// RelayerPayment is paid to whoever relays the forwarder call, relayed deposits only
	RelayerPayment *big.Int
}

// GasPlan is the resolved fee configuration of a token teleport
type GasPlan struct {
	Params     RetryableGasParams
	L2GasPrice *big.Int
	L3GasPrice *big.Int
	// L1FeeToken is the l1 address of the l3 fee token, zero when it is not bridged
	L1FeeToken common.Address
	// GasTokenAmount is the amount of fee token that pays for the l2 to l3 ticket
	GasTokenAmount *big.Int
}

// gasPrice returns the base price of the chain increased by the percentage
func gasPrice(ctx context.Context, client ChainClient, override *GasPriceOverride) (*big.Int, error) {
	var base *big.Int
	pct := big.NewInt(DefaultGasPricePercentIncrease)
	if override != nil {
		base = override.Base
		if override.PercentIncrease != nil {
			pct = override.PercentIncrease
		}
	}

	if base == nil {
		suggested, err := client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, err
		}
		base = suggested
	}

	return increaseByPercent(base, pct), nil
}

// submissionCost estimates the submission fee of a ticket with the data length
// from the base fee of the parent chain the ticket is submitted on
func submissionCost(ctx context.Context, parent ChainClient, dataLength uint64, pct *big.Int) (*big.Int, error) {
	header, err := parent.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}
	if header.BaseFee == nil {
		return nil, fmt.Errorf("parent chain block %s has no base fee", header.Number)
	}

	if pct == nil {
		pct = big.NewInt(DefaultSubmissionFeePercentIncrease)
	}

	size := new(big.Int).SetUint64(submissionBaseBytes + submissionBytePrice*dataLength)
	cost := new(big.Int).Mul(size, header.BaseFee)
	return increaseByPercent(cost, pct), nil
}

func increaseByPercent(v *big.Int, pct *big.Int) *big.Int {
	out := new(big.Int).Mul(v, new(big.Int).Add(big.NewInt(percentDenominator), pct))
	return out.Div(out, big.NewInt(percentDenominator))
}

func gasCost(gasLimit uint64, price *big.Int) *big.Int {
	return new(big.Int).Mul(new(big.Int).SetUint64(gasLimit), price)
}

// planTokenGas resolves the gas limits, prices and the fee token amount of a
// token teleport. Tokens behind custom gateways are rejected unless the caller
// provides the gas params.
func (b *Erc20Bridger) planTokenGas(
	ctx context.Context,
	l1Token common.Address,
	overrides TokenOverrides,
	skipGasToken bool,
	l1 ChainClient,
	l2 ChainClient,
	l3 ChainClient,
) (*GasPlan, error) {
	var params RetryableGasParams
	if overrides.ManualGasParams != nil {
		params = *overrides.ManualGasParams
	} else {
		err := b.checkDefaultGateways(ctx, l1Token, l1, l2)
		if err != nil {
			return nil, err
		}
		params = DefaultRetryableGasParams()
	}

	plan := &GasPlan{
		Params:         params,
		GasTokenAmount: big.NewInt(0),
	}

	var err error
	plan.L2GasPrice, err = gasPrice(ctx, l2, overrides.L2GasPrice)
	if err != nil {
		return nil, err
	}
	plan.L3GasPrice, err = gasPrice(ctx, l3, overrides.L3GasPrice)
	if err != nil {
		return nil, err
	}

	err = b.fillSubmissionCosts(ctx, &plan.Params, overrides.SubmissionFeePercentIncrease, l1, l2)
	if err != nil {
		return nil, err
	}

	if b.l3.UsesCustomFeeToken() && !skipGasToken {
		plan.L1FeeToken, err = b.gasTokenL1Address(ctx, l1, l2)
		if err != nil {
			return nil, err
		}
		err = b.checkGasTokenDecimals(ctx, plan.L1FeeToken, l1, l2)
		if err != nil {
			return nil, err
		}

		plan.GasTokenAmount = new(big.Int).Add(
			gasCost(plan.Params.L2L3TokenBridgeGasLimit, plan.L3GasPrice),
			plan.Params.L2L3TokenBridgeMaxSubmissionCost,
		)
	}

	log.Debug().Msgf(
		"Planned teleport gas with l2 price %s, l3 price %s and gas token amount %s",
		plan.L2GasPrice, plan.L3GasPrice, plan.GasTokenAmount,
	)
	return plan, nil
}

func (b *Erc20Bridger) checkDefaultGateways(ctx context.Context, l1Token common.Address, l1 ChainClient, l2 ChainClient) error {
	l1l2Gateway, err := b.l1L2GatewayAddress(ctx, l1Token, l1)
	if err != nil {
		return err
	}
	if l1l2Gateway != b.l2.TokenBridge.ParentERC20Gateway {
		return &GasEstimationUnsupportedError{Hop: L1L2Hop}
	}

	l2l3Gateway, err := b.l2L3GatewayAddress(ctx, l1Token, l1, l2)
	if err != nil {
		return err
	}
	if l2l3Gateway != b.l3.TokenBridge.ParentERC20Gateway {
		return &GasEstimationUnsupportedError{Hop: L2L3Hop}
	}
	return nil
}

func (b *Erc20Bridger) fillSubmissionCosts(ctx context.Context, params *RetryableGasParams, pct *big.Int, l1 ChainClient, l2 ChainClient) error {
	var err error
	if params.L2ForwarderFactoryMaxSubmissionCost == nil {
		params.L2ForwarderFactoryMaxSubmissionCost, err = submissionCost(ctx, l1, forwarderCallSize, pct)
		if err != nil {
			return err
		}
	}
	if params.L1L2TokenBridgeMaxSubmissionCost == nil {
		params.L1L2TokenBridgeMaxSubmissionCost, err = submissionCost(ctx, l1, DefaultRetryableSize, pct)
		if err != nil {
			return err
		}
	}
	if params.L1L2FeeTokenBridgeMaxSubmissionCost == nil {
		params.L1L2FeeTokenBridgeMaxSubmissionCost = big.NewInt(0)
		if b.l3.UsesCustomFeeToken() {
			params.L1L2FeeTokenBridgeMaxSubmissionCost, err = submissionCost(ctx, l1, DefaultRetryableSize, pct)
			if err != nil {
				return err
			}
		}
	}
	if params.L2L3TokenBridgeMaxSubmissionCost == nil {
		// chains paying fees in a token do not charge for submissions
		params.L2L3TokenBridgeMaxSubmissionCost = big.NewInt(0)
		if !b.l3.UsesCustomFeeToken() {
			params.L2L3TokenBridgeMaxSubmissionCost, err = submissionCost(ctx, l2, DefaultRetryableSize, pct)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// gasTokenL1Address resolves the l1 counterpart of the l3 fee token and
// verifies the l1 router maps it back onto the fee token
func (b *Erc20Bridger) gasTokenL1Address(ctx context.Context, l1 ChainClient, l2 ChainClient) (common.Address, error) {
	feeToken := b.l3.NativeToken
	l1FeeToken, err := contracts.NewERC20Contract(l2, feeToken).L1Address(ctx)
	if err != nil {
		return common.Address{}, &GasTokenUnavailableError{Token: feeToken, Reason: err.Error()}
	}

	router := contracts.NewGatewayRouterContract(l1, b.l2.TokenBridge.ParentGatewayRouter)
	l2Address, err := router.CalculateL2TokenAddress(ctx, l1FeeToken)
	if err != nil {
		return common.Address{}, err
	}
	if l2Address != feeToken {
		return common.Address{}, &GasTokenUnavailableError{
			Token:  feeToken,
			Reason: fmt.Sprintf("l1 token %s maps to %s", l1FeeToken.Hex(), l2Address.Hex()),
		}
	}
	return l1FeeToken, nil
}

func (b *Erc20Bridger) checkGasTokenDecimals(ctx context.Context, l1FeeToken common.Address, l1 ChainClient, l2 ChainClient) error {
	checks := []struct {
		role   network.Role
		client ChainClient
		token  common.Address
	}{
		{network.L1, l1, l1FeeToken},
		{network.L2, l2, b.l3.NativeToken},
	}

	for _, c := range checks {
		decimals, err := contracts.NewERC20Contract(c.client, c.token).Decimals(ctx)
		if err != nil {
			return err
		}
		if decimals != requiredFeeDecimals {
			return &GasTokenDecimalsMismatchError{Chain: c.role, Decimals: decimals}
		}
	}
	return nil
}
