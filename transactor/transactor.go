// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transactor

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"
	"github.com/sygmaprotocol/sygma-core/crypto/secp256k1"
)

// GasLimitPercentIncrease pads the estimated gas of every transaction
const GasLimitPercentIncrease = 20

type Client interface {
	bind.ContractTransactor
	ChainID(ctx context.Context) (*big.Int, error)
}

// Transactor signs and sends raw calldata transactions from a single key
type Transactor struct {
	client Client
	key    *ecdsa.PrivateKey
	from   common.Address

	// serializes nonce reads with sends
	lock sync.Mutex
}

func NewTransactor(client Client, key *ecdsa.PrivateKey) *Transactor {
	return &Transactor{
		client: client,
		key:    key,
		from:   crypto.PubkeyToAddress(key.PublicKey),
	}
}

// NewTransactorFromKey parses the hex encoded private key
func NewTransactorFromKey(client Client, key string) (*Transactor, error) {
	kp, err := secp256k1.NewKeypairFromString(key)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	priv, err := crypto.ToECDSA(kp.Encode())
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return NewTransactor(client, priv), nil
}

func (t *Transactor) ChainID(ctx context.Context) (*big.Int, error) {
	return t.client.ChainID(ctx)
}

func (t *Transactor) From() common.Address {
	return t.from
}

// Transact sends the calldata to the target. Chains with a base fee get a
// dynamic fee transaction capped at twice the base fee plus the suggested
// tip, other chains a legacy transaction at the suggested gas price.
func (t *Transactor) Transact(ctx context.Context, to common.Address, data []byte, value *big.Int) (*types.Transaction, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	chainID, err := t.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := bind.NewKeyedTransactorWithChainID(t.key, chainID)
	if err != nil {
		return nil, err
	}

	gas, err := t.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  t.from,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	opts.Context = ctx
	opts.Value = value
	opts.GasLimit = gas + gas*GasLimitPercentIncrease/100

	tx, err := bind.NewBoundContract(to, abi.ABI{}, nil, t.client, nil).RawTransact(opts, data)
	if err != nil {
		return nil, err
	}

	log.Info().Str("tx", tx.Hash().Hex()).Msgf("Sent transaction to %s on chain %s", to.Hex(), chainID)
	return tx, nil
}
