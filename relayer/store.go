// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package relayer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-teleport/bridger"
	"github.com/syndtr/goleveldb/leveldb"
)

type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
}

// PendingDeposit is a discovered deposit whose forwarder call is not yet
// seen on l2
type PendingDeposit struct {
	Info *bridger.RelayerInfo `json:"info"`
	// RelayTx is the forwarder call sent by this relayer, if any
	RelayTx *common.Hash `json:"relayTx,omitempty"`
	// SentAt is the unix time RelayTx was sent
	SentAt int64 `json:"sentAt,omitempty"`
}

// State is the relayer progress not covered by the blockstore
type State struct {
	Deposits map[common.Hash]*PendingDeposit `json:"deposits"`
	// FailedBlocks could not be read when their range was handled
	FailedBlocks []*big.Int `json:"failedBlocks"`
}

func NewState() *State {
	return &State{
		Deposits:     make(map[common.Hash]*PendingDeposit),
		FailedBlocks: make([]*big.Int, 0),
	}
}

type StateStore struct {
	db KeyValueReaderWriter
}

func NewStateStore(db KeyValueReaderWriter) *StateStore {
	return &StateStore{
		db: db,
	}
}

// StoreState persists the relayer state of the chain
func (s *StateStore) StoreState(chainID uint64, state *State) error {
	value, err := json.Marshal(state)
	if err != nil {
		return err
	}

	err = s.db.SetByKey(stateKey(chainID), value)
	if err != nil {
		return fmt.Errorf("unable to persist relayer state of chain %d: %w", chainID, err)
	}
	return nil
}

// State returns the persisted relayer state of the chain or an empty state
// if none was stored
func (s *StateStore) State(chainID uint64) (*State, error) {
	value, err := s.db.GetByKey(stateKey(chainID))
	if errors.Is(err, leveldb.ErrNotFound) {
		return NewState(), nil
	}
	if err != nil {
		return nil, err
	}

	state := NewState()
	err = json.Unmarshal(value, state)
	if err != nil {
		return nil, fmt.Errorf("corrupted relayer state of chain %d: %w", chainID, err)
	}
	if state.Deposits == nil {
		state.Deposits = make(map[common.Hash]*PendingDeposit)
	}
	return state, nil
}

func stateKey(chainID uint64) []byte {
	return []byte(fmt.Sprintf("chain:%d:relayer", chainID))
}
