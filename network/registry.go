// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"fmt"
	"sync"
)

// Registry holds known network descriptors keyed by chain id
type Registry struct {
	lock     sync.RWMutex
	networks map[uint64]Network
}

func NewRegistry(networks ...Network) (*Registry, error) {
	r := &Registry{
		networks: make(map[uint64]Network),
	}

	for _, n := range networks {
		err := r.Register(n)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Register(n Network) error {
	if err := n.Validate(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.networks[n.ChainID]; ok {
		return fmt.Errorf("network %d already registered", n.ChainID)
	}
	r.networks[n.ChainID] = copyNetwork(n)
	return nil
}

func (r *Registry) Network(chainID uint64) (Network, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	n, ok := r.networks[chainID]
	if !ok {
		return Network{}, fmt.Errorf("unknown network %d", chainID)
	}
	return copyNetwork(n), nil
}

// Teleporter returns the teleporter contracts attached to the network
func (r *Registry) Teleporter(chainID uint64) (TeleporterContracts, error) {
	n, err := r.Network(chainID)
	if err != nil {
		return TeleporterContracts{}, err
	}
	if n.Teleporter == nil {
		return TeleporterContracts{}, fmt.Errorf("no teleporter contracts on network %d", chainID)
	}
	return *n.Teleporter, nil
}

// ChainTriple builds the triple ending at the l3 network
func (r *Registry) ChainTriple(l3ChainID uint64) (ChainTriple, error) {
	l3, err := r.Network(l3ChainID)
	if err != nil {
		return ChainTriple{}, err
	}
	l2, err := r.Network(l3.ParentChainID)
	if err != nil {
		return ChainTriple{}, err
	}
	return NewChainTriple(l2, l3)
}

func copyNetwork(n Network) Network {
	if n.Teleporter != nil {
		t := *n.Teleporter
		n.Teleporter = &t
	}
	return n
}
