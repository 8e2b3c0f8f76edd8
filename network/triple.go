// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"fmt"
)

// ChainTriple is the immutable L1, L2 and L3 route a bridger operates on
type ChainTriple struct {
	l2 Network
	l3 Network
}

func NewChainTriple(l2 Network, l3 Network) (ChainTriple, error) {
	if err := l2.Validate(); err != nil {
		return ChainTriple{}, err
	}
	if err := l3.Validate(); err != nil {
		return ChainTriple{}, err
	}
	if l3.ParentChainID != l2.ChainID {
		return ChainTriple{}, fmt.Errorf("network %d is not a child of network %d", l3.ChainID, l2.ChainID)
	}

	return ChainTriple{
		l2: copyNetwork(l2),
		l3: copyNetwork(l3),
	}, nil
}

func (t ChainTriple) L1ChainID() uint64 {
	return t.l2.ParentChainID
}

func (t ChainTriple) L2ChainID() uint64 {
	return t.l2.ChainID
}

func (t ChainTriple) L3ChainID() uint64 {
	return t.l3.ChainID
}

func (t ChainTriple) L2() Network {
	return copyNetwork(t.l2)
}

func (t ChainTriple) L3() Network {
	return copyNetwork(t.l3)
}
