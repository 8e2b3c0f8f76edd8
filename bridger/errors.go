// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridger

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/sprinter-teleport/network"
	"github.com/sprintertech/sprinter-teleport/retryable"
)

type (
	ChainMismatchError    = network.ChainMismatchError
	MalformedPayloadError = retryable.MalformedPayloadError
)

var (
	ErrNotTeleport        = errors.New("transaction is not a teleport")
	ErrNotRelayedTeleport = errors.New("transaction is not a relayed teleport")
)

type Hop string

const (
	L1L2Hop Hop = "l1l2"
	L2L3Hop Hop = "l2l3"
)

type GasEstimationUnsupportedError struct {
	Hop Hop
}

func (e *GasEstimationUnsupportedError) Error() string {
	return fmt.Sprintf("Cannot estimate gas for custom %s gateway, please provide gas params", e.Hop)
}

type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("invalid bridger configuration: %s", e.Reason)
}

type GasTokenUnavailableError struct {
	Token  common.Address
	Reason string
}

func (e *GasTokenUnavailableError) Error() string {
	return fmt.Sprintf("l1 address of gas token %s unavailable: %s", e.Token.Hex(), e.Reason)
}

type GasTokenDecimalsMismatchError struct {
	Chain    network.Role
	Decimals uint8
}

func (e *GasTokenDecimalsMismatchError) Error() string {
	return fmt.Sprintf("gas token has %d decimals on %s, only 18 are supported", e.Decimals, e.Chain)
}
