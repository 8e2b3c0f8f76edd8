// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"context"
	"fmt"
	"math/big"
	"reflect"
	"sort"
)

type Role int

const (
	L1 Role = iota + 1
	L2
	L3
)

func (r Role) String() string {
	switch r {
	case L1:
		return "L1"
	case L2:
		return "L2"
	case L3:
		return "L3"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// RoleCheck pairs an endpoint with the chain it is expected to serve
type RoleCheck struct {
	Role     Role
	Endpoint ChainIDReader
	Expected uint64
}

type ChainMismatchError struct {
	Role     Role
	Expected uint64
	Actual   *big.Int
}

func (e *ChainMismatchError) Error() string {
	return fmt.Sprintf("%s endpoint is connected to chain %s, expected chain %d", e.Role, e.Actual, e.Expected)
}

// CheckChains verifies every endpoint serves the chain of its role. Checks run
// in L1, L2, L3 order and the first mismatching role is reported. An endpoint
// passed for more than one role is queried once.
func CheckChains(ctx context.Context, checks ...RoleCheck) error {
	ordered := make([]RoleCheck, 0, len(checks))
	for _, c := range checks {
		if c.Endpoint != nil {
			ordered = append(ordered, c)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Role < ordered[j].Role
	})

	queried := make(map[ChainIDReader]*big.Int)
	for _, c := range ordered {
		cacheable := reflect.TypeOf(c.Endpoint).Comparable()

		var actual *big.Int
		if cacheable {
			actual = queried[c.Endpoint]
		}
		if actual == nil {
			id, err := c.Endpoint.ChainID(ctx)
			if err != nil {
				return err
			}
			actual = id
			if cacheable {
				queried[c.Endpoint] = id
			}
		}

		if !actual.IsUint64() || actual.Uint64() != c.Expected {
			return &ChainMismatchError{
				Role:     c.Role,
				Expected: c.Expected,
				Actual:   actual,
			}
		}
	}
	return nil
}
