// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package retryable

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

var (
	aliasOffset = new(big.Int).SetBytes(common.FromHex("0x1111000000000000000000000000000000001111"))
	addressMod  = new(big.Int).Lsh(big.NewInt(1), common.AddressLength*8)
)

// ApplyL1ToL2Alias returns the address a parent chain contract appears as
// when it sends a message to the child chain
func ApplyL1ToL2Alias(address common.Address) common.Address {
	v := new(big.Int).Add(new(big.Int).SetBytes(address.Bytes()), aliasOffset)
	return common.BigToAddress(v.Mod(v, addressMod))
}

// UndoL1ToL2Alias reverses ApplyL1ToL2Alias
func UndoL1ToL2Alias(address common.Address) common.Address {
	v := new(big.Int).Sub(new(big.Int).SetBytes(address.Bytes()), aliasOffset)
	return common.BigToAddress(v.Mod(v, addressMod))
}
