// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package forwarder

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var (
	cloneInitCodePrefix = common.FromHex("0x3d602d80600a3d3981f3363d3d373d3d3d363d73")
	cloneInitCodeSuffix = common.FromHex("0x5af43d82803e903d91602b57fd5bf3")

	addressType, _ = abi.NewType("address", "", nil)
	saltArguments  = abi.Arguments{
		{Name: "owner", Type: addressType},
		{Name: "token", Type: addressType},
		{Name: "router", Type: addressType},
		{Name: "to", Type: addressType},
	}
)

// Params identify a single forwarder. Any change of them changes the forwarder address.
type Params struct {
	Owner  common.Address
	Token  common.Address
	Router common.Address
	To     common.Address
}

// Salt is the CREATE2 salt the factory deploys the forwarder with
func Salt(p Params) common.Hash {
	// packing four static addresses can not fail
	encoded, _ := saltArguments.Pack(p.Owner, p.Token, p.Router, p.To)
	return crypto.Keccak256Hash(encoded)
}

// CloneCodeHash returns the init code hash of a minimal proxy pointing at the implementation
func CloneCodeHash(implementation common.Address) common.Hash {
	code := make([]byte, 0, len(cloneInitCodePrefix)+common.AddressLength+len(cloneInitCodeSuffix))
	code = append(code, cloneInitCodePrefix...)
	code = append(code, implementation.Bytes()...)
	code = append(code, cloneInitCodeSuffix...)
	return crypto.Keccak256Hash(code)
}

// Address computes where the factory deploys the forwarder for the params.
// It does not touch any network.
func Address(factory common.Address, codeHash common.Hash, p Params) common.Address {
	salt := Salt(p)
	return crypto.CreateAddress2(factory, salt, codeHash.Bytes())
}

// Calculator binds the address derivation to a factory deployment
type Calculator struct {
	factory  common.Address
	codeHash common.Hash
}

func NewCalculator(factory common.Address, implementation common.Address) *Calculator {
	return &Calculator{
		factory:  factory,
		codeHash: CloneCodeHash(implementation),
	}
}

func (c *Calculator) Address(p Params) common.Address {
	return Address(c.factory, c.codeHash, p)
}
